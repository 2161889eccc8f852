// internal/output/json.go
package output

import (
	"io"

	"github.com/jose-cantu/MicroSeq/internal/jsonutil"
	"github.com/jose-cantu/MicroSeq/pkg/api"
	"microseq-core/pairing"
)

// ToAPIReport converts a domain report to the stable wire schema (v1).
func ToAPIReport(rep *pairing.Report) api.ReportV1 {
	out := api.ReportV1{
		Outcomes:     make([]api.OutcomeV1, 0, len(rep.Outcomes)),
		Skips:        make([]api.SkipV1, 0, len(rep.Skips)),
		DetectorHits: rep.DetectorHits,
		Forward:      rep.ForwardFiles,
		Reverse:      rep.ReverseFiles,
		Unresolved:   rep.UnresolvedFiles,
	}
	for _, o := range rep.Outcomes {
		out.Outcomes = append(out.Outcomes, api.OutcomeV1{
			SampleID:  o.SampleID,
			Key:       o.Key,
			Well:      o.Well,
			Forward:   append([]string(nil), o.Forward...),
			Reverse:   append([]string(nil), o.Reverse...),
			Action:    o.Action,
			Discarded: append([]string(nil), o.Discarded...),
		})
	}
	for _, s := range rep.Skips {
		out.Skips = append(out.Skips, api.SkipV1{
			SampleID: s.SampleID,
			Well:     s.Well,
			Reason:   string(s.Reason),
			Forward:  append([]string(nil), s.Forward...),
			Reverse:  append([]string(nil), s.Reverse...),
			Other:    append([]string(nil), s.Other...),
		})
	}
	return out
}

// WriteReportJSON writes the report as pretty-indented v1 JSON.
func WriteReportJSON(w io.Writer, rep *pairing.Report) error {
	return jsonutil.EncodePretty(w, ToAPIReport(rep))
}
