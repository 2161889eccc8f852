// core/diagnose/diagnose.go
//
// Advisory diagnostics for failed or partial pairing runs. Everything here
// is computed from the finished report and classified files; nothing feeds
// back into the pairing path.
package diagnose

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"microseq-core/classify"
	"microseq-core/pairing"
	"microseq-core/sampleid"
	"microseq-core/token"
)

const (
	maxExampleNames = 5
	maxWellPreviews = 3
)

// Suggestion is one candidate primer token mined from unresolved filenames.
type Suggestion struct {
	Token       string
	Orientation token.Orientation
	Count       int
}

// Summary aggregates per-detector hit counts, orientation tallies, and
// ranked pattern suggestions.
type Summary struct {
	DetectorHits map[string]int
	Forward      int
	Reverse      int
	Unresolved   int

	MissingMate     []string // sample ids seen in one orientation only
	UnknownExamples []string // first few unrecognized filenames
	MissingWell     []string // files without a well code (well-enforced runs)
	MultiWell       []string // sample ids spanning multiple wells

	Suggestions []Suggestion
}

var tokenRx = regexp.MustCompile(`(?i)[A-Za-z0-9]*[FR]`)

// Summarize builds the diagnostic summary for one pairing run.
func Summarize(rep *pairing.Report, files []classify.File) *Summary {
	s := &Summary{
		DetectorHits: rep.DetectorHits,
		Forward:      rep.ForwardFiles,
		Reverse:      rep.ReverseFiles,
		Unresolved:   rep.UnresolvedFiles,
	}

	missing := map[string]bool{}
	for _, sk := range rep.Skips {
		switch sk.Reason {
		case pairing.ReasonMissingMate, pairing.ReasonWellMismatch:
			missing[sk.SampleID] = true
		case pairing.ReasonMissingWell:
			s.MissingWell = append(s.MissingWell, sk.Files()...)
		}
	}
	for sid := range missing {
		s.MissingMate = append(s.MissingMate, sid)
	}
	sort.Strings(s.MissingMate)
	sort.Strings(s.MissingWell)

	wells := map[string]map[string]bool{}
	var unresolvedNames []string
	for _, f := range files {
		if !f.Resolved() {
			unresolvedNames = append(unresolvedNames, f.Name)
			if len(s.UnknownExamples) < maxExampleNames {
				s.UnknownExamples = append(s.UnknownExamples, f.Name)
			}
			continue
		}
		if f.Well != "" {
			sid := sampleid.Resolve(f.Stem, f.TokenSpan, f.WellSpan, true)
			if wells[sid] == nil {
				wells[sid] = map[string]bool{}
			}
			wells[sid][f.Well] = true
		}
	}
	for sid, ws := range wells {
		if len(ws) > 1 {
			s.MultiWell = append(s.MultiWell, sid)
		}
	}
	sort.Strings(s.MultiWell)

	s.Suggestions = mine(unresolvedNames)
	return s
}

// mine scans unresolved names for substrings ending in an orientation-like
// letter and ranks them by frequency. Purely heuristic and advisory.
func mine(names []string) []Suggestion {
	counts := map[string]int{}
	for _, n := range names {
		for _, tok := range tokenRx.FindAllString(n, -1) {
			u := strings.ToUpper(tok)
			if len(u) < 2 {
				continue
			}
			counts[u]++
		}
	}
	out := make([]Suggestion, 0, len(counts))
	for tok, c := range counts {
		o := token.Forward
		if strings.HasSuffix(tok, "R") {
			o = token.Reverse
		}
		out = append(out, Suggestion{Token: tok, Orientation: o, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}

// Lines renders the summary as human-readable text, one finding per line.
func (s *Summary) Lines() []string {
	var out []string
	out = append(out, fmt.Sprintf("detected %d forward and %d reverse reads; %d files without F/R tokens",
		s.Forward, s.Reverse, s.Unresolved))

	if len(s.DetectorHits) > 0 {
		ids := make([]string, 0, len(s.DetectorHits))
		for id := range s.DetectorHits {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			parts = append(parts, fmt.Sprintf("%s=%d", id, s.DetectorHits[id]))
		}
		out = append(out, "detector hits: "+strings.Join(parts, " "))
	}

	if len(s.MissingMate) > 0 {
		out = append(out, "samples missing a mate: "+preview(s.MissingMate, maxExampleNames))
	}
	if len(s.UnknownExamples) > 0 {
		out = append(out, "example unrecognised filenames: "+strings.Join(s.UnknownExamples, ", "))
	}
	if len(s.MissingWell) > 0 {
		out = append(out, fmt.Sprintf("%d files missing plate well codes (e.g., %s)",
			len(s.MissingWell), preview(s.MissingWell, maxWellPreviews)))
	}
	if len(s.MultiWell) > 0 {
		out = append(out, "sample ids spanning multiple wells: "+preview(s.MultiWell, maxWellPreviews))
	}

	if fwd, rev := s.topTokens(); fwd != "" || rev != "" {
		if fwd == "" {
			fwd = "FORWARD_TOKEN"
		}
		if rev == "" {
			rev = "REVERSE_TOKEN"
		}
		out = append(out, fmt.Sprintf("try: --fwd-pattern '(?i)%s' --rev-pattern '(?i)%s'", fwd, rev))
		out = append(out, fmt.Sprintf("or rename files to include primer tokens (e.g., sample_%s.fasta / sample_%s.fasta)", fwd, rev))
	} else if s.Unresolved > 0 {
		out = append(out, "no primer-like tokens detected; rename files to include forward/reverse labels (e.g., sample_27F / sample_1492R) or pass --fwd-pattern/--rev-pattern explicitly")
	}
	return out
}

func (s *Summary) topTokens() (fwd, rev string) {
	for _, sg := range s.Suggestions {
		if fwd == "" && sg.Orientation == token.Forward {
			fwd = sg.Token
		}
		if rev == "" && sg.Orientation == token.Reverse {
			rev = sg.Token
		}
	}
	return
}

func preview(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + ", ..."
}
