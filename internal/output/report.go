// internal/output/report.go
package output

import (
	"fmt"
	"io"
	"strings"

	"microseq-core/pairing"
)

// ReportTSVHeader is the canonical header row for the pairing report.
// Keep this as the single source of truth; all writers should use it.
const ReportTSVHeader = "sample_id\twell\tstatus\tdetail\tforward_files\treverse_files\tother_files"

func filesCSV(paths []string) string { return strings.Join(paths, ",") }

// FormatOutcomeRowTSV returns the report columns for a paired sample
// (no trailing newline).
func FormatOutcomeRowTSV(o pairing.Outcome) string {
	return fmt.Sprintf("%s\t%s\tpaired\t%s\t%s\t%s\t%s",
		o.Key, o.Well, o.Action,
		filesCSV(o.Forward), filesCSV(o.Reverse), filesCSV(o.Discarded))
}

// FormatSkipRowTSV returns the report columns for a skipped sample or file
// (no trailing newline).
func FormatSkipRowTSV(s pairing.Skip) string {
	return fmt.Sprintf("%s\t%s\tskipped\t%s\t%s\t%s\t%s",
		s.SampleID, s.Well, s.Reason,
		filesCSV(s.Forward), filesCSV(s.Reverse), filesCSV(s.Other))
}

// WriteReportTSV writes the full pairing report as a tab-delimited table:
// one row per outcome, then one row per skip.
func WriteReportTSV(w io.Writer, rep *pairing.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ReportTSVHeader); err != nil {
			return err
		}
	}
	for _, o := range rep.Outcomes {
		if _, err := fmt.Fprintln(w, FormatOutcomeRowTSV(o)); err != nil {
			return err
		}
	}
	for _, s := range rep.Skips {
		if _, err := fmt.Fprintln(w, FormatSkipRowTSV(s)); err != nil {
			return err
		}
	}
	return nil
}
