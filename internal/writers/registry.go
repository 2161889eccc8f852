// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"github.com/jose-cantu/MicroSeq/internal/output"
	"microseq-core/pairing"
)

// ReportWriter serializes a finished pairing report to one output format.
type ReportWriter func(w io.Writer, rep *pairing.Report, header bool) error

// reportWriters is the format -> handler registry.
var reportWriters = map[string]ReportWriter{}

// RegisterReport installs a handler (idempotent, last wins).
func RegisterReport(format string, fn ReportWriter) { reportWriters[format] = fn }

// WriteReport dispatches to the registered handler for format.
func WriteReport(format string, w io.Writer, rep *pairing.Report, header bool) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, rep, header)
}

func init() {
	RegisterReport(output.FormatText, output.WriteReportTSV)
	RegisterReport(output.FormatJSON, func(w io.Writer, rep *pairing.Report, _ bool) error {
		return output.WriteReportJSON(w, rep)
	})
	RegisterReport(output.FormatXLSX, func(w io.Writer, rep *pairing.Report, _ bool) error {
		return output.WriteReportXLSX(w, rep)
	})
}
