// internal/output/trace.go
package output

import (
	"fmt"
	"io"

	"github.com/jose-cantu/MicroSeq/pkg/api"
)

// TraceTSVHeader is the canonical header for contig traceability: which
// input reads contributed to which output contig.
const TraceTSVHeader = "sample\tcontig\tinputs"

// WriteTraceTSV writes one row per assembled contig.
func WriteTraceTSV(w io.Writer, traces []api.TraceV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TraceTSVHeader); err != nil {
			return err
		}
	}
	for _, t := range traces {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", t.SampleKey, t.ContigPath, filesCSV(t.Inputs)); err != nil {
			return err
		}
	}
	return nil
}
