// internal/output/manifest.go
package output

import (
	"fmt"
	"io"

	"microseq-core/pairing"
)

// ManifestTSVHeader is the canonical header for the assembly manifest: the
// handoff contract to the assembly invoker ("run assembly once per row,
// using exactly these input files").
const ManifestTSVHeader = "sample\twell\tforward\treverse\taction"

// FormatManifestRowTSV returns the manifest columns (no trailing newline).
func FormatManifestRowTSV(o pairing.Outcome) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		o.Key, o.Well, filesCSV(o.Forward), filesCSV(o.Reverse), o.Action)
}

// WriteManifestTSV writes one row per pairing outcome.
func WriteManifestTSV(w io.Writer, outcomes []pairing.Outcome, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ManifestTSVHeader); err != nil {
			return err
		}
	}
	for _, o := range outcomes {
		if _, err := fmt.Fprintln(w, FormatManifestRowTSV(o)); err != nil {
			return err
		}
	}
	return nil
}
