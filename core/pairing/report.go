// core/pairing/report.go
package pairing

// Reason is a machine-readable skip code.
type Reason string

const (
	ReasonMissingMate       Reason = "missing-mate"
	ReasonDuplicate         Reason = "duplicate-orientation"
	ReasonWellMismatch      Reason = "well-mismatch"
	ReasonMissingWell       Reason = "missing-well"
	ReasonAmbiguous         Reason = "ambiguous-orientation"
	ReasonUnrecognized      Reason = "unrecognized"
	ReasonDuplicateMismatch Reason = "duplicate-mismatch"
)

// Outcome is one manifest row: the files assembly runs on for one sample
// (or one duplicate combination under keep-separate).
type Outcome struct {
	SampleID string
	Key      string // SampleID, or SampleID_n when a sample yields several outcomes
	Well     string
	Forward  []string // source paths, encounter order
	Reverse  []string
	Action   string   // "paired" or the duplicate-policy applied
	Discarded []string // duplicates dropped by keep-first/keep-last, kept for traceability
}

// Skip records files excluded from pairing and why.
type Skip struct {
	SampleID string
	Well     string
	Reason   Reason
	Forward  []string
	Reverse  []string
	Other    []string // files without a resolved orientation
}

// Report is the full result of one pairing run. Zero outcomes is a valid
// report, never an error.
type Report struct {
	Outcomes []Outcome
	Skips    []Skip

	// DetectorHits tallies how many files each detector matched.
	DetectorHits map[string]int

	ForwardFiles    int
	ReverseFiles    int
	UnresolvedFiles int
}

// Files returns every path referenced by s.
func (s Skip) Files() []string {
	out := make([]string, 0, len(s.Forward)+len(s.Reverse)+len(s.Other))
	out = append(out, s.Forward...)
	out = append(out, s.Reverse...)
	out = append(out, s.Other...)
	return out
}
