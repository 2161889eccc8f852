// pkg/api/report_v1.go
package api

// OutcomeV1 is the stable JSON schema for one manifest row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OutcomeV1 struct {
	SampleID  string   `json:"sample_id"`
	Key       string   `json:"key"`
	Well      string   `json:"well,omitempty"`
	Forward   []string `json:"forward"`
	Reverse   []string `json:"reverse"`
	Action    string   `json:"action"`
	Discarded []string `json:"discarded,omitempty"`
}

// SkipV1 is the stable schema for one skipped sample or file.
type SkipV1 struct {
	SampleID string   `json:"sample_id"`
	Well     string   `json:"well,omitempty"`
	Reason   string   `json:"reason"`
	Forward  []string `json:"forward,omitempty"`
	Reverse  []string `json:"reverse,omitempty"`
	Other    []string `json:"other,omitempty"`
}

// ReportV1 is the stable schema for a full pairing run.
type ReportV1 struct {
	Outcomes     []OutcomeV1    `json:"outcomes"`
	Skips        []SkipV1       `json:"skips"`
	DetectorHits map[string]int `json:"detector_hits,omitempty"`
	Forward      int            `json:"forward_files"`
	Reverse      int            `json:"reverse_files"`
	Unresolved   int            `json:"unresolved_files"`
}

// TraceV1 maps one assembled contig back to its input reads.
type TraceV1 struct {
	SampleKey  string   `json:"sample_key"`
	ContigPath string   `json:"contig_path"`
	Inputs     []string `json:"inputs"`
}
