// core/classify/classify.go
package classify

import (
	"path/filepath"

	"microseq-core/sampleid"
	"microseq-core/token"
)

// File is the classification record for one input filename. Records are
// immutable once built; re-classification produces a new record.
type File struct {
	Path string
	Name string // base name
	Stem string // base name without extension (.gz peeled first)

	Orientation token.Orientation
	DetectorID  string
	Token       string
	TokenSpan   sampleid.Span

	Well     string // normalized (A01..H12), empty when absent
	WellSpan sampleid.Span

	// Ambiguous marks a name matched by both a forward and a reverse
	// detector; such files are never silently assigned an orientation.
	Ambiguous bool

	// RawID is the sample-id candidate with the token stripped but the
	// well (if any) left in place. The pairing engine re-resolves with the
	// run's well policy.
	RawID string
}

// Resolved reports whether the file carries a usable orientation.
func (f File) Resolved() bool { return f.Orientation != token.Unresolved }

// Classify determines orientation, matched detector, token, and well code
// for a single path. Detectors are tried in registry order and the first
// match per orientation wins; a name matched by both orientations is
// unresolved with Ambiguous set.
func Classify(path string, reg *token.Registry) File {
	name := filepath.Base(path)
	f := File{
		Path:        path,
		Name:        name,
		Stem:        sampleid.Stem(name),
		Orientation: token.Unresolved,
	}

	fd, fTok, fSpan, fOK := firstMatch(f.Stem, reg.Forward)
	rd, rTok, rSpan, rOK := firstMatch(f.Stem, reg.Reverse)

	switch {
	case fOK && rOK:
		f.Ambiguous = true
	case fOK:
		f.Orientation = token.Forward
		f.DetectorID, f.Token, f.TokenSpan = fd, fTok, fSpan
	case rOK:
		f.Orientation = token.Reverse
		f.DetectorID, f.Token, f.TokenSpan = rd, rTok, rSpan
	}

	// Well extraction is independent of orientation.
	if w, ws, we, ok := reg.FindWell(f.Stem); ok {
		f.Well = w
		f.WellSpan = sampleid.Span{Start: ws, End: we}
	}

	f.RawID = sampleid.Resolve(f.Stem, f.TokenSpan, f.WellSpan, false)
	return f
}

// ClassifyAll classifies paths in order.
func ClassifyAll(paths []string, reg *token.Registry) []File {
	out := make([]File, 0, len(paths))
	for _, p := range paths {
		out = append(out, Classify(p, reg))
	}
	return out
}

func firstMatch(stem string, dets []token.Detector) (id, tok string, span sampleid.Span, ok bool) {
	for _, d := range dets {
		if t, s, e, m := d.Match(stem); m {
			return d.ID, t, sampleid.Span{Start: s, End: e}, true
		}
	}
	return "", "", sampleid.Span{}, false
}
