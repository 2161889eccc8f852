// core/sampleid/resolve.go
package sampleid

import "strings"

// Span is a half-open [Start,End) byte range inside a filename stem.
type Span struct {
	Start, End int
}

// Valid reports whether the span covers at least one byte.
func (s Span) Valid() bool { return s.End > s.Start }

// Overlaps reports whether two spans share any byte.
func (s Span) Overlaps(o Span) bool {
	return s.Valid() && o.Valid() && s.Start < o.End && o.Start < s.End
}

func isDelim(b byte) bool { return b == '_' || b == '-' || b == '.' }

// strip removes span from s, collapsing the separator pair the removal
// leaves behind (stripping "_27F_" yields a single "_", not "__").
func strip(s string, sp Span) string {
	left, right := s[:sp.Start], s[sp.End:]
	if len(left) > 0 && isDelim(left[len(left)-1]) && len(right) > 0 && isDelim(right[0]) {
		right = right[1:]
	}
	return left + right
}

// Resolve derives the canonical sample id from a filename stem by removing
// the matched primer token and, when stripWell is set, the well coordinate.
// Identity is exact: two stems resolve to the same id only when they are
// identical after this normalization.
func Resolve(stem string, tok, well Span, stripWell bool) string {
	id := resolve(stem, tok, well, stripWell)
	if id == "" && stripWell {
		// Stems like "A01__27F" are nothing but well + token; keep the well
		// as the identifier rather than collapsing every such file into one
		// anonymous sample.
		id = resolve(stem, tok, well, false)
	}
	return id
}

func resolve(stem string, tok, well Span, stripWell bool) string {
	spans := make([]Span, 0, 2)
	if tok.Valid() {
		spans = append(spans, tok)
	}
	if stripWell && well.Valid() && !well.Overlaps(tok) {
		spans = append(spans, well)
	}
	// Remove right-to-left so earlier spans keep their offsets.
	if len(spans) == 2 && spans[0].Start < spans[1].Start {
		spans[0], spans[1] = spans[1], spans[0]
	}
	out := stem
	for _, sp := range spans {
		out = strip(out, sp)
	}
	return strings.Trim(out, "_-.")
}

// Stem returns name without its extension; a trailing .gz is peeled first so
// compressed variants normalize identically.
func Stem(name string) string {
	s := strings.TrimSuffix(name, ".gz")
	if i := strings.LastIndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	return s
}
