// core/token/token.go
package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Orientation of a read as inferred from a primer token in its filename.
type Orientation string

const (
	Forward    Orientation = "forward"
	Reverse    Orientation = "reverse"
	Unresolved Orientation = "unresolved"
)

// Position classes describe where in the filename a detector expects its token.
type Position string

const (
	PositionPrefix Position = "prefix"
	PositionMid    Position = "mid"
	PositionSuffix Position = "suffix"
)

// Source distinguishes built-in detectors from user-supplied overrides.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

// ConfigError is a fatal configuration fault (bad regex, bad enum value).
// It is raised before any file is classified.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("config: invalid %s %q", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Detector is one ordered primer-token rule. The submatch group 1 of the
// pattern is the token; its span is used later to derive the sample id.
type Detector struct {
	ID          string
	Orientation Orientation
	Position    Position
	Source      Source
	rx          *regexp.Regexp
}

// Match returns the token and its [start,end) span within name.
func (d Detector) Match(name string) (tok string, start, end int, ok bool) {
	m := d.rx.FindStringSubmatchIndex(name)
	if m == nil || m[2] < 0 {
		return "", 0, 0, false
	}
	return name[m[2]:m[3]], m[2], m[3], true
}

// Registry holds the ordered forward/reverse detectors and the well pattern
// for one pairing invocation. Immutable after Build.
type Registry struct {
	Forward []Detector
	Reverse []Detector
	Well    *regexp.Regexp
}

// DefaultWellPattern matches plate coordinates A1..H12, optionally
// zero-padded, bounded by delimiters or the name edges.
const DefaultWellPattern = `(?i)(?:^|[_\-.])([A-H])(0?[1-9]|1[0-2])(?:[_\-.]|$)`

// Built-in token patterns. Order matters: mid placement is tried first, then
// prefix, then suffix, matching the historical detector order.
var builtins = []struct {
	id      string
	orient  Orientation
	pos     Position
	pattern string
}{
	{"fwd-mid", Forward, PositionMid, `(?i)[_\-]([A-Za-z0-9]*F)[_\-]`},
	{"fwd-prefix", Forward, PositionPrefix, `(?i)^([A-Za-z0-9]*F)[_\-]`},
	{"fwd-suffix", Forward, PositionSuffix, `(?i)[_\-]([A-Za-z0-9]*F)$`},
	{"rev-mid", Reverse, PositionMid, `(?i)[_\-]([A-Za-z0-9]*R)[_\-]`},
	{"rev-prefix", Reverse, PositionPrefix, `(?i)^([A-Za-z0-9]*R)[_\-]`},
	{"rev-suffix", Reverse, PositionSuffix, `(?i)[_\-]([A-Za-z0-9]*R)$`},
}

// Build compiles the detector registry for one run. A non-empty user pattern
// becomes the sole detector for its orientation, bypassing built-ins. An
// empty wellPattern selects DefaultWellPattern.
func Build(fwdPattern, revPattern, wellPattern string) (*Registry, error) {
	reg := &Registry{}

	if fwdPattern != "" {
		d, err := userDetector("fwd-user", Forward, fwdPattern)
		if err != nil {
			return nil, &ConfigError{Field: "forward pattern", Value: fwdPattern, Err: err}
		}
		reg.Forward = []Detector{d}
	} else {
		reg.Forward = builtinDetectors(Forward)
	}

	if revPattern != "" {
		d, err := userDetector("rev-user", Reverse, revPattern)
		if err != nil {
			return nil, &ConfigError{Field: "reverse pattern", Value: revPattern, Err: err}
		}
		reg.Reverse = []Detector{d}
	} else {
		reg.Reverse = builtinDetectors(Reverse)
	}

	wp := wellPattern
	if wp == "" {
		wp = DefaultWellPattern
	}
	rx, err := regexp.Compile(wp)
	if err != nil {
		return nil, &ConfigError{Field: "well pattern", Value: wellPattern, Err: err}
	}
	reg.Well = rx

	return reg, nil
}

func builtinDetectors(o Orientation) []Detector {
	var out []Detector
	for _, b := range builtins {
		if b.orient != o {
			continue
		}
		out = append(out, Detector{
			ID:          b.id,
			Orientation: b.orient,
			Position:    b.pos,
			Source:      SourceBuiltin,
			rx:          regexp.MustCompile(b.pattern),
		})
	}
	return out
}

func userDetector(id string, o Orientation, pattern string) (Detector, error) {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return Detector{}, err
	}
	// A pattern without a capture group matches the whole expression as the
	// token (plain substrings like "27F" remain valid overrides).
	if rx.NumSubexp() == 0 {
		rx, err = regexp.Compile("(" + pattern + ")")
		if err != nil {
			return Detector{}, err
		}
	}
	return Detector{ID: id, Orientation: o, Position: PositionMid, Source: SourceUser, rx: rx}, nil
}

// NormalizeWell validates a raw plate coordinate and returns its canonical
// zero-padded form (a1 -> A01). ok is false outside rows A-H / columns 1-12.
func NormalizeWell(raw string) (string, bool) {
	s := strings.ToUpper(strings.Trim(raw, "_-."))
	if len(s) < 2 || len(s) > 3 {
		return "", false
	}
	row := s[0]
	if row < 'A' || row > 'H' {
		return "", false
	}
	col := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return "", false
		}
		col = col*10 + int(c-'0')
	}
	if col < 1 || col > 12 {
		return "", false
	}
	return fmt.Sprintf("%c%02d", row, col), true
}

// FindWell returns the normalized well code and the span of the raw
// coordinate within name. ok is false when no valid well is present.
func (r *Registry) FindWell(name string) (well string, start, end int, ok bool) {
	m := r.Well.FindStringSubmatchIndex(name)
	if m == nil {
		return "", 0, 0, false
	}
	// Prefer the captured row/column groups; fall back to the full match for
	// user patterns without groups.
	start, end = m[0], m[1]
	if len(m) >= 6 && m[2] >= 0 && m[5] >= 0 {
		start, end = m[2], m[5]
	}
	w, valid := NormalizeWell(name[start:end])
	if !valid {
		return "", 0, 0, false
	}
	return w, start, end, true
}
