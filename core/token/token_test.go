package token

import (
	"errors"
	"testing"
)

func TestBuild_Builtins(t *testing.T) {
	reg, err := Build("", "", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(reg.Forward) != 3 || len(reg.Reverse) != 3 {
		t.Fatalf("want 3 builtin detectors per orientation, got %d/%d", len(reg.Forward), len(reg.Reverse))
	}
	if reg.Forward[0].ID != "fwd-mid" || reg.Forward[1].ID != "fwd-prefix" || reg.Forward[2].ID != "fwd-suffix" {
		t.Fatalf("forward detector order changed: %+v", reg.Forward)
	}
	for _, d := range reg.Forward {
		if d.Source != SourceBuiltin {
			t.Errorf("detector %s: want builtin source", d.ID)
		}
	}
}

func TestBuild_UserOverrideIsSole(t *testing.T) {
	reg, err := Build(`(?i)(27F)`, "", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(reg.Forward) != 1 {
		t.Fatalf("user pattern must be the sole forward detector, got %d", len(reg.Forward))
	}
	if reg.Forward[0].Source != SourceUser {
		t.Errorf("want user source, got %s", reg.Forward[0].Source)
	}
	if len(reg.Reverse) != 3 {
		t.Errorf("reverse detectors must stay builtin, got %d", len(reg.Reverse))
	}
}

func TestBuild_PlainSubstringOverride(t *testing.T) {
	reg, err := Build("27F", "", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	tok, start, end, ok := reg.Forward[0].Match("S1_27F_x")
	if !ok || tok != "27F" || start != 3 || end != 6 {
		t.Fatalf("match = %q [%d,%d) ok=%v", tok, start, end, ok)
	}
}

func TestBuild_BadRegexIsConfigError(t *testing.T) {
	for _, args := range [][3]string{
		{"(", "", ""},
		{"", "[", ""},
		{"", "", "(unclosed"},
	} {
		_, err := Build(args[0], args[1], args[2])
		if err == nil {
			t.Fatalf("Build(%q,%q,%q): want error", args[0], args[1], args[2])
		}
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Fatalf("want *ConfigError, got %T: %v", err, err)
		}
	}
}

func TestNormalizeWell(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"A1", "A01", true},
		{"a1", "A01", true},
		{"A01", "A01", true},
		{"h12", "H12", true},
		{"H12", "H12", true},
		{"I01", "", false},
		{"A13", "", false},
		{"A0", "", false},
		{"A", "", false},
		{"A123", "", false},
	}
	for _, tc := range tests {
		got, ok := NormalizeWell(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NormalizeWell(%q) = %q,%v want %q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFindWell(t *testing.T) {
	reg, err := Build("", "", "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	tests := []struct {
		stem string
		want string
		ok   bool
	}{
		{"sample_A1", "A01", true},
		{"sample_h12", "H12", true},
		{"A01__27F", "A01", true},
		{"sample_I01", "", false},
		{"sample_A13", "", false},
		{"sample", "", false},
		{"plateA1x", "", false}, // no delimiter boundary
	}
	for _, tc := range tests {
		got, _, _, ok := reg.FindWell(tc.stem)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FindWell(%q) = %q,%v want %q,%v", tc.stem, got, ok, tc.want, tc.ok)
		}
	}
}
