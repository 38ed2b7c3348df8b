package quiz

import (
	"errors"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"", ThemeBasic, false},
		{"basic", ThemeBasic, false},
		{"BASIC", ThemeBasic, false},
		{"기본테마", ThemeBasic, false},
		{"concept", ThemeConcept, false},
		{" 시험테마 ", ThemeConcept, false},
		{"hard", ThemeBasic, true},
	}

	for _, tc := range tests {
		got, err := ParseTheme(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownTheme) {
				t.Errorf("ParseTheme(%q) err = %v, want ErrUnknownTheme", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTheme(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseTheme(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeShort, false},
		{"short", ModeShort, false},
		{"주관식", ModeShort, false},
		{"choice", ModeChoice, false},
		{"Multiple-Choice", ModeChoice, false},
		{"오지선다", ModeChoice, false},
		{"essay", ModeShort, true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrUnknownMode", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	for _, k := range BasicKinds {
		if k.String() == "unknown" {
			t.Errorf("basic kind %d has no name", k)
		}
	}
	if Kind(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range kind")
	}
}

func TestLabels(t *testing.T) {
	if ThemeBasic.Label() != "기본테마" || ThemeConcept.Label() != "시험테마" {
		t.Error("unexpected theme labels")
	}
	if ModeShort.Label() != "주관식" || ModeChoice.Label() != "객관식" {
		t.Error("unexpected mode labels")
	}
}
