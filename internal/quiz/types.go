package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the variant of a Question.
type Kind int

const (
	KindNameToFormula Kind = iota
	KindFormulaToName
	KindStructureToName
	KindStructureToFormula
	KindConceptChoice
	KindConceptShort
)

// BasicKinds are the kinds of the basic family, drawn uniformly.
var BasicKinds = [...]Kind{
	KindNameToFormula,
	KindFormulaToName,
	KindStructureToName,
	KindStructureToFormula,
}

func (k Kind) String() string {
	switch k {
	case KindNameToFormula:
		return "name-to-formula"
	case KindFormulaToName:
		return "formula-to-name"
	case KindStructureToName:
		return "structure-to-name"
	case KindStructureToFormula:
		return "structure-to-formula"
	case KindConceptChoice:
		return "concept-choice"
	case KindConceptShort:
		return "concept-short"
	default:
		return "unknown"
	}
}

// Theme selects the question family.
type Theme int

const (
	ThemeBasic   Theme = iota // 기본테마: name, formula and structure interconversion
	ThemeConcept              // 시험테마: canned concept questions
)

// ErrUnknownTheme is returned by ParseTheme for unrecognised names.
var ErrUnknownTheme = errors.New("unknown theme")

func (t Theme) String() string {
	if t == ThemeConcept {
		return "concept"
	}
	return "basic"
}

// Label returns the Korean label shown in the UI.
func (t Theme) Label() string {
	if t == ThemeConcept {
		return "시험테마"
	}
	return "기본테마"
}

// ParseTheme accepts "basic" or "concept" (case-insensitive) and the Korean
// labels.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "basic", "기본테마", "기본":
		return ThemeBasic, nil
	case "concept", "시험테마", "시험":
		return ThemeConcept, nil
	}
	return ThemeBasic, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Mode selects how answers are entered.
type Mode int

const (
	ModeShort  Mode = iota // 주관식: free text
	ModeChoice             // 객관식: pick one of four
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	if m == ModeChoice {
		return "choice"
	}
	return "short"
}

// Label returns the Korean label shown in the UI.
func (m Mode) Label() string {
	if m == ModeChoice {
		return "객관식"
	}
	return "주관식"
}

// ParseMode accepts "short" or "choice" (case-insensitive) and the Korean
// labels.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "short", "주관식":
		return ModeShort, nil
	case "choice", "multiple-choice", "객관식", "오지선다":
		return ModeChoice, nil
	}
	return ModeShort, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
