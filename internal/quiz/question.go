package quiz

import (
	"fmt"
	"slices"

	"github.com/chemiz/chemiz/internal/answer"
	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/substance"
)

// Question is a generated question ready for display. The concrete types
// below are its only implementations; switch on them (or on Kind) to reach
// variant-specific fields. Questions are never modified after generation.
type Question interface {
	Kind() Kind

	// Prompt is the question text shown to the learner.
	Prompt() string

	// Answer is the canonical correct answer in the question's answer space.
	Answer() string

	// Space selects the matching rule used to grade this question.
	Space() answer.Space

	// Choices returns the options of a multiple-choice question, or nil for
	// a short-answer question.
	Choices() []string

	// Explanation is shown after grading.
	Explanation() string
}

// NameToFormula shows a name and expects the formula.
type NameToFormula struct {
	Substance substance.Substance
	Options   []string
}

func (q NameToFormula) Kind() Kind          { return KindNameToFormula }
func (q NameToFormula) Space() answer.Space { return answer.Formula }
func (q NameToFormula) Choices() []string   { return slices.Clone(q.Options) }
func (q NameToFormula) Explanation() string { return describe(q.Substance) }

func (q NameToFormula) Prompt() string {
	return fmt.Sprintf("%s의 시성식은?", q.Substance.Name)
}

func (q NameToFormula) Answer() string {
	return answer.NormalizeFormula(q.Substance.Formula)
}

// FormulaToName shows a formula and expects the Korean name.
type FormulaToName struct {
	Substance substance.Substance
	Options   []string
}

func (q FormulaToName) Kind() Kind          { return KindFormulaToName }
func (q FormulaToName) Space() answer.Space { return answer.Korean }
func (q FormulaToName) Answer() string      { return q.Substance.Name }
func (q FormulaToName) Choices() []string   { return slices.Clone(q.Options) }
func (q FormulaToName) Explanation() string { return describe(q.Substance) }

func (q FormulaToName) Prompt() string {
	return fmt.Sprintf("시성식 %s의 한글 이름은?", q.Substance.Formula)
}

// StructureToName shows a structure and expects the Korean name. Image is
// nil when no diagram is available; Description is always set and is shown
// in its place.
type StructureToName struct {
	Substance   substance.Substance
	Image       *illustration.Handle
	Description string
	Options     []string
}

func (q StructureToName) Kind() Kind          { return KindStructureToName }
func (q StructureToName) Prompt() string      { return "아래 구조식의 한글 이름은?" }
func (q StructureToName) Space() answer.Space { return answer.Korean }
func (q StructureToName) Answer() string      { return q.Substance.Name }
func (q StructureToName) Choices() []string   { return slices.Clone(q.Options) }
func (q StructureToName) Explanation() string { return describe(q.Substance) }

// StructureToFormula shows a structure and expects the formula.
type StructureToFormula struct {
	Substance   substance.Substance
	Image       *illustration.Handle
	Description string
	Options     []string
}

func (q StructureToFormula) Kind() Kind          { return KindStructureToFormula }
func (q StructureToFormula) Prompt() string      { return "아래 구조식의 시성식은?" }
func (q StructureToFormula) Space() answer.Space { return answer.Formula }
func (q StructureToFormula) Choices() []string   { return slices.Clone(q.Options) }
func (q StructureToFormula) Explanation() string { return describe(q.Substance) }

func (q StructureToFormula) Answer() string {
	return answer.NormalizeFormula(q.Substance.Formula)
}

// Concept is a question from the concept bank.
type Concept struct {
	Entry ConceptEntry
	Mode  Mode
}

func (q Concept) Prompt() string      { return q.Entry.Prompt }
func (q Concept) Answer() string      { return q.Entry.Answer }
func (q Concept) Space() answer.Space { return answer.Exact }
func (q Concept) Explanation() string { return q.Entry.Explanation }

func (q Concept) Kind() Kind {
	if q.Mode == ModeChoice {
		return KindConceptChoice
	}
	return KindConceptShort
}

func (q Concept) Choices() []string {
	if q.Mode != ModeChoice {
		return nil
	}
	return slices.Clone(q.Entry.Options[:])
}

// Structure returns the diagram and fallback description of a structure
// question. ok is false for every other kind.
func Structure(q Question) (image *illustration.Handle, description string, ok bool) {
	switch v := q.(type) {
	case StructureToName:
		return v.Image, v.Description, true
	case StructureToFormula:
		return v.Image, v.Description, true
	}
	return nil, "", false
}

func describe(s substance.Substance) string {
	return fmt.Sprintf("%s (%s): %s", s.Name, s.Formula, s.Structure)
}
