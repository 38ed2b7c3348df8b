package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chemiz/chemiz/internal/answer"
	"github.com/chemiz/chemiz/internal/illustration"
	"github.com/chemiz/chemiz/internal/substance"
)

// ErrTooFewChoices is returned when the dataset cannot supply ChoiceCount
// distinct options for a multiple-choice question.
var ErrTooFewChoices = errors.New("dataset has too few distinct values for multiple choice")

// Generator builds questions from a dataset and a concept bank.
type Generator struct {
	dataset *substance.Dataset
	bank    []ConceptEntry
	art     illustration.Provider
	rng     *rand.Rand
}

// NewRand returns a PCG source seeded with seed, or with the current time
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewGenerator checks the dataset and bank preconditions and returns a
// Generator. art may be nil, in which case structure questions always fall
// back to the textual description.
func NewGenerator(ds *substance.Dataset, bank []ConceptEntry, art illustration.Provider, rng *rand.Rand) (*Generator, error) {
	if ds == nil {
		return nil, errors.New("nil dataset")
	}
	names := make(map[string]bool, ds.Len())
	formulas := make(map[string]bool, ds.Len())
	for _, s := range ds.All() {
		names[s.Name] = true
		formulas[answer.NormalizeFormula(s.Formula)] = true
	}
	if len(names) < ChoiceCount || len(formulas) < ChoiceCount {
		return nil, fmt.Errorf("%w: %d names, %d formulas", ErrTooFewChoices, len(names), len(formulas))
	}
	if err := ValidateBank(bank); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Generator{
		dataset: ds,
		bank:    bank,
		art:     art,
		rng:     rng,
	}, nil
}

// Next generates a question of the given theme and mode.
func (g *Generator) Next(theme Theme, mode Mode) Question {
	if theme == ThemeConcept {
		return g.concept(mode)
	}
	return g.basic(mode)
}

// basic picks a substance and a basic kind uniformly at random.
func (g *Generator) basic(mode Mode) Question {
	s := g.dataset.At(g.rng.IntN(g.dataset.Len()))
	kind := BasicKinds[g.rng.IntN(len(BasicKinds))]

	switch kind {
	case KindNameToFormula:
		q := NameToFormula{Substance: s}
		if mode == ModeChoice {
			q.Options = g.choices(q.Answer(), answer.Formula)
		}
		return q

	case KindFormulaToName:
		q := FormulaToName{Substance: s}
		if mode == ModeChoice {
			q.Options = g.choices(q.Answer(), answer.Korean)
		}
		return q

	case KindStructureToName:
		q := StructureToName{Substance: s, Image: g.image(s), Description: s.Structure}
		if mode == ModeChoice {
			q.Options = g.choices(q.Answer(), answer.Korean)
		}
		return q

	default:
		q := StructureToFormula{Substance: s, Image: g.image(s), Description: s.Structure}
		if mode == ModeChoice {
			q.Options = g.choices(q.Answer(), answer.Formula)
		}
		return q
	}
}

// image returns the diagram for s when its formula is allow-listed and the
// provider has it.
func (g *Generator) image(s substance.Substance) *illustration.Handle {
	if g.art == nil || !illustration.Allowed(s.Formula) {
		return nil
	}
	h, ok := g.art.Lookup(s.Formula)
	if !ok {
		return nil
	}
	return &h
}

// choices returns correct plus ChoiceCount-1 distinct distractors drawn from
// the dataset field matching space, in random order. The draw walks a random
// permutation of the dataset, so it ends after at most Len steps.
func (g *Generator) choices(correct string, space answer.Space) []string {
	out := make([]string, 0, ChoiceCount)
	out = append(out, correct)
	seen := map[string]bool{correct: true}

	for _, i := range g.rng.Perm(g.dataset.Len()) {
		if len(out) == ChoiceCount {
			break
		}
		s := g.dataset.At(i)
		v := s.Name
		if space == answer.Formula {
			v = answer.NormalizeFormula(s.Formula)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}

	g.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// concept picks a bank entry uniformly at random.
func (g *Generator) concept(mode Mode) Question {
	e := g.bank[g.rng.IntN(len(g.bank))]
	return Concept{Entry: e, Mode: mode}
}
