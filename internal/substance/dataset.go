package substance

import (
	"strings"

	"github.com/chemiz/chemiz/internal/answer"
)

// Dataset is a validated, read-only set of substances with lookup indices.
type Dataset struct {
	items     []Substance
	byName    map[string]int
	byFormula map[string]int
	index     *answer.Index
}

// New validates items and builds a Dataset from them.
// Returns a *ValidationError if the records break a dataset invariant.
func New(items []Substance) (*Dataset, error) {
	if err := validateSubstances(items); err != nil {
		return nil, err
	}

	d := &Dataset{
		items:     make([]Substance, len(items)),
		byName:    make(map[string]int, len(items)),
		byFormula: make(map[string]int, len(items)),
	}
	copy(d.items, items)

	aliases := make(map[string][]string, len(items))
	for i, s := range d.items {
		d.byName[answer.NormalizeKorean(s.Name)] = i
		d.byFormula[answer.NormalizeFormula(s.Formula)] = i
		aliases[s.Name] = s.Aliases
	}
	d.index = answer.NewIndex(aliases)

	return d, nil
}

// Default returns the built-in dataset. It panics if the seed data is
// invalid, which the package tests rule out.
func Default() *Dataset {
	d, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return d
}

// Len returns the number of substances.
func (d *Dataset) Len() int {
	return len(d.items)
}

// At returns the substance at position i.
func (d *Dataset) At(i int) Substance {
	return d.items[i]
}

// All returns the substances in dataset order.
func (d *Dataset) All() []Substance {
	out := make([]Substance, len(d.items))
	copy(out, d.items)
	return out
}

// Index returns the alias index built from the dataset.
func (d *Dataset) Index() *answer.Index {
	return d.index
}

// ByFormula looks a substance up by formula, ignoring case and subscripts.
func (d *Dataset) ByFormula(formula string) (Substance, bool) {
	i, ok := d.byFormula[answer.NormalizeFormula(formula)]
	if !ok {
		return Substance{}, false
	}
	return d.items[i], true
}

// ByName looks a substance up by its canonical name.
func (d *Dataset) ByName(name string) (Substance, bool) {
	i, ok := d.byName[answer.NormalizeKorean(name)]
	if !ok {
		return Substance{}, false
	}
	return d.items[i], true
}

// Search returns the substances whose name, alias, formula or category
// contains query. An empty query matches everything.
func (d *Dataset) Search(query string) []Substance {
	q := strings.TrimSpace(query)
	if q == "" {
		return d.All()
	}
	kq := answer.NormalizeKorean(q)
	fq := answer.NormalizeFormula(q)

	var out []Substance
	for _, s := range d.items {
		if matchesQuery(s, kq, fq) {
			out = append(out, s)
		}
	}
	return out
}

func matchesQuery(s Substance, kq, fq string) bool {
	if fq != "" && strings.Contains(answer.NormalizeFormula(s.Formula), fq) {
		return true
	}
	if kq == "" {
		return false
	}
	for _, n := range s.AcceptedNames() {
		if strings.Contains(answer.NormalizeKorean(n), kq) {
			return true
		}
	}
	return strings.Contains(answer.NormalizeKorean(string(s.Category)), kq)
}

// FilterCategory returns the items in the given category. An empty category
// matches everything.
func FilterCategory(items []Substance, category Category) []Substance {
	if category == "" {
		return items
	}
	var out []Substance
	for _, s := range items {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
