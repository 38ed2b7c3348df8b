package answer

// Space is the representation domain of an expected answer.
type Space int

const (
	Formula Space = iota // chemical formula, compared with NormalizeFormula
	Korean               // Korean substance name, alias-aware
	Exact                // Korean text without aliases (concept short answers)
)

func (s Space) String() string {
	switch s {
	case Formula:
		return "formula"
	case Korean:
		return "korean"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// FormulaMatch reports whether the input names the same formula as target.
func FormulaMatch(input, target string) bool {
	in := NormalizeFormula(input)
	if in == "" {
		return false
	}
	return in == NormalizeFormula(target)
}

// ExactMatch compares two Korean answers by their KoreanKey, without any
// alias set. Spacing and punctuation never decide the result.
func ExactMatch(input, target string) bool {
	in := KoreanKey(input)
	if in == "" {
		return false
	}
	return in == KoreanKey(target)
}

// Index maps each canonical substance name to the set of answers accepted
// for it. It is built once and never modified.
type Index struct {
	accepted map[string]map[string]struct{}
}

// NewIndex builds an Index from canonical names to their aliases. Every name
// is accepted for itself whether or not it appears in its alias list.
func NewIndex(aliases map[string][]string) *Index {
	idx := &Index{accepted: make(map[string]map[string]struct{}, len(aliases))}
	for name, list := range aliases {
		set := map[string]struct{}{KoreanKey(name): {}}
		for _, a := range list {
			if c := KoreanKey(a); c != "" {
				set[c] = struct{}{}
			}
		}
		idx.accepted[NormalizeKorean(name)] = set
	}
	return idx
}

// KoreanMatch reports whether input is an accepted answer for targetName.
// A name that was never registered accepts only itself.
func (idx *Index) KoreanMatch(input, targetName string) bool {
	in := KoreanKey(input)
	if in == "" {
		return false
	}
	set, ok := idx.accepted[NormalizeKorean(targetName)]
	if !ok {
		return in == KoreanKey(targetName)
	}
	_, hit := set[in]
	return hit
}

// Match grades input against target in the given answer space.
func (idx *Index) Match(space Space, input, target string) bool {
	switch space {
	case Formula:
		return FormulaMatch(input, target)
	case Korean:
		return idx.KoreanMatch(input, target)
	case Exact:
		return ExactMatch(input, target)
	default:
		return false
	}
}
