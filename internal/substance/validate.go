package substance

import (
	"fmt"
	"strings"

	"github.com/chemiz/chemiz/internal/answer"
)

// MinDistinct is the smallest number of distinct names and of distinct
// formulas a dataset needs. Multiple-choice questions show this many options.
const MinDistinct = 4

// ValidationError lists every problem found in a dataset.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateSubstances performs all structural checks on the given records.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateSubstances(items []Substance) error {
	var errs []string

	names := make(map[string]string, len(items))    // normalized name → record name
	formulas := make(map[string]string, len(items)) // normalized formula → record name
	aliasOwner := make(map[string]string)           // alias key → record name

	for i, s := range items {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Sprintf("record %d: name is empty", i))
			continue
		}
		if answer.NormalizeFormula(s.Formula) == "" {
			errs = append(errs, fmt.Sprintf("%q: formula is empty", s.Name))
		}

		nameKey := answer.NormalizeKorean(s.Name)
		if prev, ok := names[nameKey]; ok {
			errs = append(errs, fmt.Sprintf("duplicate name: %q and %q", prev, s.Name))
		} else {
			names[nameKey] = s.Name
		}

		if f := answer.NormalizeFormula(s.Formula); f != "" {
			if prev, ok := formulas[f]; ok {
				errs = append(errs, fmt.Sprintf("duplicate formula %q: %q and %q", f, prev, s.Name))
			} else {
				formulas[f] = s.Name
			}
		}

		for _, a := range s.AcceptedNames() {
			key := answer.KoreanKey(a)
			if key == "" {
				errs = append(errs, fmt.Sprintf("%q: empty alias", s.Name))
				continue
			}
			if owner, ok := aliasOwner[key]; ok && owner != s.Name {
				errs = append(errs, fmt.Sprintf("alias %q is claimed by both %q and %q", a, owner, s.Name))
				continue
			}
			aliasOwner[key] = s.Name
		}
	}

	if len(names) < MinDistinct {
		errs = append(errs, fmt.Sprintf("need at least %d distinct names, got %d", MinDistinct, len(names)))
	}
	if len(formulas) < MinDistinct {
		errs = append(errs, fmt.Sprintf("need at least %d distinct formulas, got %d", MinDistinct, len(formulas)))
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
