package substance

// Category groups substances in the memorize table.
type Category string

const (
	CategoryInorganic   Category = "무기물"
	CategoryHydrocarbon Category = "탄화수소"
	CategoryOrganic     Category = "유기 화합물"
	CategoryAcid        Category = "산"
)

// Substance is a single record of the dataset.
type Substance struct {
	// Name is the canonical Korean name, used for display and as the answer key.
	Name string `json:"name"`

	// Formula is the canonical formula as displayed, e.g. "C2H5OH" or "HCl".
	Formula string `json:"formula"`

	// Aliases are other Korean names accepted for Name. Name itself is
	// always accepted and need not be listed.
	Aliases []string `json:"aliases,omitempty"`

	// Structure describes the molecular shape in words. Shown when no
	// illustration exists.
	Structure string `json:"structure"`

	Category Category `json:"category,omitempty"`
}

// AcceptedNames returns Name followed by its aliases.
func (s Substance) AcceptedNames() []string {
	names := make([]string, 0, len(s.Aliases)+1)
	names = append(names, s.Name)
	for _, a := range s.Aliases {
		if a != s.Name {
			names = append(names, a)
		}
	}
	return names
}
