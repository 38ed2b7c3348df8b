package substance

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemiz/chemiz/internal/answer"
)

func TestSeedIsValid(t *testing.T) {
	d, err := New(Seed())
	require.NoError(t, err)
	assert.Equal(t, len(seedSubstances), d.Len())
}

func TestSeedHasOriginalSubstances(t *testing.T) {
	d := Default()
	for _, f := range []string{"H2O", "CO2", "NH3", "C2H4", "C2H2", "HCHO", "HCN"} {
		_, ok := d.ByFormula(f)
		assert.True(t, ok, "expected %s in seed", f)
	}

	idx := d.Index()
	aliases := []struct{ alias, name string }{
		{"에틸렌", "에텐"},
		{"아세틸렌", "에타인"},
		{"에인", "에타인"},
		{"메탄알", "포름알데히드"},
		{"청산수소", "시안화수소"},
	}
	for _, a := range aliases {
		assert.True(t, idx.KoreanMatch(a.alias, a.name), "%s should be accepted for %s", a.alias, a.name)
	}
}

func TestDefault_EverySubstanceMatchesItself(t *testing.T) {
	d := Default()
	idx := d.Index()

	for _, s := range d.All() {
		assert.True(t, answer.FormulaMatch(s.Formula, s.Formula), "formula %s", s.Formula)
		assert.True(t, idx.KoreanMatch(s.Name, s.Name), "name %s", s.Name)
		for _, a := range s.Aliases {
			assert.True(t, idx.KoreanMatch(a, s.Name), "alias %s for %s", a, s.Name)
		}
	}
}

func TestByFormula(t *testing.T) {
	d := Default()

	s, ok := d.ByFormula("h₂o")
	require.True(t, ok)
	assert.Equal(t, "물", s.Name)

	s, ok = d.ByFormula("hcl")
	require.True(t, ok)
	assert.Equal(t, "염화수소", s.Name)

	_, ok = d.ByFormula("XeF4")
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	d := Default()

	s, ok := d.ByName(" 이산화탄소 ")
	require.True(t, ok)
	assert.Equal(t, "CO2", s.Formula)

	_, ok = d.ByName("에틸렌")
	assert.False(t, ok, "aliases are not canonical names")
}

func TestAcceptedNames(t *testing.T) {
	s := Substance{Name: "에텐", Aliases: []string{"에틸렌", "에텐"}}
	assert.Equal(t, []string{"에텐", "에틸렌"}, s.AcceptedNames())

	bare := Substance{Name: "물"}
	assert.Equal(t, []string{"물"}, bare.AcceptedNames())
}

func TestSearch(t *testing.T) {
	d := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty returns all", "", nil},
		{"by name", "이산화", []string{"이산화탄소"}},
		{"by alias", "아세틸렌", []string{"에타인"}},
		{"by formula lower case", "hcho", []string{"포름알데히드"}},
		{"by formula with subscript", "C₂H₅", []string{"에탄올"}},
		{"by category", "탄화수소", []string{"메테인", "에테인", "프로페인", "에텐", "에타인"}},
		{"no match", "우라늄", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Search(tt.query)
			if tt.want == nil {
				assert.Len(t, got, d.Len())
				return
			}
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterCategory(t *testing.T) {
	d := Default()

	acids := FilterCategory(d.All(), CategoryAcid)
	require.NotEmpty(t, acids)
	for _, s := range acids {
		assert.Equal(t, CategoryAcid, s.Category)
	}

	assert.Len(t, FilterCategory(d.All(), ""), d.Len())
}

func TestNew_Validation(t *testing.T) {
	base := func() []Substance {
		return []Substance{
			{Name: "물", Formula: "H2O", Structure: "굽은형"},
			{Name: "이산화탄소", Formula: "CO2", Structure: "직선형"},
			{Name: "암모니아", Formula: "NH3", Structure: "삼각뿔형"},
			{Name: "메테인", Formula: "CH4", Structure: "정사면체형"},
		}
	}

	tests := []struct {
		name    string
		mutate  func([]Substance) []Substance
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(s []Substance) []Substance { return s },
		},
		{
			name:    "too few records",
			mutate:  func(s []Substance) []Substance { return s[:3] },
			wantMsg: "need at least 4 distinct names",
		},
		{
			name: "duplicate formula after normalization",
			mutate: func(s []Substance) []Substance {
				s[1].Formula = "h₂o"
				return s
			},
			wantMsg: "duplicate formula",
		},
		{
			name: "duplicate name",
			mutate: func(s []Substance) []Substance {
				s[1].Name = "물"
				return s
			},
			wantMsg: "duplicate name",
		},
		{
			name: "alias shared by two substances",
			mutate: func(s []Substance) []Substance {
				s[0].Aliases = []string{"탄산가스"}
				s[1].Aliases = []string{"탄산 가스"}
				return s
			},
			wantMsg: "claimed by both",
		},
		{
			name: "empty formula",
			mutate: func(s []Substance) []Substance {
				s[2].Formula = " "
				return s
			},
			wantMsg: "formula is empty",
		},
		{
			name: "empty name",
			mutate: func(s []Substance) []Substance {
				s[3].Name = ""
				return s
			},
			wantMsg: "name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(base()))
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg), "error %q should contain %q", err, tt.wantMsg)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	items := Seed()
	d, err := New(items)
	require.NoError(t, err)

	items[0].Name = "바뀐 이름"
	assert.Equal(t, "물", d.At(0).Name)
}
