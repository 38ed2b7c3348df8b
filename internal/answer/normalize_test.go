package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFormula(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"H2O", "H2O"},
		{"h2o", "H2O"},
		{"H₂O", "H2O"},
		{"c₂h₅oh", "C2H5OH"},
		{"₀₁₂₃₄₅₆₇₈₉", "0123456789"},
		{" CO2 ", "CO2"},
		{"ＣＯ２", "CO2"},
		{"", ""},
		{"not a formula", "NOT A FORMULA"},
	}

	for _, tc := range tests {
		got := NormalizeFormula(tc.input)
		if got != tc.want {
			t.Errorf("NormalizeFormula(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeKorean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"물", "물"},
		{"  물  ", "물"},
		{"이산화  탄소", "이산화 탄소"},
		{"에틸렌(에텐)", "에틸렌 에텐"},
		{"메틸-알코올", "메틸 알코올"},
		{"[황산]", "황산"},
		{"{질산}", "질산"},
		{"가·나,다.라", "가 나 다 라"},
		{"Water", "water"},
		{"\t탄소\n", "탄소"},
		{"", ""},
		{"109.5°", "109 5"},
		{"()-[]{}·,.°", ""},
	}

	for _, tc := range tests {
		got := NormalizeKorean(tc.input)
		if got != tc.want {
			t.Errorf("NormalizeKorean(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeKorean_ComposesJamo(t *testing.T) {
	// "물" spelled as conjoining jamo (NFD).
	decomposed := "\u1106\u116e\u11af"
	assert.Equal(t, "물", NormalizeKorean(decomposed))
}

func TestNormalizeKorean_Idempotent(t *testing.T) {
	inputs := []string{
		"이산화 탄소",
		"  에틸렌 (에텐) ",
		"가·나,다.라",
		"H2O",
		"MiXeD 케이스",
		"{[()]}",
		"",
	}
	for _, in := range inputs {
		once := NormalizeKorean(in)
		assert.Equal(t, once, NormalizeKorean(once), "input %q", in)
	}
}
