package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testIndex() *Index {
	return NewIndex(map[string][]string{
		"물":      nil,
		"이산화탄소":  nil,
		"에텐":     {"에틸렌"},
		"포름알데히드": {"메탄알", "폼알데하이드"},
	})
}

func TestFormulaMatch(t *testing.T) {
	tests := []struct {
		input  string
		target string
		want   bool
	}{
		{"H2O", "H2O", true},
		{"h₂o", "H2O", true},
		{"h2o", "H₂O", true},
		{" co2", "CO2", true},
		{"CO", "CO2", false},
		{"", "H2O", false},
		{"   ", "H2O", false},
	}

	for _, tc := range tests {
		got := FormulaMatch(tc.input, tc.target)
		if got != tc.want {
			t.Errorf("FormulaMatch(%q, %q) = %v, want %v", tc.input, tc.target, got, tc.want)
		}
	}
}

func TestKoreanMatch(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		input  string
		target string
		want   bool
	}{
		{"물", "물", true},
		{" 물 ", "물", true},
		{"Water", "물", false},
		{"WATER", "물", false},
		{"이산화탄소", "이산화탄소", true},
		{"이산화 탄소", "이산화탄소", true},
		{"이산화-탄소", "이산화탄소", true},
		{"이산화탄", "이산화탄소", false},
		{"에틸렌", "에텐", true},
		{"에텐", "에텐", true},
		{"메탄알", "포름알데히드", true},
		{"폼알데하이드", "포름알데히드", true},
		{"에틸렌", "포름알데히드", false},
		{"", "물", false},
	}

	for _, tc := range tests {
		got := idx.KoreanMatch(tc.input, tc.target)
		if got != tc.want {
			t.Errorf("KoreanMatch(%q, %q) = %v, want %v", tc.input, tc.target, got, tc.want)
		}
	}
}

func TestKoreanMatch_UnregisteredNameAcceptsItself(t *testing.T) {
	idx := testIndex()

	assert.True(t, idx.KoreanMatch("암모니아", "암모니아"))
	assert.True(t, idx.KoreanMatch("암모 니아", "암모니아"))
	assert.False(t, idx.KoreanMatch("에틸렌", "암모니아"))
}

func TestExactMatch(t *testing.T) {
	assert.True(t, ExactMatch("공유 결합", "공유 결합"))
	assert.True(t, ExactMatch(" 공유  결합 ", "공유 결합"))
	assert.True(t, ExactMatch("공유-결합", "공유 결합"))
	assert.True(t, ExactMatch("공유결합", "공유 결합"))
	assert.True(t, ExactMatch("평면삼각형", "평면 삼각형"))
	assert.True(t, ExactMatch("109.5", "109.5°"))
	assert.False(t, ExactMatch("107", "109.5°"))
	assert.False(t, ExactMatch("에틸렌", "에텐"))
	assert.False(t, ExactMatch("", ""))
}

func TestMatch_DispatchesOnSpace(t *testing.T) {
	idx := testIndex()

	assert.True(t, idx.Match(Formula, "c2h4", "C2H4"))
	assert.False(t, idx.Match(Formula, "에텐", "C2H4"))

	assert.True(t, idx.Match(Korean, "에틸렌", "에텐"))
	assert.False(t, idx.Match(Exact, "에틸렌", "에텐"))

	assert.False(t, idx.Match(Space(99), "물", "물"))
}

func TestSpaceString(t *testing.T) {
	assert.Equal(t, "formula", Formula.String())
	assert.Equal(t, "korean", Korean.String())
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "unknown", Space(42).String())
}
