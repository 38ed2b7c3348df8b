package substance

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "substances": [
    {"name": "물", "formula": "H2O", "structure": "굽은형"},
    {"name": "이산화탄소", "formula": "CO2", "structure": "직선형", "aliases": ["탄산가스"]},
    {"name": "암모니아", "formula": "NH3", "structure": "삼각뿔형", "category": "무기물"},
    {"name": "메테인", "formula": "CH4", "structure": "정사면체형", "aliases": ["메탄"]}
  ]
}`

func TestLoad_Valid(t *testing.T) {
	d, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	s, ok := d.ByFormula("CH4")
	require.True(t, ok)
	assert.Equal(t, []string{"메탄"}, s.Aliases)
	assert.True(t, d.Index().KoreanMatch("탄산 가스", "이산화탄소"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"not json", `{"substances": [`, "invalid JSON"},
		{"missing substances", `{}`, "schema validation failed"},
		{"missing formula", `{"substances": [
			{"name": "a", "structure": ""},
			{"name": "b", "formula": "B", "structure": ""},
			{"name": "c", "formula": "C", "structure": ""},
			{"name": "d", "formula": "D", "structure": ""}
		]}`, "schema validation failed"},
		{"unknown field", `{"substances": [
			{"name": "a", "formula": "A", "structure": "", "colour": "red"},
			{"name": "b", "formula": "B", "structure": ""},
			{"name": "c", "formula": "C", "structure": ""},
			{"name": "d", "formula": "D", "structure": ""}
		]}`, "schema validation failed"},
		{"too few", `{"substances": [
			{"name": "a", "formula": "A", "structure": ""}
		]}`, "schema validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_InvariantViolation(t *testing.T) {
	doc := `{"substances": [
		{"name": "물", "formula": "H2O", "structure": ""},
		{"name": "얼음", "formula": "h2o", "structure": ""},
		{"name": "암모니아", "formula": "NH3", "structure": ""},
		{"name": "메테인", "formula": "CH4", "structure": ""}
	]}`

	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "duplicate formula")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(validDoc), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
