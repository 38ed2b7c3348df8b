package answer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// koreanPunctuation lists the characters treated as word separators when
// comparing Korean answers.
const koreanPunctuation = "()-[]{}·,.°"

var subscriptDigits = strings.NewReplacer(
	"₀", "0", "₁", "1", "₂", "2", "₃", "3", "₄", "4",
	"₅", "5", "₆", "6", "₇", "7", "₈", "8", "₉", "9",
)

// NormalizeFormula converts a chemical formula to its comparable form.
//
// Normalization rules:
// - Full-width ASCII is folded to its narrow form ("ＣＯ２" → "CO2")
// - Subscript digits become ASCII digits ("H₂O" → "H2O")
// - Surrounding whitespace is trimmed
// - The result is uppercased
//
// No chemical validation is done; any string is accepted.
func NormalizeFormula(s string) string {
	s = width.Fold.String(s)
	s = subscriptDigits.Replace(s)
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeKorean converts a Korean answer to its comparable form: Hangul is
// composed (NFC), the text is lowercased, every character in
// koreanPunctuation becomes a space and whitespace runs collapse to a single
// space. The function is idempotent.
func NormalizeKorean(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(koreanPunctuation, r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// KoreanKey is NormalizeKorean with all spaces removed. Alias membership is
// tested on this form so spacing never decides correctness.
func KoreanKey(s string) string {
	return strings.ReplaceAll(NormalizeKorean(s), " ", "")
}
