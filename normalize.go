package castellano

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctReplacer folds typographic punctuation that phones and word
// processors insert into its ASCII form.
var punctReplacer = strings.NewReplacer(
	"’", "'", // ’ → '
	"‘", "'", // ‘ → '
	"․", ".", // ․ → .
	"．", ".", // ． → .
)

// NormalizeSentence trims s and collapses every run of whitespace into a
// single space. Case is preserved; the rules match case-insensitively.
func NormalizeSentence(s string) string {
	return strings.Join(strings.Fields(punctReplacer.Replace(s)), " ")
}

// capitalize upper-cases the first letter of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
