package castellano

import (
	"fmt"
	"strings"
)

// AgreeAdjective inflects a masculine singular lemma for gender and number.
//
// Feminine replaces a final -o with -a ("cansado" → "cansada"); lemmas in
// -or add -a ("trabajador" → "trabajadora"); any other ending is invariant.
// Plural then adds -s after a vowel or -es after a consonant, with -z
// becoming -ces. A form that already ends in -s is taken as plural, which
// makes the function idempotent for a fixed gender and number.
func AgreeAdjective(lemma string, gender Gender, number Number) string {
	form := lemma
	if gender == GenderFeminine {
		switch {
		case strings.HasSuffix(form, "o"):
			form = strings.TrimSuffix(form, "o") + "a"
		case strings.HasSuffix(form, "or"):
			form += "a"
		}
	}
	if number == NumberPlural && !strings.HasSuffix(form, "s") {
		form = pluralize(form)
	}
	return form
}

func pluralize(form string) string {
	switch {
	case form == "":
		return form
	case strings.HasSuffix(form, "z"):
		return strings.TrimSuffix(form, "z") + "ces"
	case endsInVowel(form):
		return form + "s"
	}
	return form + "es"
}

func endsInVowel(s string) bool {
	r := []rune(s)
	if len(r) == 0 {
		return false
	}
	return strings.ContainsRune("aeiouáéíóú", r[len(r)-1])
}

// agreeable reports whether AgreeAdjective can inflect lemma. Lemmas ending
// in -s would be mistaken for plurals, and accented final syllables lose
// their accent in the plural, which the rule above does not model.
func agreeable(lemma string) bool {
	if lemma == "" || strings.HasSuffix(lemma, "s") {
		return false
	}
	r := []rune(lemma)
	last := r[len(r)-1]
	if !endsInVowel(lemma) && len(r) > 1 && strings.ContainsRune("áéíóú", r[len(r)-2]) {
		return false
	}
	return last >= 'a' && last <= 'z' || strings.ContainsRune("áéíóú", last)
}

// BuildGerund forms the gerund of a regular infinitive: -ar verbs take
// -ando, -er and -ir verbs take -iendo. Anything else (including the bare
// irregular "ir") returns ErrGerundUnsupported rather than a guess.
func BuildGerund(infinitive string) (string, error) {
	inf := strings.ToLower(strings.TrimSpace(infinitive))
	if len(inf) > 2 {
		stem := inf[:len(inf)-2]
		switch inf[len(inf)-2:] {
		case "ar":
			return stem + "ando", nil
		case "er", "ir":
			return stem + "iendo", nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrGerundUnsupported, infinitive)
}
