package castellano

import (
	"fmt"
	"strings"
)

// gustar translates "{i|we} like (the) {noun}". Only a single liked thing
// is supported, so the verb is always "gusta".
func (t *Translator) gustar(_ string, m []string, req Request) (Result, error) {
	who := strings.ToLower(m[1])
	nounKey := strings.ToLower(m[3])

	entry, ok := t.lexicon.Noun(nounKey)
	if !ok {
		return Result{}, &VocabularyError{
			Kind:    WordNoun,
			Word:    nounKey,
			Message: fmt.Sprintf("I recognize 'like', but I don't know the noun '%s' yet.", nounKey),
			Fix:     "Add the noun to the noun lexicon to translate gustar safely.",
		}
	}

	noun := entry.Form(req.Dialect)
	if noun == "" {
		return Result{}, internalErrorf("noun %q has no %s form", nounKey, req.Dialect)
	}
	article := "el"
	if entry.Gender == GenderFeminine {
		article = "la"
	}
	const gusta = "gusta"
	pronoun := "me"
	if who == "we" {
		pronoun = "nos"
	}

	callouts := []Callout{
		callout(
			"Gustar Structure",
			"With **gustar**, the thing you like is the grammatical subject. "+
				"So Spanish says: 'To me, the car is pleasing.'",
		),
		callout(
			"Indirect Object Pronouns",
			fmt.Sprintf("We used **%s** because it means 'to me' (me) or 'to us' (nos).", pronoun),
		),
		callout(
			"Articles",
			fmt.Sprintf("We used **%s** because '%s' is %s.", article, noun, entry.Gender.Word()),
		),
	}

	hint := []string{
		fmt.Sprintf("IO pronoun: **%s**", pronoun),
		fmt.Sprintf("Use **%s** (singular) because the thing liked is singular.", gusta),
		fmt.Sprintf("Use article **%s** + noun **%s**", article, noun),
		"Put together: ______ ______ ______ ______.",
	}
	return modeResult(req.Mode, fmt.Sprintf("%s %s %s %s.", pronoun, gusta, article, noun), hint, callouts), nil
}
