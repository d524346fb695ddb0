package castellano

import (
	"fmt"
	"strings"
)

// serEstarAdjective translates "{subject} {am|are|is} {adjective}". The
// copula follows the adjective's semantic class and is never configurable.
func (t *Translator) serEstarAdjective(_ string, m []string, req Request) (Result, error) {
	key, ok := detectSubject(m[1], req.YouForm)
	if !ok {
		return Result{}, ErrNoMatch
	}
	word := strings.ToLower(m[3])

	adj, ok := t.lexicon.Adjective(word)
	if !ok {
		return Result{}, &VocabularyError{
			Kind:    WordAdjective,
			Word:    word,
			Message: fmt.Sprintf("I recognize the pattern, but I don't know the adjective '%s' yet (add it to the lexicon).", word),
			Fix:     "This app prioritizes correctness. Add the missing adjective to the lexicon to translate safely.",
		}
	}
	return t.predicate(key, adj, req)
}

// predicate builds "{copula} {adjective}" for an already resolved subject.
func (t *Translator) predicate(key SubjectKey, adj Adjective, req Request) (Result, error) {
	copula := adj.Class.Copula()
	verb, err := t.conjugations.ConjugatePresent(copula, key)
	if err != nil {
		return Result{}, err
	}
	surface := AgreeAdjective(adj.Lemma, key.Gender(req.SpeakerGender), key.Number())

	callouts := []Callout{
		callout(
			"Ser vs. Estar",
			"Use **estar** for temporary states/feelings and **ser** for traits/identity. "+
				fmt.Sprintf("Here, '%s' is treated as a **%s**, so we used **%s**.", adj.English, adj.Class, copula),
		),
		callout(
			"Adjective Agreement",
			fmt.Sprintf("Adjectives match **gender/number**. We used **%s** based on the subject.", surface),
		),
	}

	hint := []string{
		fmt.Sprintf("Verb root: **%s** (present tense). Conjugate for **%s**.", copula, key),
		fmt.Sprintf("Adjective lemma: **%s**. Make it agree with the subject.", adj.Lemma),
		"Put together: ______ ______.",
	}
	return modeResult(req.Mode, capitalize(verb)+" "+surface+".", hint, callouts), nil
}
