package castellano

import (
	"fmt"
	"strings"
)

// presentProgressive translates "{subject} {am|are|is} {verb}ing" into
// estar + gerund.
func (t *Translator) presentProgressive(sentence string, m []string, req Request) (Result, error) {
	key, ok := detectSubject(m[1], req.YouForm)
	if !ok {
		return Result{}, ErrNoMatch
	}
	ing := strings.ToLower(m[3])

	verb, ok := t.lexicon.ProgressiveVerb(ing)
	if !ok {
		// Known -ing adjectives ("hardworking") belong to the copula rule.
		if _, isAdj := t.lexicon.Adjective(ing); isAdj {
			return Result{}, ErrNoMatch
		}
		return Result{}, &VocabularyError{
			Kind:    WordProgressiveVerb,
			Word:    ing,
			Message: fmt.Sprintf("I recognize the pattern, but I don't know the -ing verb '%s' yet.", ing),
			Fix:     "Add this -ing verb to the progressive verb list to support it.",
		}
	}

	estar, err := t.conjugations.ConjugatePresent("estar", key)
	if err != nil {
		return Result{}, err
	}
	gerund := verb.Gerund
	if gerund == "" {
		if gerund, err = BuildGerund(verb.Infinitive); err != nil {
			return Result{}, internalErrorf("gerund of %q: %v", verb.Infinitive, err)
		}
	}

	callouts := []Callout{callout(
		"Present Progressive",
		"Use **estar + gerund** to say what someone is doing right now. "+
			fmt.Sprintf("**%s %s** = '%s'", estar, gerund, sentence),
	)}

	hint := []string{
		fmt.Sprintf("Use **estar** in the present tense for **%s**.", key),
		fmt.Sprintf("Make the gerund: **%s** → **%s**", verb.Infinitive, gerund),
		"Put together: ______ ______.",
	}
	return modeResult(req.Mode, capitalize(estar)+" "+gerund+".", hint, callouts), nil
}
