package castellano

import (
	"regexp"
	"strings"
)

// Rule recognises one English sentence construction and translates it.
type Rule struct {
	// Name identifies the rule in logs and listings.
	Name string
	// Description is a one-line summary for learners.
	Description string
	// Examples are sentences the rule handles.
	Examples []string

	pattern *regexp.Regexp
	// apply receives the normalized sentence and the pattern submatches.
	// It returns ErrNoMatch, a *VocabularyError, an ErrInternal error, or
	// a result.
	apply func(t *Translator, sentence string, m []string, req Request) (Result, error)
}

// Match runs the rule against a normalized sentence.
func (r Rule) Match(t *Translator, sentence string, req Request) (Result, error) {
	m := r.pattern.FindStringSubmatch(asciiLower(sentence))
	if m == nil {
		return Result{}, ErrNoMatch
	}
	return r.apply(t, sentence, m, req)
}

// Patterns are anchored to the whole sentence and matched against its
// ASCII-lowercased form; the final period is optional.
var (
	progressiveRe = regexp.MustCompile(`^(i|you|he|she|we|they) (am|are|is) ([a-z]+ing)\.?$`)
	gustarRe      = regexp.MustCompile(`^(i|we) like (the )?([a-z]+)\.?$`)
	copulaRe      = regexp.MustCompile(`^(i|you|he|she|we|they) (am|are|is) ([a-z]+)\.?$`)
)

// asciiLower lowercases A-Z only. Unicode case folding would let letters
// such as U+017F or U+212A pass for ASCII words.
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// defaultRules returns the registered rules in priority order. Multi-word
// patterns come first so that the looser ser/estar pattern cannot shadow
// them ("I am studying" must not be read as an adjective).
func defaultRules() []Rule {
	return []Rule{
		{
			Name:        "present-progressive",
			Description: "subject + am/are/is + -ing verb → estar + gerund",
			Examples:    []string{"We are eating.", "I am studying."},
			pattern:     progressiveRe,
			apply:       (*Translator).presentProgressive,
		},
		{
			Name:        "gustar",
			Description: "I/we + like + noun → me/nos gusta + article + noun",
			Examples:    []string{"I like the car.", "We like soccer."},
			pattern:     gustarRe,
			apply:       (*Translator).gustar,
		},
		{
			Name:        "ser-estar-adjective",
			Description: "subject + am/are/is + adjective → ser/estar + agreeing adjective",
			Examples:    []string{"I am tired.", "She is hardworking."},
			pattern:     copulaRe,
			apply:       (*Translator).serEstarAdjective,
		},
	}
}

// detectSubject maps an English subject pronoun to a subject key.
// "you" follows the requested formality; "we" and "they" resolve to the
// masculine (generic) plural.
func detectSubject(pronoun string, you YouForm) (SubjectKey, bool) {
	switch strings.ToLower(pronoun) {
	case "i":
		return SubjectYo, true
	case "you":
		if you == YouFormal {
			return SubjectUsted, true
		}
		return SubjectTu, true
	case "he":
		return SubjectEl, true
	case "she":
		return SubjectElla, true
	case "we":
		return SubjectNosotros, true
	case "they":
		return SubjectEllos, true
	}
	return "", false
}
