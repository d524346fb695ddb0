// Package castellano translates a small set of English sentence patterns
// into Spanish for learners. Every translation comes with grammar callouts,
// and a hint mode walks through the steps without giving the answer away.
//
// Vocabulary and conjugations are read once from the data files embedded
// in the package (or from a data directory) and are read-only afterwards,
// so a Translator is safe for concurrent use.
package castellano

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Translator holds the loaded reference data and the ordered rule list.
type Translator struct {
	lexicon      *Lexicon
	conjugations *ConjugationTable
	// rules are tried in order; the first one that matches decides.
	rules  []Rule
	logger *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used to report internal inconsistencies.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// New loads the vocabulary and conjugation data and returns a ready-to-use
// Translator. With an empty dataDir the embedded data is used; otherwise
// each file found in dataDir replaces its embedded counterpart.
// Incomplete data (e.g. a copula missing a person) is rejected here rather
// than on the first unlucky request.
func New(dataDir string, opts ...Option) (*Translator, error) {
	src := newDataSource(dataDir)

	lex, err := src.loadLexicon()
	if err != nil {
		return nil, fmt.Errorf("castellano: %w", err)
	}
	conj, err := src.loadConjugations()
	if err != nil {
		return nil, fmt.Errorf("castellano: %w", err)
	}

	t := &Translator{
		lexicon:      lex,
		conjugations: conj,
		rules:        defaultRules(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Lexicon returns the loaded vocabulary.
func (t *Translator) Lexicon() *Lexicon {
	return t.lexicon
}

// Conjugations returns the loaded conjugation table.
func (t *Translator) Conjugations() *ConjugationTable {
	return t.conjugations
}

// Rules returns the registered rules in the order they are tried.
func (t *Translator) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Translate normalizes req.Text and runs the rules in order. The first rule
// whose pattern applies decides the result; when none applies a fixed
// fallback listing the supported patterns is returned. Translate never
// fails: every outcome is reported inside the Result.
func (t *Translator) Translate(req Request) Result {
	if err := req.Validate(); err != nil {
		return Result{Error: err.Error(), Callouts: []Callout{}}
	}
	sentence := NormalizeSentence(req.Text)

	for _, rule := range t.rules {
		res, err := rule.Match(t, sentence, req)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		t.logger.Debug("rule matched",
			slog.String("rule", rule.Name),
			slog.String("sentence", sentence),
		)
		if err != nil {
			return t.failure(rule, sentence, err)
		}
		if res.Callouts == nil {
			res.Callouts = []Callout{}
		}
		return res
	}
	return t.fallback()
}

// failure turns a rule error into a result. Vocabulary gaps are expected
// and come with a suggested fix; anything else is a data defect.
func (t *Translator) failure(rule Rule, sentence string, err error) Result {
	var vocab *VocabularyError
	if errors.As(err, &vocab) {
		return Result{
			Error:    vocab.Error(),
			Callouts: []Callout{callout("MVP Limitation", vocab.Fix)},
		}
	}

	t.logger.Error("translation rule failed",
		slog.String("rule", rule.Name),
		slog.String("sentence", sentence),
		slog.Any("error", err),
	)
	if !errors.Is(err, ErrInternal) {
		err = fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return Result{Error: err.Error(), Callouts: []Callout{}}
}

func (t *Translator) fallback() Result {
	var examples, patterns []string
	for _, r := range t.rules {
		examples = append(examples, r.Examples[0])
		patterns = append(patterns, fmt.Sprintf("**%s** (e.g. %s)", r.Description, r.Examples[0]))
	}
	return Result{
		Error: "Sorry, that sentence pattern isn't supported yet. Try something like: " +
			strings.Join(examples, " / "),
		Callouts: []Callout{callout(
			"Supported Patterns",
			"This translator handles one simple sentence at a time: "+strings.Join(patterns, "; ")+".",
		)},
	}
}
