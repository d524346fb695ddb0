package castellano

import (
	"errors"
	"fmt"
)

// Sentinel errors used across the engine.
var (
	// ErrNoMatch is returned by a rule whose pattern does not apply.
	// The dispatcher moves on to the next rule.
	ErrNoMatch = errors.New("pattern does not apply")

	// ErrInternal marks a gap in the reference data that a rule assumed
	// could not happen, e.g. a subject key without a conjugation entry.
	ErrInternal = errors.New("internal limitation")

	// ErrGerundUnsupported is returned for infinitives outside the regular
	// -ar/-er/-ir gerund rule.
	ErrGerundUnsupported = errors.New("gerund not supported")

	// ErrInvalidOption is returned when a request option is outside its
	// enumeration.
	ErrInvalidOption = errors.New("invalid option")
)

// WordKind names the vocabulary list a word was looked up in.
type WordKind string

const (
	WordAdjective       WordKind = "adjective"
	WordNoun            WordKind = "noun"
	WordProgressiveVerb WordKind = "-ing verb"
)

// VocabularyError is returned when a rule recognises the sentence pattern
// but the lexicon lacks one of its words.
type VocabularyError struct {
	Kind    WordKind
	Word    string
	Message string
	// Fix tells the learner how the gap can be closed.
	Fix string
}

func (e *VocabularyError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Word)
}

func internalErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
