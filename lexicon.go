package castellano

import (
	"fmt"
	"sort"
	"strings"
)

// Adjective is an English adjective with its Spanish lemma.
type Adjective struct {
	// English is the lookup key (lowercase).
	English string `json:"english" yaml:"english"`
	// Lemma is the masculine singular Spanish form.
	Lemma string `json:"spanish" yaml:"spanish"`
	// Class decides between ser and estar.
	Class Class `json:"class" yaml:"class"`
}

// Noun is an English noun with its Spanish forms per dialect.
type Noun struct {
	English string             `json:"english" yaml:"english"`
	Forms   map[Dialect]string `json:"forms"   yaml:"forms"`
	Gender  Gender             `json:"gender"  yaml:"gender"`
}

// Form returns the noun as spoken in dialect d.
func (n Noun) Form(d Dialect) string {
	return n.Forms[d]
}

// ProgressiveVerb maps an English -ing form to a Spanish infinitive.
type ProgressiveVerb struct {
	Ing        string `json:"ing"              yaml:"ing"`
	Infinitive string `json:"infinitive"       yaml:"infinitive"`
	// Gerund overrides the regular gerund rule for irregular verbs.
	Gerund string `json:"gerund,omitempty" yaml:"gerund,omitempty"`
}

// Lexicon holds the bilingual vocabulary. It is read-only after loading.
type Lexicon struct {
	adjectives map[string]Adjective
	nouns      map[string]Noun
	verbs      map[string]ProgressiveVerb
}

func newLexicon() *Lexicon {
	return &Lexicon{
		adjectives: make(map[string]Adjective),
		nouns:      make(map[string]Noun),
		verbs:      make(map[string]ProgressiveVerb),
	}
}

// Adjective looks up an English adjective.
func (l *Lexicon) Adjective(key string) (Adjective, bool) {
	a, ok := l.adjectives[strings.ToLower(key)]
	return a, ok
}

// Noun looks up an English noun.
func (l *Lexicon) Noun(key string) (Noun, bool) {
	n, ok := l.nouns[strings.ToLower(key)]
	return n, ok
}

// ProgressiveVerb looks up an English -ing form.
func (l *Lexicon) ProgressiveVerb(ing string) (ProgressiveVerb, bool) {
	v, ok := l.verbs[strings.ToLower(ing)]
	return v, ok
}

// Adjectives returns all adjectives sorted by English key.
func (l *Lexicon) Adjectives() []Adjective {
	out := make([]Adjective, 0, len(l.adjectives))
	for _, a := range l.adjectives {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].English < out[j].English })
	return out
}

// Nouns returns all nouns sorted by English key.
func (l *Lexicon) Nouns() []Noun {
	out := make([]Noun, 0, len(l.nouns))
	for _, n := range l.nouns {
		forms := make(map[Dialect]string, len(n.Forms))
		for d, f := range n.Forms {
			forms[d] = f
		}
		n.Forms = forms
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].English < out[j].English })
	return out
}

// ProgressiveVerbs returns all -ing verbs sorted by English form.
func (l *Lexicon) ProgressiveVerbs() []ProgressiveVerb {
	out := make([]ProgressiveVerb, 0, len(l.verbs))
	for _, v := range l.verbs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ing < out[j].Ing })
	return out
}

// newAdjective parses a line from adjectives.txt.
// Line format: english|lemma|class
func newAdjective(line string) (Adjective, error) {
	parts := splitFields(line, 3)
	if parts == nil {
		return Adjective{}, fmt.Errorf("want english|lemma|class, got %q", line)
	}
	a := Adjective{
		English: strings.ToLower(parts[0]),
		Lemma:   strings.ToLower(parts[1]),
		Class:   Class(strings.ToLower(parts[2])),
	}
	if !a.Class.IsValid() {
		return Adjective{}, fmt.Errorf("adjective %q: unknown class %q", a.English, parts[2])
	}
	if !agreeable(a.Lemma) {
		return Adjective{}, fmt.Errorf("adjective %q: lemma %q cannot be inflected", a.English, a.Lemma)
	}
	return a, nil
}

// newNoun parses a line from nouns.txt.
// Line format: english|gender|mx=form,es=form
func newNoun(line string) (Noun, error) {
	parts := splitFields(line, 3)
	if parts == nil {
		return Noun{}, fmt.Errorf("want english|gender|forms, got %q", line)
	}
	n := Noun{
		English: strings.ToLower(parts[0]),
		Gender:  Gender(strings.ToLower(parts[1])),
		Forms:   make(map[Dialect]string, len(Dialects)),
	}
	if !n.Gender.IsValid() {
		return Noun{}, fmt.Errorf("noun %q: unknown gender %q", n.English, parts[1])
	}
	for _, pair := range strings.Split(parts[2], ",") {
		d, form, ok := strings.Cut(strings.TrimSpace(pair), "=")
		dialect := Dialect(strings.TrimSpace(d))
		if !ok || !dialect.IsValid() || strings.TrimSpace(form) == "" {
			return Noun{}, fmt.Errorf("noun %q: bad form %q", n.English, pair)
		}
		n.Forms[dialect] = strings.TrimSpace(form)
	}
	for _, d := range Dialects {
		if _, ok := n.Forms[d]; !ok {
			return Noun{}, fmt.Errorf("noun %q: missing %s form", n.English, d)
		}
	}
	return n, nil
}

// newProgressiveVerb parses a line from progressive.txt.
// Line format: ing|infinitive[|gerund]
func newProgressiveVerb(line string) (ProgressiveVerb, error) {
	parts := strings.Split(line, "|")
	if len(parts) == 2 {
		parts = append(parts, "")
	}
	if len(parts) != 3 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return ProgressiveVerb{}, fmt.Errorf("want ing|infinitive[|gerund], got %q", line)
	}
	v := ProgressiveVerb{
		Ing:        strings.ToLower(strings.TrimSpace(parts[0])),
		Infinitive: strings.ToLower(strings.TrimSpace(parts[1])),
		Gerund:     strings.ToLower(strings.TrimSpace(parts[2])),
	}
	if !strings.HasSuffix(v.Ing, "ing") {
		return ProgressiveVerb{}, fmt.Errorf("verb %q: not an -ing form", v.Ing)
	}
	if v.Gerund == "" {
		if _, err := BuildGerund(v.Infinitive); err != nil {
			return ProgressiveVerb{}, fmt.Errorf("verb %q: %w (add an explicit gerund)", v.Ing, err)
		}
	}
	return v, nil
}

// splitFields splits a "|"-separated line into exactly n trimmed,
// non-empty fields, or returns nil.
func splitFields(line string, n int) []string {
	parts := strings.Split(line, "|")
	if len(parts) != n {
		return nil
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
		if parts[i] == "" {
			return nil
		}
	}
	return parts
}
