package castellano

import (
	"fmt"
	"sort"
	"strings"
)

// requiredVerbs are the verbs the rules conjugate. Each must be present in
// the conjugation table with a form for every subject key.
var requiredVerbs = []string{"ser", "estar"}

// Paradigm is the present-tense conjugation of one verb.
type Paradigm struct {
	// Infinitive is the verb lemma (e.g. "estar").
	Infinitive string
	// Forms maps subject key → finite form.
	Forms map[SubjectKey]string
}

func newParadigm(infinitive string) *Paradigm {
	return &Paradigm{
		Infinitive: infinitive,
		Forms:      make(map[SubjectKey]string),
	}
}

// missing returns the subject keys without a form, in table order.
func (p *Paradigm) missing() []SubjectKey {
	var out []SubjectKey
	for _, k := range AllSubjectKeys {
		if _, ok := p.Forms[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// ConjugationTable maps (verb, subject key) → present-tense form.
type ConjugationTable struct {
	paradigms map[string]*Paradigm
}

func newConjugationTable() *ConjugationTable {
	return &ConjugationTable{paradigms: make(map[string]*Paradigm)}
}

// ConjugatePresent returns the present-tense form of verb for key.
// A miss means the reference data has a hole and is reported as ErrInternal.
func (t *ConjugationTable) ConjugatePresent(verb string, key SubjectKey) (string, error) {
	p, ok := t.paradigms[verb]
	if !ok {
		return "", internalErrorf("no conjugation for verb %q", verb)
	}
	form, ok := p.Forms[key]
	if !ok {
		return "", internalErrorf("no %q form for subject %q", verb, key)
	}
	return form, nil
}

// Verbs returns the conjugated infinitives in sorted order.
func (t *ConjugationTable) Verbs() []string {
	out := make([]string, 0, len(t.paradigms))
	for v := range t.paradigms {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// validate checks that every required verb is present and that every
// paradigm covers all subject keys.
func (t *ConjugationTable) validate() error {
	for _, v := range requiredVerbs {
		if _, ok := t.paradigms[v]; !ok {
			return fmt.Errorf("conjugations: missing verb %q", v)
		}
	}
	for _, v := range t.Verbs() {
		if miss := t.paradigms[v].missing(); len(miss) > 0 {
			return fmt.Errorf("conjugations: verb %q has no form for %v", v, miss)
		}
	}
	return nil
}

// ListKeys parses a comma-separated list of subject keys such as
// "usted,el,ella". The shorthand "*" stands for every key.
func ListKeys(s string) ([]SubjectKey, error) {
	if strings.TrimSpace(s) == "*" {
		return append([]SubjectKey(nil), AllSubjectKeys...), nil
	}
	var keys []SubjectKey
	for _, part := range strings.Split(s, ",") {
		k := SubjectKey(strings.ToLower(strings.TrimSpace(part)))
		if !k.IsValid() {
			return nil, fmt.Errorf("unknown subject key %q", part)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// parseParadigm builds a Paradigm from a block of lines from
// conjugations.txt. The first line is "verb:<infinitive>", the others
// "<keys>:<form>".
func parseParadigm(lines []string) (*Paradigm, error) {
	var p *Paradigm
	for _, line := range lines {
		head, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("missing ':' in %q", line)
		}
		head = strings.TrimSpace(head)
		value = strings.TrimSpace(value)

		if head == "verb" {
			if p != nil {
				return nil, fmt.Errorf("verb %q: nested verb line %q", p.Infinitive, line)
			}
			p = newParadigm(strings.ToLower(value))
			continue
		}
		if p == nil {
			return nil, fmt.Errorf("form %q before any verb line", line)
		}
		keys, err := ListKeys(head)
		if err != nil {
			return nil, fmt.Errorf("verb %q: %w", p.Infinitive, err)
		}
		if value == "" {
			return nil, fmt.Errorf("verb %q: empty form for %s", p.Infinitive, head)
		}
		for _, k := range keys {
			if prev, dup := p.Forms[k]; dup && prev != value {
				return nil, fmt.Errorf("verb %q: %s given twice (%q, %q)", p.Infinitive, k, prev, value)
			}
			p.Forms[k] = value
		}
	}
	if p == nil {
		return nil, fmt.Errorf("empty paradigm block")
	}
	return p, nil
}
