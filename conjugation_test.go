package castellano

import (
	"errors"
	"strings"
	"testing"
)

func TestConjugatePresent(t *testing.T) {
	tr := newTestTranslator(t)
	tests := []struct {
		verb string
		key  SubjectKey
		want string
	}{
		{"estar", SubjectYo, "estoy"},
		{"estar", SubjectTu, "estás"},
		{"estar", SubjectElla, "está"},
		{"estar", SubjectNosotras, "estamos"},
		{"estar", SubjectUstedes, "están"},
		{"ser", SubjectYo, "soy"},
		{"ser", SubjectTu, "eres"},
		{"ser", SubjectUsted, "es"},
		{"ser", SubjectNosotros, "somos"},
		{"ser", SubjectEllas, "son"},
	}
	for _, tt := range tests {
		got, err := tr.Conjugations().ConjugatePresent(tt.verb, tt.key)
		if err != nil {
			t.Errorf("ConjugatePresent(%q, %s): %v", tt.verb, tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConjugatePresent(%q, %s) = %q, want %q", tt.verb, tt.key, got, tt.want)
		}
	}
}

func TestConjugatePresentMissing(t *testing.T) {
	tr := newTestTranslator(t)
	if _, err := tr.Conjugations().ConjugatePresent("tener", SubjectYo); !errors.Is(err, ErrInternal) {
		t.Errorf("unknown verb: err = %v, want ErrInternal", err)
	}
	if _, err := tr.Conjugations().ConjugatePresent("ser", SubjectKey("vosotros")); !errors.Is(err, ErrInternal) {
		t.Errorf("unknown key: err = %v, want ErrInternal", err)
	}
}

// Every subject key, reachable from English or not, gets estar for
// feelings and ser for traits.
func TestCopulaBySemanticClass(t *testing.T) {
	tr := newTestTranslator(t)
	for _, adj := range tr.Lexicon().Adjectives() {
		for _, key := range AllSubjectKeys {
			for _, g := range []Gender{GenderMasculine, GenderFeminine} {
				req := request("", ModeHint, g)
				res, err := tr.predicate(key, adj, req)
				if err != nil {
					t.Fatalf("predicate(%s, %q): %v", key, adj.English, err)
				}
				want := "**ser**"
				if adj.Class == ClassFeeling {
					want = "**estar**"
				}
				if got := res.Hint[0]; !containsAll(got, want, "**"+string(key)+"**") {
					t.Errorf("%s + %q (%s): hint %q, want copula %s", key, adj.English, adj.Class, got, want)
				}

				req.Mode = ModeTranslate
				res, err = tr.predicate(key, adj, req)
				if err != nil {
					t.Fatal(err)
				}
				verb, _ := tr.Conjugations().ConjugatePresent(adj.Class.Copula(), key)
				surface := AgreeAdjective(adj.Lemma, key.Gender(g), key.Number())
				if wantSentence := capitalize(verb) + " " + surface + "."; res.Sentence != wantSentence {
					t.Errorf("%s + %q: sentence %q, want %q", key, adj.English, res.Sentence, wantSentence)
				}
			}
		}
	}
}

func TestListKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []SubjectKey
	}{
		{"yo", []SubjectKey{SubjectYo}},
		{"usted, el ,ella", []SubjectKey{SubjectUsted, SubjectEl, SubjectElla}},
		{"*", AllSubjectKeys},
	}
	for _, tt := range tests {
		got, err := ListKeys(tt.in)
		if err != nil {
			t.Errorf("ListKeys(%q): %v", tt.in, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ListKeys(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ListKeys(%q)[%d] = %s, want %s", tt.in, i, got[i], tt.want[i])
			}
		}
	}
	if _, err := ListKeys("yo,vos"); err == nil {
		t.Error("ListKeys should reject unknown keys")
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
