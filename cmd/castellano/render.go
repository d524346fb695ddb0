package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cours-d-espagnol/castellano"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type patternView struct {
	Name        string   `json:"name"        yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Examples    []string `json:"examples"    yaml:"examples"`
}

type lexiconView struct {
	Adjectives []castellano.Adjective       `json:"adjectives" yaml:"adjectives"`
	Nouns      []castellano.Noun            `json:"nouns"      yaml:"nouns"`
	Verbs      []castellano.ProgressiveVerb `json:"verbs"      yaml:"verbs"`
}

// encode writes v as JSON or YAML. It reports false for the text format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func renderResult(w io.Writer, format string, res castellano.Result) error {
	if done, err := encode(w, format, res); done {
		return err
	}

	var b strings.Builder
	if res.Error != "" {
		fmt.Fprintf(&b, "Error: %s\n\n", res.Error)
	}
	if res.Sentence != "" {
		fmt.Fprintf(&b, "Spanish\n  %s\n\n", res.Sentence)
	}
	if len(res.Hint) > 0 {
		b.WriteString("Hint\n")
		for _, h := range res.Hint {
			fmt.Fprintf(&b, "  - %s\n", h)
		}
		b.WriteString("\n")
	}
	b.WriteString("Grammar Callouts\n")
	if len(res.Callouts) == 0 {
		b.WriteString("  No callouts for this sentence yet.\n")
	}
	for _, c := range res.Callouts {
		fmt.Fprintf(&b, "  %s\n    %s\n", c.Title, c.Text)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderPatterns(w io.Writer, format string, rules []castellano.Rule) error {
	views := make([]patternView, 0, len(rules))
	for _, r := range rules {
		views = append(views, patternView{Name: r.Name, Description: r.Description, Examples: r.Examples})
	}
	if done, err := encode(w, format, views); done {
		return err
	}

	var b strings.Builder
	for i, v := range views {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, v.Name, v.Description)
		for _, ex := range v.Examples {
			fmt.Fprintf(&b, "     %s\n", ex)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderLexicon(w io.Writer, format string, lex *castellano.Lexicon) error {
	view := lexiconView{
		Adjectives: lex.Adjectives(),
		Nouns:      lex.Nouns(),
		Verbs:      lex.ProgressiveVerbs(),
	}
	if done, err := encode(w, format, view); done {
		return err
	}

	var b strings.Builder
	b.WriteString("Adjectives\n")
	for _, a := range view.Adjectives {
		fmt.Fprintf(&b, "  %-12s %-14s %s (%s)\n", a.English, a.Lemma, a.Class, a.Class.Copula())
	}
	b.WriteString("Nouns\n")
	for _, n := range view.Nouns {
		var forms []string
		for _, d := range castellano.Dialects {
			forms = append(forms, fmt.Sprintf("%s=%s", d, n.Form(d)))
		}
		fmt.Fprintf(&b, "  %-12s %-14s %s\n", n.English, strings.Join(forms, " "), n.Gender.Word())
	}
	b.WriteString("Verbs\n")
	for _, v := range view.Verbs {
		gerund := v.Gerund
		if gerund == "" {
			gerund, _ = castellano.BuildGerund(v.Infinitive)
		}
		fmt.Fprintf(&b, "  %-12s %-14s %s\n", v.Ing, v.Infinitive, gerund)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
