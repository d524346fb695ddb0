package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cours-d-espagnol/castellano"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTranslateText(t *testing.T) {
	out, _, err := execute(t, "translate", "She", "is", "hardworking.")
	require.NoError(t, err)

	assert.Contains(t, out, "Spanish\n  Es trabajadora.\n")
	assert.Contains(t, out, "Grammar Callouts\n")
	assert.Contains(t, out, "Ser vs. Estar")
	assert.NotContains(t, out, "Error:")
}

func TestTranslateFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "speaker gender", args: []string{"translate", "I am tired.", "--gender", "f"}, want: "Estoy cansada."},
		{name: "formal you", args: []string{"translate", "You are tired.", "--you", "usted"}, want: "Está cansado."},
		{name: "dialect label", args: []string{"translate", "I like the car.", "--dialect", "Castilian Spanish"}, want: "me gusta el coche."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestTranslateHint(t *testing.T) {
	out, _, err := execute(t, "translate", "We are eating.", "--mode", "hint")
	require.NoError(t, err)

	assert.Contains(t, out, "Hint\n  - ")
	assert.NotContains(t, out, "Estamos comiendo.")
}

func TestTranslateUnsupported(t *testing.T) {
	out, _, err := execute(t, "translate", "The dog runs fast.")
	require.ErrorIs(t, err, errUntranslated)

	assert.Contains(t, out, "Error: Sorry, that sentence pattern isn't supported yet.")
	assert.Contains(t, out, "Supported Patterns")
}

func TestTranslateDataDirOverride(t *testing.T) {
	dir := t.TempDir()
	data := "verb:ser\n*:es\nverb:estar\n*:está\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conjugations.txt"), []byte(data), 0o644))

	// Every person shares one form, so "I am" becomes "está".
	out, _, err := execute(t, "translate", "I am tired.", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Está cansado.")

	var res castellano.Result
	out, _, err = execute(t, "translate", "I am tired.", "--data-dir", dir, "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Está cansado.", res.Sentence)
}

func TestRenderResult_NoCallouts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, outputText, castellano.Result{Error: "internal limitation: boom"}))

	assert.Equal(t, "Error: internal limitation: boom\n\nGrammar Callouts\n  No callouts for this sentence yet.\n", buf.String())
}

func TestTranslateEmpty(t *testing.T) {
	_, stderr, err := execute(t, "translate", "   ")
	require.ErrorIs(t, err, errEmptySentence)
	assert.Equal(t, "Type a sentence first.\n", stderr)
}

func TestTranslateInvalidOption(t *testing.T) {
	_, _, err := execute(t, "translate", "I am tired.", "--gender", "x")
	require.ErrorIs(t, err, castellano.ErrInvalidOption)
}

func TestTranslateJSONAndYAML(t *testing.T) {
	out, _, err := execute(t, "translate", "I am studying.", "--output", "json")
	require.NoError(t, err)

	var res castellano.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Estoy estudiando.", res.Sentence)
	assert.NotEmpty(t, res.Callouts)

	out, _, err = execute(t, "translate", "I am studying.", "-o", "yaml")
	require.NoError(t, err)

	var doc castellano.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Estoy estudiando.", doc.Sentence)
	assert.Equal(t, res.Callouts, doc.Callouts)
}

func TestUnknownOutput(t *testing.T) {
	_, _, err := execute(t, "patterns", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestPatterns(t *testing.T) {
	out, _, err := execute(t, "patterns")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "1. present-progressive:"), lines[0])
	assert.Contains(t, out, "2. gustar:")
	assert.Contains(t, out, "3. ser-estar-adjective:")
	assert.Contains(t, out, "I like the car.")
}

func TestLexicon(t *testing.T) {
	out, _, err := execute(t, "lexicon")
	require.NoError(t, err)

	assert.Contains(t, out, "Adjectives\n")
	assert.Regexp(t, `car\s+mx=carro es=coche\s+masculine`, out)
	assert.Regexp(t, `reading\s+leer\s+leyendo`, out)
	assert.Regexp(t, `eating\s+comer\s+comiendo`, out)

	out, _, err = execute(t, "lexicon", "-o", "json")
	require.NoError(t, err)
	var view lexiconView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.NotEmpty(t, view.Nouns)
}

func TestVerboseLogsRule(t *testing.T) {
	_, stderr, err := execute(t, "translate", "I like soccer.", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rule=gustar")
}

func TestBadDataDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nouns.txt"), []byte("car|m|mx=carro\n"), 0o644))

	_, _, err := execute(t, "translate", "I like the car.", "--data-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing es form")
}
