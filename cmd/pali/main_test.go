package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"+extra), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRunUsage(t *testing.T) {
	_, stderr, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, "pali lemmatize")

	_, _, err = runCLI(t, "conjugate", "bhavati")
	assert.ErrorIs(t, err, errUsage)

	_, stderr, err = runCLI(t, "stem")
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, "stem [-pos class]")

	_, _, err = runCLI(t, "split", "-depth", "x", "tatheva")
	assert.ErrorIs(t, err, errUsage)
}

func TestRunStem(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "stem", "-config", cfg, "-pos", "noun", "devo", "rājena")
	require.NoError(t, err)
	assert.Equal(t, "dev\nrāj\n", out)
}

func TestRunMerge(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "merge", "-config", cfg, "tathaa", "eva")
	require.NoError(t, err)
	assert.Equal(t, "tatheva\n", out)

	_, _, err = runCLI(t, "merge", "-config", cfg, "eva")
	assert.Error(t, err)
}

func TestRunLemmatizeJSON(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "lemmatize", "-config", cfg, "-json", "mayā")
	require.NoError(t, err)

	var res []struct {
		Lemma string `json:"lemma"`
		POS   string `json:"pos"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	lemmas := make([]string, 0, len(res))
	for _, r := range res {
		lemmas = append(lemmas, r.Lemma)
	}
	assert.Contains(t, lemmas, "ahaṃ")
}

func TestRunGenerate(t *testing.T) {
	cfg := writeConfig(t, "")
	out, _, err := runCLI(t, "generate", "-config", cfg, "-pos", "noun", "deva")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n")[0], "\t")
	assert.Contains(t, out, "devo\t")
}

func TestRunCompound(t *testing.T) {
	dir := t.TempDir()
	lex := filepath.Join(dir, "lexicon.yaml")
	require.NoError(t, os.WriteFile(lex, []byte("lemmas:\n  - lemma: dhamma\n  - lemma: cakka\n"), 0o644))
	cfg := writeConfig(t, "lexicon:\n  static_path: "+lex+"\n")

	out, _, err := runCLI(t, "compound", "-config", cfg, "dhammacakka")
	require.NoError(t, err)
	assert.Equal(t, "dhamma + cakka\n", out)
}
