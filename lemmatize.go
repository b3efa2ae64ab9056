package pali

import (
	"context"
	"slices"
	"strings"

	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/strategy"
)

// Lemmatize returns the distinct lemma and word class pairs found by
// Analyze. Results are cached per word and hints.
func (e *Engine) Lemmatize(ctx context.Context, word string, pos ...string) []LemmaResult {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	key := word + "|" + strings.Join(pos, ",")
	if e.lemmas != nil {
		if cached, ok := e.lemmas.Get(key); ok {
			return slices.Clone(cached)
		}
	}
	var out []LemmaResult
	seen := make(map[LemmaResult]bool)
	for _, cw := range e.analyze(ctx, word, pos) {
		r := LemmaResult{Word: word, Lemma: cw.Lemma, WordClass: cw.Features.Get(morph.KeyParadigm)}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	if e.lemmas != nil {
		e.lemmas.Add(key, slices.Clone(out))
	}
	return out
}

// LemmatizeWithLexicon asks the dictionary first. When the dictionary does
// not know the word or cannot be reached the rule based Lemmatize answers.
func (e *Engine) LemmatizeWithLexicon(ctx context.Context, word string) []LemmaResult {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	entries, err := e.lexicon.FetchEntries(ctx, word)
	if err != nil {
		e.logger.Warn().Err(err).Str("word", word).Msg("lexicon lookup failed, falling back to rules")
		return e.Lemmatize(ctx, word)
	}
	if len(entries) == 0 {
		e.logger.Debug().Str("word", word).Msg("word not in lexicon, falling back to rules")
		return e.Lemmatize(ctx, word)
	}
	out := make([]LemmaResult, 0, len(entries))
	for _, entry := range entries {
		class := entry.WordClass
		if c, ok := strategy.ParseWordClass(class); ok {
			class = c.String()
		}
		r := LemmaResult{Word: word, Lemma: entry.Lemma, WordClass: class}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
