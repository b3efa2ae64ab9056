package pali

import (
	"context"
	"errors"

	"github.com/cours-de-latin/pali/sandhi"
)

var ErrTooFewWords = errors.New("pali: merge needs at least two words")

// Merge joins words left to right by sandhi. Every combination the rules
// allow is returned, sorted.
func (e *Engine) Merge(words ...string) ([]string, error) {
	if len(words) < 2 {
		return nil, ErrTooFewWords
	}
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = Normalize(w)
	}
	return e.merger.Merge(normalized...), nil
}

// Split returns the valid sandhi splits of word, most confident first.
// depth 0 selects the configured default; larger depths than the
// configured maximum are lowered to it.
func (e *Engine) Split(ctx context.Context, word string, depth int) []sandhi.SplitResult {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	return e.splitter.Split(ctx, word, depth)
}
