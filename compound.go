package pali

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// MinPostfixLength is the shortest final member SplitCompound accepts.
const MinPostfixLength = 3

// SplitCompound cuts a compound lemma into two members that are both in
// the lexicon. A lemma the lexicon knows is returned whole unless force is
// set. The result is nil when no cut is found; the shortest head whose
// remainder is a known word decides.
func (e *Engine) SplitCompound(ctx context.Context, lemma string, force bool) ([]string, error) {
	lemma = Normalize(lemma)
	if lemma == "" {
		return nil, nil
	}
	exists, err := e.lexicon.Exists(ctx, lemma)
	if err != nil {
		return nil, fmt.Errorf("split compound %q: %w", lemma, err)
	}
	if exists && !force {
		return []string{lemma}, nil
	}
	return e.splitCompound(ctx, lemma)
}

func (e *Engine) splitCompound(ctx context.Context, lemma string) ([]string, error) {
	for i := range lemma {
		if i == 0 {
			continue
		}
		postfix := lemma[i:]
		exists, err := e.lexicon.Exists(ctx, postfix)
		if err != nil {
			return nil, fmt.Errorf("split compound %q: %w", lemma, err)
		}
		if !exists {
			continue
		}
		if utf8.RuneCountInString(postfix) < MinPostfixLength {
			return nil, nil
		}
		head := lemma[:i]
		exists, err = e.lexicon.Exists(ctx, head)
		if err != nil {
			return nil, fmt.Errorf("split compound %q: %w", lemma, err)
		}
		if !exists {
			return nil, nil
		}
		return []string{head, postfix}, nil
	}
	return nil, nil
}
