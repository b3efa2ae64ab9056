package pali

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/sandhi"
)

// loadTables returns the grammar and rules given as options, loading the
// missing ones from the data file system (or the embedded data) in
// parallel.
func loadTables(ctx context.Context, o options) (*grammar.Grammar, *sandhi.Rules, error) {
	g, rules := o.grammar, o.rules
	eg, ctx := errgroup.WithContext(ctx)
	if g == nil {
		eg.Go(func() error {
			var err error
			if o.dataFS != nil {
				g, err = grammar.Load(ctx, o.dataFS, grammar.DefaultFiles)
			} else {
				g, err = grammar.Default()
			}
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			return nil
		})
	}
	if rules == nil {
		eg.Go(func() error {
			var err error
			if o.dataFS != nil {
				rules, err = sandhi.Load(ctx, o.dataFS, sandhi.DefaultFiles)
			} else {
				rules, err = sandhi.Default()
			}
			if err != nil {
				return fmt.Errorf("load sandhi rules: %w", err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return g, rules, nil
}

// longestFirst sorts endings by decreasing length and drops the empty one.
func longestFirst(endings []string) []string {
	out := make([]string, 0, len(endings))
	for _, e := range endings {
		if e != "" {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}
