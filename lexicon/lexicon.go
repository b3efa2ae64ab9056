// Package lexicon looks words up in a Pali dictionary. The dictionary is an
// external collaborator: it may be a remote service, a shared cache in front
// of one, or a word list loaded from YAML.
package lexicon

import (
	"context"
	"errors"
)

var ErrCacheMiss = errors.New("cache miss")

// Entry is one dictionary article of a lemma.
type Entry struct {
	Lemma     string   `json:"lemma" yaml:"lemma"`
	WordClass string   `json:"pos,omitempty" yaml:"pos"`
	Gender    string   `json:"gender,omitempty" yaml:"gender"`
	Forms     []string `json:"forms,omitempty" yaml:"forms"`
	Meaning   string   `json:"meaning,omitempty" yaml:"meaning"`
}

// Lookup answers dictionary queries. A word the dictionary does not know is
// not an error: Exists reports false and FetchEntries returns no entries.
type Lookup interface {
	Exists(ctx context.Context, word string) (bool, error)
	FetchEntries(ctx context.Context, word string) ([]Entry, error)
}

// Null is a dictionary that knows no word.
type Null struct{}

func (Null) Exists(context.Context, string) (bool, error) { return false, nil }

func (Null) FetchEntries(context.Context, string) ([]Entry, error) { return nil, nil }
