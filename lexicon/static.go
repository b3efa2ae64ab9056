package lexicon

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Static is an in-memory dictionary read from YAML:
//
//	lemmas:
//	  - lemma: deva
//	    pos: noun
//	    gender: m
//	    forms: [devo, devā]
//
// A word is found both by its lemma and by any of its listed forms.
type Static struct {
	entries map[string][]Entry
}

type staticFile struct {
	Lemmas []Entry `yaml:"lemmas"`
}

func NewStatic(entries ...Entry) *Static {
	s := &Static{entries: make(map[string][]Entry)}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

func (s *Static) add(e Entry) {
	s.entries[e.Lemma] = append(s.entries[e.Lemma], e)
	for _, f := range e.Forms {
		if f != e.Lemma {
			s.entries[f] = append(s.entries[f], e)
		}
	}
}

func LoadStatic(r io.Reader) (*Static, error) {
	var f staticFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("lexicon: parse yaml: %w", err)
	}
	for i, e := range f.Lemmas {
		if e.Lemma == "" {
			return nil, fmt.Errorf("lexicon: entry %d has no lemma", i+1)
		}
	}
	return NewStatic(f.Lemmas...), nil
}

func LoadStaticFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()
	return LoadStatic(f)
}

func (s *Static) FetchEntries(_ context.Context, word string) ([]Entry, error) {
	return s.entries[word], nil
}

func (s *Static) Exists(_ context.Context, word string) (bool, error) {
	return len(s.entries[word]) > 0, nil
}
