// Package grammar loads the Pali paradigm definitions and the irregular
// word tables into a read-only Grammar shared by every engine component.
package grammar

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/pali/data"
	"github.com/cours-de-latin/pali/morph"
)

// Word class paradigm names as used in the markup.
const (
	Noun         = "noun"
	Verb         = "verb"
	Adjective    = "adjective"
	Numeral      = "numeral"
	Pronoun      = "pronoun"
	Adverb       = "adverb"
	Indeclinable = "indeclinable"
	Affix        = "affix"
	Unknown      = "unknown"
)

// Files names the grammar sources inside a file system.
type Files struct {
	Paradigms         string
	IrregularNouns    string
	IrregularNumerals string
}

// DefaultFiles are the names used by the embedded data.
var DefaultFiles = Files{
	Paradigms:         data.Paradigms,
	IrregularNouns:    data.IrregularNouns,
	IrregularNumerals: data.IrregularNumerals,
}

// Grammar is the loaded paradigm model. It is immutable; paradigms handed
// out by its accessors are shared and must not be modified.
type Grammar struct {
	all      *morph.Paradigm
	byClass  map[string]*morph.Paradigm
	classes  []string
	nouns    *Irregular
	numerals *Irregular
}

// New builds a grammar from already parsed parts.
func New(all *morph.Paradigm, nouns, numerals *Irregular) *Grammar {
	if all == nil {
		all = morph.NewParadigm()
	}
	g := &Grammar{
		all:      all,
		byClass:  make(map[string]*morph.Paradigm),
		nouns:    nouns,
		numerals: numerals,
	}
	for _, m := range all.Morphemes() {
		class := m.Get(morph.KeyParadigm)
		p, ok := g.byClass[class]
		if !ok {
			p = morph.NewParadigm()
			g.byClass[class] = p
			g.classes = append(g.classes, class)
		}
		p.Add(m)
	}
	sort.Strings(g.classes)
	if g.nouns == nil {
		g.nouns = NewIrregularNouns()
	}
	if g.numerals == nil {
		g.numerals = NewIrregularNumerals()
	}
	return g
}

// Load reads the three grammar sources from fsys concurrently.
func Load(ctx context.Context, fsys fs.FS, files Files) (*Grammar, error) {
	var (
		records  []Record
		nouns    []*morph.Paradigm
		numerals []*morph.Paradigm
	)
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		f, err := fsys.Open(files.Paradigms)
		if err != nil {
			return fmt.Errorf("open %s: %w", files.Paradigms, err)
		}
		defer f.Close()
		records, err = ReadMarkup(f, files.Paradigms)
		return err
	})
	eg.Go(func() error {
		var err error
		nouns, err = readIrregularFile(fsys, files.IrregularNouns)
		return err
	})
	eg.Go(func() error {
		var err error
		numerals, err = readIrregularFile(fsys, files.IrregularNumerals)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return New(BuildParadigm(records), NewIrregularNouns(nouns...), NewIrregularNumerals(numerals...)), nil
}

func readIrregularFile(fsys fs.FS, name string) ([]*morph.Paradigm, error) {
	if name == "" {
		return nil, nil
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return ReadIrregular(f, name)
}

var (
	defaultOnce    sync.Once
	defaultGrammar *Grammar
	defaultErr     error
)

// Default returns the grammar built from the embedded data files.
func Default() (*Grammar, error) {
	defaultOnce.Do(func() {
		defaultGrammar, defaultErr = Load(context.Background(), data.FS, DefaultFiles)
	})
	return defaultGrammar, defaultErr
}

// Paradigms returns every loaded morpheme, all word classes included.
func (g *Grammar) Paradigms() *morph.Paradigm { return g.all }

// Class returns the paradigm of a word class, or nil when the grammar has
// none.
func (g *Grammar) Class(class string) *morph.Paradigm {
	return g.byClass[class]
}

// Classes lists the word classes present in the grammar, sorted.
func (g *Grammar) Classes() []string {
	return append([]string(nil), g.classes...)
}

// ByFeatures filters the whole grammar. It returns nil when nothing
// matches.
func (g *Grammar) ByFeatures(fs morph.FeatureSet) *morph.Paradigm {
	if class := fs.Get(morph.KeyParadigm); class != "" {
		p := g.byClass[class]
		if p == nil {
			return nil
		}
		return p.Filter(fs)
	}
	return g.all.Filter(fs)
}

func (g *Grammar) Pronouns() *morph.Paradigm { return g.Class(Pronoun) }
func (g *Grammar) Affixes() *morph.Paradigm  { return g.Class(Affix) }

func (g *Grammar) IrregularNouns() *Irregular    { return g.nouns }
func (g *Grammar) IrregularNumerals() *Irregular { return g.numerals }

// Endings returns the distinct ending strings of a word class, or of every
// class except affixes when class is empty.
func (g *Grammar) Endings(class string) []string {
	var src []*morph.Paradigm
	if class != "" {
		src = append(src, g.byClass[class])
	} else {
		for _, c := range g.classes {
			if c != Affix {
				src = append(src, g.byClass[c])
			}
		}
	}
	seen := make(map[string]bool)
	var out []string
	for _, p := range src {
		if p == nil {
			continue
		}
		for _, e := range p.Endings() {
			if !seen[e.Text] {
				seen[e.Text] = true
				out = append(out, e.Text)
			}
		}
	}
	return out
}
