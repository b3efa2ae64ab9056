// Package guess decides which word classes a form or a lemma may belong to
// before any paradigm is applied.
package guess

import (
	"sort"
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
	"github.com/cours-de-latin/pali/grammar"
)

// DefaultPrune is the score distance beyond which lower ranked classes
// are discarded.
const DefaultPrune = 16

// verbSeed is the head start given to words ending in -ti.
const verbSeed = 10

// Ending lists used for lemmas. Order is irrelevant.
var (
	nounLemmaEndings         = []string{"a", "ā", "i", "in", "ī", "u", "ū", "ar", "an", "ant", "as", "us", "o"}
	adjectiveLemmaEndings    = []string{"a", "ā", "i", "ī", "u", "ū", "ant", "vā", "mā", "at"}
	numeralLemmaEndings      = []string{"a", "i", "aṃ", "ma", "ya"}
	indeclinableLemmaEndings = []string{"uṃ"}

	lemmaFormNounEndings      = []string{"as", "a", "u", "us", "i", "in", "ar", "an", "ant", "ā", "ī", "ū"}
	lemmaFormAdjectiveEndings = []string{"a", "i", "u", "ant", "ā", "ī", "ū"}
	lemmaFormNumeralEndings   = []string{"a", "i", "aṃ"}
)

// Guesser ranks word classes. It only reads the grammar and may be shared
// between goroutines.
type Guesser struct {
	grammar *grammar.Grammar
	prune   int
}

// Option configures a Guesser.
type Option func(*Guesser)

// WithPrune overrides DefaultPrune. Negative values are ignored.
func WithPrune(n int) Option {
	return func(g *Guesser) {
		if n >= 0 {
			g.prune = n
		}
	}
}

func New(g *grammar.Grammar, opts ...Option) *Guesser {
	gs := &Guesser{grammar: g, prune: DefaultPrune}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// Prune returns the configured threshold.
func (g *Guesser) Prune() int { return g.prune }

// Score is the accumulated evidence for one class.
type Score struct {
	Class string
	Score int
}

// Scores returns the raw per class scores of word, best first.
func (g *Guesser) Scores(word string) []Score {
	score := make(map[string]int)
	if strings.HasSuffix(word, "ti") {
		score[grammar.Verb] = verbSeed
	}
	for _, class := range g.grammar.Classes() {
		if class == grammar.Affix {
			continue
		}
		for _, m := range g.grammar.Class(class).Morphemes() {
			if match, ok := m.Match(word); ok {
				score[class] += 1 + alphabet.RuneLen(match)
			}
		}
	}
	out := make([]Score, 0, len(score))
	for c, s := range score {
		out = append(out, Score{Class: c, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Class < out[j].Class
	})
	return out
}

// FromWordForm returns the plausible classes of an inflected form, most
// likely first. It never returns an empty list.
func (g *Guesser) FromWordForm(word string) []string {
	var irregular []string
	if g.grammar.IrregularNouns().IsIrregular(word) {
		irregular = append(irregular, grammar.Noun)
	}
	if g.grammar.IrregularNumerals().IsIrregular(word) {
		irregular = append(irregular, grammar.Numeral)
	}
	if len(irregular) > 0 {
		return irregular
	}
	return g.selectClasses(g.Scores(word))
}

func (g *Guesser) selectClasses(ranked []Score) []string {
	switch len(ranked) {
	case 0:
		return []string{grammar.Adverb, grammar.Indeclinable}
	case 1:
		return []string{ranked[0].Class}
	}
	out := []string{ranked[0].Class}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score-ranked[i].Score > g.prune {
			break
		}
		out = append(out, ranked[i].Class)
	}
	return out
}

// FromLemma returns every class whose citation forms end like lemma. The
// result may be empty.
func (g *Guesser) FromLemma(lemma string) []string {
	switch {
	case g.grammar.IrregularNouns().IsIrregular(lemma):
		return []string{grammar.Noun}
	case g.grammar.IrregularNumerals().IsIrregular(lemma):
		return []string{grammar.Numeral}
	case g.isPronoun(lemma):
		return []string{grammar.Pronoun}
	case strings.HasSuffix(lemma, "ti"):
		return []string{grammar.Verb}
	}
	var out []string
	if endsWithAny(lemma, nounLemmaEndings) {
		out = append(out, grammar.Noun)
	}
	if endsWithAny(lemma, adjectiveLemmaEndings) {
		out = append(out, grammar.Adjective)
	}
	if endsWithAny(lemma, numeralLemmaEndings) {
		out = append(out, grammar.Numeral)
	}
	if endsWithAny(lemma, indeclinableLemmaEndings) {
		out = append(out, grammar.Indeclinable)
	}
	return out
}

func (g *Guesser) isPronoun(lemma string) bool {
	for _, m := range g.grammar.Pronouns().Morphemes() {
		if m.Exactly(lemma) {
			return true
		}
	}
	return false
}

// IsLemmaForm reports whether word ends like a citation form of some
// class. The sandhi splitter uses it for every segment but the last.
func IsLemmaForm(word string) bool {
	return strings.HasSuffix(word, "a") ||
		strings.HasSuffix(word, "ti") ||
		endsWithAny(word, lemmaFormNounEndings) ||
		endsWithAny(word, lemmaFormAdjectiveEndings) ||
		endsWithAny(word, lemmaFormNumeralEndings)
}

func endsWithAny(word string, endings []string) bool {
	for _, e := range endings {
		if strings.HasSuffix(word, e) {
			return true
		}
	}
	return false
}
