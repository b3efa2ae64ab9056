package strategy

import (
	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
)

// Invariable returns the lemma itself tagged with a word class. It serves
// adverbs, indeclinables and words of unknown class.
type Invariable struct {
	Class    string
	Features morph.FeatureSet
}

var (
	Adverb       = Invariable{Class: grammar.Adverb, Features: morph.Pairs(morph.KeySubtype, grammar.Indeclinable)}
	Indeclinable = Invariable{Class: grammar.Indeclinable}
	Unknown      = Invariable{Class: grammar.Unknown}
)

func (s Invariable) Apply(lemma string, _ Options) []morph.ConstructedWord {
	fs := morph.Pairs(morph.KeyParadigm, s.Class).Union(s.Features)
	return []morph.ConstructedWord{{Word: lemma, Lemma: lemma, Features: fs}}
}

// Null generates nothing.
type Null struct{}

func (Null) Apply(string, Options) []morph.ConstructedWord { return nil }
