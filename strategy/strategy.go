// Package strategy generates the inflected forms of a lemma, one strategy
// per word class. Every strategy is read-only after construction and may be
// shared between goroutines.
package strategy

import (
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
	"github.com/cours-de-latin/pali/validate"
)

// ExtraAffix in Options.Extra combines the generated forms with the affix
// paradigm.
const ExtraAffix = "affix"

// Options narrows generation. Empty fields mean no restriction.
type Options struct {
	Gender     string
	Declension string
	Extra      []string
}

// Has reports whether flag is listed in Extra.
func (o Options) Has(flag string) bool {
	for _, e := range o.Extra {
		if e == flag {
			return true
		}
	}
	return false
}

// Strategy builds the forms of a lemma. A lemma the strategy cannot handle
// yields an empty result, not an error.
type Strategy interface {
	Apply(lemma string, opts Options) []morph.ConstructedWord
}

// General is the declension step shared by all paradigm based strategies.
type General struct {
	merger    *sandhi.Merger
	validator validate.Validator
}

func NewGeneral(m *sandhi.Merger) *General {
	return &General{merger: m}
}

// Apply derives a stem from lemma with rule and attaches every allomorph of
// p to it. Allomorphs carrying an occurrence change the stem first. Plain
// concatenations that do not form a valid word are replaced by the single
// word sandhi merges of stem and ending.
func (g *General) Apply(lemma string, p *morph.Paradigm, rule morph.DerivingRule) []morph.ConstructedWord {
	stem := rule.Apply(lemma)
	var out []morph.ConstructedWord
	for _, m := range p.Morphemes() {
		for _, a := range m.Allomorphs {
			cw := morph.ConstructedWord{Stem: stem, Lemma: lemma, Features: m.Features}
			if !a.Occurrence.IsNull() {
				cw = a.Occurrence.Apply(cw)
				cw.Word = cw.Stem + a.Text
				out = append(out, cw.Clone())
				continue
			}
			if form := stem + a.Text; g.validator.IsValidWord(form) {
				cw.Word = form
				out = append(out, cw.Clone())
				continue
			}
			if g.merger == nil {
				continue
			}
			for _, w := range g.merger.Joined(stem, a.Text) {
				cw.Word = w
				out = append(out, cw.Clone())
			}
		}
	}
	return out
}

// withLemma stamps lemma on every word.
func withLemma(ws []morph.ConstructedWord, lemma string) []morph.ConstructedWord {
	for i := range ws {
		ws[i].Lemma = lemma
	}
	return ws
}

// withFeature sets key=value on every word.
func withFeature(ws []morph.ConstructedWord, key, value string) []morph.ConstructedWord {
	for i := range ws {
		ws[i].Features = ws[i].Features.Set(key, value)
	}
	return ws
}

// fromParadigm turns every allomorph of p into a finished word.
func fromParadigm(p *morph.Paradigm, lemma string) []morph.ConstructedWord {
	var out []morph.ConstructedWord
	for _, m := range p.Morphemes() {
		for _, a := range m.Allomorphs {
			out = append(out, morph.ConstructedWord{Word: a.Text, Lemma: lemma, Features: m.Features}.Clone())
		}
	}
	return morph.UniqueWords(out)
}
