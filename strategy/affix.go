package strategy

import (
	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
)

// Affix attaches prefixes and suffixes to already built words.
type Affix struct {
	grammar *grammar.Grammar
	merger  *sandhi.Merger
}

func NewAffix(g *grammar.Grammar, m *sandhi.Merger) *Affix {
	return &Affix{grammar: g, merger: m}
}

// Combine returns every word of ws with every suffix attached, followed by
// every word with every prefix attached. Affix and word are joined by
// sandhi when a merge rule applies and concatenated otherwise. The affix
// features are added to those of the word.
func (a *Affix) Combine(ws []morph.ConstructedWord) []morph.ConstructedWord {
	affixes := a.grammar.Affixes()
	var out []morph.ConstructedWord
	for _, side := range []string{"suffix", "prefix"} {
		for _, m := range affixes.Filter(morph.Pairs(morph.KeySubtype, side)).Morphemes() {
			for _, am := range m.Allomorphs {
				for _, w := range ws {
					left, right := w.Word, am.Text
					if side == "prefix" {
						left, right = am.Text, w.Word
					}
					for _, joined := range a.join(left, right) {
						out = append(out, morph.ConstructedWord{
							Word:     joined,
							Lemma:    w.Lemma,
							Features: w.Features.Union(m.Features),
						}.Clone())
					}
				}
			}
		}
	}
	return morph.UniqueWords(out)
}

func (a *Affix) join(left, right string) []string {
	if a.merger != nil {
		if j := a.merger.Joined(left, right); len(j) > 0 {
			return j
		}
	}
	return []string{left + right}
}

// Apply treats lemma as a finished word and returns its affixed forms.
func (a *Affix) Apply(lemma string, _ Options) []morph.ConstructedWord {
	return a.Combine([]morph.ConstructedWord{{Word: lemma, Lemma: lemma}})
}
