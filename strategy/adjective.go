package strategy

import (
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
)

// Degrees of comparison.
const (
	Positive    = "positive"
	Comparative = "comparative"
	Superlative = "superlative"
)

// Adjective declines adjectives in all three genders and builds the
// comparative and superlative degrees.
type Adjective struct {
	grammar *grammar.Grammar
	general *General
}

func NewAdjective(g *grammar.Grammar, gen *General) *Adjective {
	return &Adjective{grammar: g, general: gen}
}

func (a *Adjective) paradigm(decl, gender string) *morph.Paradigm {
	p := a.grammar.Class(grammar.Adjective).Filter(morph.Pairs(morph.KeyDeclension, decl))
	if gender == "" {
		return p
	}
	return p.Filter(morph.Pairs(morph.KeyGender, gender))
}

type declined struct {
	lemma    string
	paradigm *morph.Paradigm
	rule     morph.DerivingRule
}

func (a *Adjective) apply(ds ...declined) []morph.ConstructedWord {
	var out []morph.ConstructedWord
	for _, d := range ds {
		out = append(out, a.general.Apply(d.lemma, d.paradigm, d.rule)...)
	}
	return out
}

// threeGenders declines lemma over the a-declension in every gender.
func (a *Adjective) threeGenders(lemma string) []declined {
	rd1 := morph.RightDelete(1)
	return []declined{
		{lemma, a.paradigm("a", "masculine"), rd1},
		{lemma, a.paradigm("a", "neuter"), rd1},
		{lemma, a.paradigm("ā", "feminine"), rd1},
	}
}

func (a *Adjective) Apply(lemma string, _ Options) []morph.ConstructedWord {
	out := withFeature(a.positive(lemma), morph.KeyComparison, Positive)

	base := lemma
	if alphabet.EndsWithVowel(lemma) {
		base = morph.RightDelete(1).Apply(lemma)
	}
	rd1 := morph.RightDelete(1)
	as := a.paradigm("as", "")

	comparative := a.apply(a.threeGenders(lemma + "tara")...)
	comparative = append(comparative, a.apply(
		declined{base + "iya", as, rd1},
		declined{base + "iyya", as, rd1},
	)...)

	superlative := withFeature(a.apply(a.threeGenders(lemma+"tama")...), morph.KeyFrequency, "rare")
	for _, suffix := range []string{"iṭṭha", "issika", "iṭṭhatara"} {
		superlative = append(superlative, a.apply(a.threeGenders(base+suffix)...)...)
	}

	out = append(out, withFeature(comparative, morph.KeyComparison, Comparative)...)
	out = append(out, withFeature(superlative, morph.KeyComparison, Superlative)...)
	return withLemma(out, lemma)
}

func (a *Adjective) positive(lemma string) []morph.ConstructedWord {
	rd1 := morph.RightDelete(1)
	iFem := a.paradigm("ī", "feminine")
	switch {
	case strings.HasSuffix(lemma, "a"):
		return a.apply(append(a.threeGenders(lemma), declined{lemma, iFem, rd1})...)
	case strings.HasSuffix(lemma, "i"):
		return a.apply(
			declined{lemma, a.paradigm("i", "masculine"), rd1},
			declined{lemma, a.paradigm("i", "neuter"), rd1},
			declined{lemma + "ni", iFem, rd1},
		)
	case strings.HasSuffix(lemma, "ī"):
		return a.apply(
			declined{lemma, a.paradigm("ī", "masculine"), rd1},
			declined{lemma, a.paradigm("i", "neuter"), rd1},
			declined{rd1.Apply(lemma) + "ini", iFem, rd1},
		)
	case strings.HasSuffix(lemma, "u"):
		return a.apply(
			declined{lemma, a.paradigm("u", "masculine"), rd1},
			declined{lemma, a.paradigm("u", "neuter"), rd1},
			declined{lemma + "ni", iFem, rd1},
		)
	case strings.HasSuffix(lemma, "ū"):
		return a.apply(
			declined{lemma, a.paradigm("ū", "masculine"), rd1},
			declined{lemma, a.paradigm("u", "neuter"), rd1},
			declined{rd1.Apply(lemma) + "unī", iFem, rd1},
		)
	case strings.HasSuffix(lemma, "at"):
		return a.apply(
			declined{lemma, a.paradigm("ant", ""), morph.RightDelete(2)},
			declined{lemma, iFem, morph.NullRule{}},
		)
	case strings.HasSuffix(lemma, "ant"):
		return a.apply(
			declined{lemma, a.paradigm("ant", ""), morph.RightDelete(3)},
			declined{lemma, iFem, morph.NullRule{}},
		)
	case strings.HasSuffix(lemma, "ā"):
		mn := rd1.Apply(lemma) + "ant"
		return a.apply(
			declined{mn, a.paradigm("ant", ""), morph.RightDelete(3)},
			declined{mn, iFem, morph.NullRule{}},
		)
	}
	return nil
}
