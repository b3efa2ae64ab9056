package strategy

import (
	"strings"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
)

// Noun declines nouns by lemma ending. Irregular nouns are read from the
// irregular table instead.
type Noun struct {
	grammar *grammar.Grammar
	general *General
}

func NewNoun(g *grammar.Grammar, gen *General) *Noun {
	return &Noun{grammar: g, general: gen}
}

// declension returns the noun paradigm of one declension, limited to gender
// when given. The result is nil when the declension lacks that gender.
func (n *Noun) declension(decl, gender string) *morph.Paradigm {
	p := n.grammar.Class(grammar.Noun).Filter(morph.Pairs(morph.KeyDeclension, decl))
	if gender == "" {
		return p
	}
	return p.Filter(morph.Pairs(morph.KeyGender, gender))
}

func (n *Noun) Apply(lemma string, opts Options) []morph.ConstructedWord {
	if irr := n.grammar.IrregularNouns(); irr.IsIrregular(lemma) {
		return fromParadigm(irr.Forms(lemma), lemma)
	}
	out := n.regular(lemma, opts)
	if len(out) == 0 && opts.Gender == "feminine" {
		out = n.feminine(lemma)
	}
	return out
}

func (n *Noun) regular(lemma string, opts Options) []morph.ConstructedWord {
	apply := func(decl string, rule morph.DerivingRule) []morph.ConstructedWord {
		return n.general.Apply(lemma, n.declension(decl, opts.Gender), rule)
	}
	switch {
	case strings.HasSuffix(lemma, "o"):
		return apply("as", morph.RightDelete(1))
	case strings.HasSuffix(lemma, "as"):
		return apply("as", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "a"):
		switch opts.Declension {
		case "", "a":
			return apply("a", morph.RightDelete(1))
		case "as":
			return apply("as", morph.RightDelete(1))
		}
		return nil
	case strings.HasSuffix(lemma, "u"):
		return apply("u", morph.RightDelete(1))
	case strings.HasSuffix(lemma, "us"):
		return apply("us", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "i"):
		return apply("i", morph.RightDelete(1))
	case strings.HasSuffix(lemma, "in"):
		return apply("in", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "ar"):
		return apply("ar", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "an"):
		return apply("an", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "at"):
		return apply("ant", morph.RightDelete(2))
	case strings.HasSuffix(lemma, "ant"):
		return apply("ant", morph.RightDelete(3))
	case strings.HasSuffix(lemma, "ā"):
		if opts.Declension != "" {
			switch opts.Declension {
			case "ā", "ar", "an":
				return apply(opts.Declension, morph.RightDelete(1))
			}
			return nil
		}
		var out []morph.ConstructedWord
		for _, decl := range []string{"ā", "ar", "an"} {
			out = append(out, apply(decl, morph.RightDelete(1))...)
		}
		return out
	case strings.HasSuffix(lemma, "ī"):
		return apply("ī", morph.RightDelete(1))
	case strings.HasSuffix(lemma, "ū"):
		return apply("ū", morph.RightDelete(1))
	case strings.HasSuffix(lemma, "aṃ"):
		return apply("ant", morph.RightDelete(2))
	}
	return nil
}

// feminine declines the feminine bases of a masculine or neuter lemma.
func (n *Noun) feminine(lemma string) []morph.ConstructedWord {
	var out []morph.ConstructedWord
	for _, base := range FeminineBases(lemma) {
		decl := "ā"
		if strings.HasSuffix(base, "ī") {
			decl = "ī"
		}
		out = append(out, n.general.Apply(base, n.declension(decl, "feminine"), morph.RightDelete(1))...)
	}
	return withLemma(out, lemma)
}
