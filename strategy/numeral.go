package strategy

import (
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
)

// Restriction values of the numeral paradigm.
const (
	FiveTo18   = "5to18"
	NineteenUp = "19up"
)

var (
	oneToFour = []string{"eka", "dve", "ubho", "tayo", "cattāro"}
	fiveTo18  = []string{
		"pañca", "cha", "satta", "aṭṭha", "nava",
		"dasa", "rasa", "lasa", "ḷasa",
		"akārasa", "ekādasa",
		"bārasa", "dvārasa",
		"tedasa", "terasa", "telasa",
		"catuddasa", "cuddasa", "coddasa",
		"pañcadasa", "paṇṇarasa", "pannarasa",
		"soḷasa", "sorasa",
		"sattadasa", "sattarasa",
		"aṭṭhādasa", "aṭṭhārasa",
	}
)

// Numeral declines cardinal numbers. One to four come from the irregular
// table, five to eighteen and nineteen upwards have paradigms of their own.
type Numeral struct {
	grammar *grammar.Grammar
	general *General
}

func NewNumeral(g *grammar.Grammar, gen *General) *Numeral {
	return &Numeral{grammar: g, general: gen}
}

func (n *Numeral) paradigm(restriction, decl string) *morph.Paradigm {
	return n.grammar.Class(grammar.Numeral).Filter(morph.Pairs(morph.KeyRestrict, restriction, morph.KeyDeclension, decl))
}

func (n *Numeral) Apply(lemma string, _ Options) []morph.ConstructedWord {
	if contains(oneToFour, lemma) {
		return fromParadigm(n.grammar.IrregularNumerals().Forms(lemma), lemma)
	}
	var out []morph.ConstructedWord
	switch {
	case strings.HasSuffix(lemma, "aṃ"):
		out = n.general.Apply(lemma, n.paradigm(NineteenUp, "aṃ"), morph.RightDelete(2))
	case strings.HasSuffix(lemma, "a"):
		restriction := NineteenUp
		if contains(fiveTo18, lemma) {
			restriction = FiveTo18
		}
		out = n.general.Apply(lemma, n.paradigm(restriction, "a"), morph.RightDelete(1))
	case strings.HasSuffix(lemma, "i"):
		out = n.general.Apply(lemma, n.paradigm(NineteenUp, "i"), morph.RightDelete(1))
	}
	return withLemma(out, lemma)
}

// IsOneToFourStem reports whether stem is, or is at most two letters short
// of, a numeral from one to four.
func IsOneToFourStem(stem string) bool { return isStemOf(oneToFour, stem) }

// IsFiveTo18Stem is IsOneToFourStem for five to eighteen.
func IsFiveTo18Stem(stem string) bool { return isStemOf(fiveTo18, stem) }

// Is19UpStem reports whether stem belongs to neither of the lower ranges.
func Is19UpStem(stem string) bool {
	return !IsOneToFourStem(stem) && !IsFiveTo18Stem(stem)
}

func isStemOf(list []string, stem string) bool {
	for _, s := range list {
		if s == stem || strings.HasPrefix(s, stem) && alphabet.RuneLen(s)-alphabet.RuneLen(stem) < 3 {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
