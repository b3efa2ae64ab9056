package strategy

import (
	"strings"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
)

// WordClass enumerates the classes a strategy exists for.
type WordClass int

const (
	ClassUnknown WordClass = iota
	ClassNoun
	ClassVerb
	ClassAdjective
	ClassNumeral
	ClassPronoun
	ClassAdverb
	ClassIndeclinable
)

var classNames = map[WordClass]string{
	ClassUnknown:      grammar.Unknown,
	ClassNoun:         grammar.Noun,
	ClassVerb:         grammar.Verb,
	ClassAdjective:    grammar.Adjective,
	ClassNumeral:      grammar.Numeral,
	ClassPronoun:      grammar.Pronoun,
	ClassAdverb:       grammar.Adverb,
	ClassIndeclinable: grammar.Indeclinable,
}

var classAliases = map[string]WordClass{
	"adj":    ClassAdjective,
	"adv":    ClassAdverb,
	"num":    ClassNumeral,
	"pron":   ClassPronoun,
	"ind":    ClassIndeclinable,
	"indecl": ClassIndeclinable,
}

func (c WordClass) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return grammar.Unknown
}

// ParseWordClass accepts the paradigm names of the grammar and a few
// dictionary abbreviations. Unrecognised names give ClassUnknown and false.
func ParseWordClass(s string) (WordClass, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := classAliases[s]; ok {
		return c, true
	}
	for c, name := range classNames {
		if name == s {
			return c, true
		}
	}
	return ClassUnknown, false
}

// ParseGender expands the dictionary abbreviations m, f and n.
func ParseGender(s string) string {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "m", "masc":
		return "masculine"
	case "f", "fem":
		return "feminine"
	case "n", "nt", "neut":
		return "neuter"
	}
	return s
}

// Manager owns one strategy per word class.
type Manager struct {
	strategies map[WordClass]Strategy
	helper     *VerbHelper
	affix      *Affix
}

// NewManager wires every strategy to the grammar and the sandhi rules.
func NewManager(g *grammar.Grammar, rules *sandhi.Rules) *Manager {
	merger := sandhi.NewMerger(rules)
	general := NewGeneral(merger)
	helper := NewVerbHelper(sandhi.NewSplitter(rules))
	affix := NewAffix(g, merger)
	return &Manager{
		helper: helper,
		affix:  affix,
		strategies: map[WordClass]Strategy{
			ClassNoun:         NewNoun(g, general),
			ClassVerb:         NewVerb(g, general, helper, sandhi.NewSoundChanger(rules)),
			ClassAdjective:    NewAdjective(g, general),
			ClassNumeral:      NewNumeral(g, general),
			ClassPronoun:      NewPronoun(g),
			ClassAdverb:       Adverb,
			ClassIndeclinable: Indeclinable,
			ClassUnknown:      Unknown,
		},
	}
}

// Strategy returns the strategy of c, or Null.
func (m *Manager) Strategy(c WordClass) Strategy {
	if s, ok := m.strategies[c]; ok {
		return s
	}
	return Null{}
}

// VerbHelper exposes the root and stem conversions used by the verb
// strategy.
func (m *Manager) VerbHelper() *VerbHelper { return m.helper }

// Generate applies the strategy named by class, which may be an
// abbreviation. An unknown class name generates nothing. With ExtraAffix
// in opts the affixed forms follow the plain ones.
func (m *Manager) Generate(lemma, class string, opts Options) []morph.ConstructedWord {
	c, ok := ParseWordClass(class)
	if !ok {
		return nil
	}
	out := m.Strategy(c).Apply(lemma, opts)
	if opts.Has(ExtraAffix) && len(out) > 0 {
		out = morph.UniqueWords(append(out, m.affix.Combine(out)...))
	}
	return out
}
