package strategy

import (
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
)

const (
	keySpecification = "specification"
	keyPerson        = "person"
)

func pronounFilter(kv ...string) morph.FeatureSet {
	return morph.Pairs(append([]string{morph.KeySubtype}, kv...)...)
}

// pronounLemmas maps citation forms to the part of the pronoun paradigm
// they head.
var pronounLemmas = map[string][]morph.FeatureSet{
	"ahaṃ": {pronounFilter("personal", keyPerson, "first")},
	"tvaṃ": {pronounFilter("personal", keyPerson, "second")},
	"ayaṃ": {pronounFilter("demonstrative", keySpecification, "ay/i")},
	"so":   {pronounFilter("demonstrative", keySpecification, "t", morph.KeyGender, "masculine")},
	"sā":   {pronounFilter("demonstrative", keySpecification, "t", morph.KeyGender, "feminine")},
	"taṃ":  {pronounFilter("demonstrative", keySpecification, "t", morph.KeyGender, "neuter")},
	"tad":  {pronounFilter("demonstrative", keySpecification, "t", morph.KeyGender, "neuter")},
	"asu": {
		pronounFilter("demonstrative", keySpecification, "asu/amu", morph.KeyGender, "masculine"),
		pronounFilter("demonstrative", keySpecification, "asu/amu", morph.KeyGender, "feminine"),
	},
	"aduṃ": {pronounFilter("demonstrative", keySpecification, "asu/amu", morph.KeyGender, "neuter")},
	"ko":   {pronounFilter("interrogative")},
	"ka°":  {pronounFilter("interrogative")},
	"kā":   {pronounFilter("interrogative", morph.KeyGender, "feminine")},
	"kiṃ":  {pronounFilter("interrogative", morph.KeyGender, "neuter")},
	"yo":   {pronounFilter("relative")},
	"ya°":  {pronounFilter("relative")},
	"yā":   {pronounFilter("relative", morph.KeyGender, "feminine")},
	"yaṃ":  {pronounFilter("relative", morph.KeyGender, "neuter")},
	"yad":  {pronounFilter("relative", morph.KeyGender, "neuter")},
}

// Pronoun lists the forms of a pronoun. Every form is stored in the
// paradigm, so nothing is derived.
type Pronoun struct {
	grammar *grammar.Grammar
}

func NewPronoun(g *grammar.Grammar) *Pronoun {
	return &Pronoun{grammar: g}
}

func (p *Pronoun) Apply(lemma string, _ Options) []morph.ConstructedWord {
	pronouns := p.grammar.Pronouns()
	filters, ok := pronounLemmas[lemma]
	if !ok {
		log.Debug().Str("lemma", lemma).Msg("not a pronoun citation form, using the paradigm entry")
		filters = p.fallback(lemma)
	}
	forms := morph.NewParadigm()
	for _, f := range filters {
		forms.Merge(pronouns.Filter(f))
	}
	return fromParadigm(forms, lemma)
}

// fallback selects the subparadigm of the first morpheme having lemma as an
// allomorph.
func (p *Pronoun) fallback(lemma string) []morph.FeatureSet {
	fs, ok := p.grammar.Pronouns().FeatureSetOf(lemma)
	if !ok {
		return nil
	}
	filter := pronounFilter(fs.Get(morph.KeySubtype))
	if spec := fs.Get(keySpecification); spec != "" {
		filter = filter.Set(keySpecification, spec)
	}
	return []morph.FeatureSet{filter}
}
