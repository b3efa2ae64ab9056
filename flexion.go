package pali

import (
	"context"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/strategy"
)

// GenerateOption narrows or extends generation.
type GenerateOption func(*strategy.Options)

// WithGender keeps the forms of one gender. Dictionary abbreviations
// (m, f, n) are accepted.
func WithGender(g string) GenerateOption {
	return func(o *strategy.Options) { o.Gender = strategy.ParseGender(g) }
}

// WithDeclension selects a declension by its citation ending, or a verb
// stem class by its number.
func WithDeclension(d string) GenerateOption {
	return func(o *strategy.Options) { o.Declension = d }
}

// WithAffixes adds the prefixed and suffixed forms.
func WithAffixes() GenerateOption {
	return func(o *strategy.Options) { o.Extra = append(o.Extra, strategy.ExtraAffix) }
}

// Generate builds the forms of lemma. An irregular lemma yields its table.
// Without pos every class the lemma may belong to is generated.
func (e *Engine) Generate(_ context.Context, lemma, pos string, opts ...GenerateOption) []SurfaceForm {
	lemma = Normalize(lemma)
	if lemma == "" {
		return nil
	}
	var o strategy.Options
	for _, opt := range opts {
		opt(&o)
	}

	cws := e.irregularForms(lemma)
	if len(cws) == 0 {
		classes := []string{pos}
		if pos == "" {
			if guessed := e.guesser.FromLemma(lemma); len(guessed) > 0 {
				classes = guessed
			}
		}
		for _, class := range classes {
			ws := e.manager.Generate(lemma, class, o)
			if len(ws) == 0 {
				e.logger.Debug().Str("lemma", lemma).Str("pos", class).Msg("nothing generated")
			}
			cws = append(cws, ws...)
		}
	}
	cws = morph.UniqueWords(cws)
	out := make([]SurfaceForm, 0, len(cws))
	for _, cw := range cws {
		out = append(out, newSurfaceForm(cw))
	}
	return out
}

func (e *Engine) irregularForms(lemma string) []morph.ConstructedWord {
	var out []morph.ConstructedWord
	for _, irr := range []*grammar.Irregular{e.grammar.IrregularNouns(), e.grammar.IrregularNumerals()} {
		for _, m := range irr.Forms(lemma).Morphemes() {
			for _, a := range m.Allomorphs {
				out = append(out, morph.ConstructedWord{Word: a.Text, Lemma: lemma, Features: m.Features}.Clone())
			}
		}
	}
	return out
}
