package strategy

import (
	"context"
	"strconv"
	"strings"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
)

// augment is prefixed to past tense forms.
const augment = "a"

var augmentedTenses = map[string]bool{"imperfect": true, "aorist": true}

// Verb conjugates verbs cited in the third person singular present (-ti).
//
// The present stem and every root derived from it are conjugated. When
// Options.Declension names a stem class ("1" to "7"), the stems of that
// class built on those roots are conjugated as well.
type Verb struct {
	grammar *grammar.Grammar
	general *General
	helper  *VerbHelper
	sound   *sandhi.SoundChanger
}

func NewVerb(g *grammar.Grammar, gen *General, h *VerbHelper, sc *sandhi.SoundChanger) *Verb {
	return &Verb{grammar: g, general: gen, helper: h, sound: sc}
}

func (v *Verb) Apply(lemma string, opts Options) []morph.ConstructedWord {
	if !strings.HasSuffix(lemma, "ti") {
		return nil
	}
	verbs := v.grammar.Class(grammar.Verb)
	stem := morph.RightDeleteString("ti").Apply(lemma)

	out := v.general.Apply(lemma, verbs, morph.Replacing(stem))
	class, err := strconv.Atoi(opts.Declension)
	withClass := err == nil && class >= 1 && class <= Classes
	for _, root := range v.helper.RootFromStem(context.Background(), stem, 0) {
		out = append(out, v.general.Apply(lemma, verbs, morph.Replacing(root))...)
		if !withClass {
			continue
		}
		for _, s := range v.helper.StemFromRoot(root, class) {
			if s != stem {
				out = append(out, v.general.Apply(lemma, verbs, morph.Replacing(s))...)
			}
		}
	}
	var extra []morph.ConstructedWord
	for _, cw := range out {
		if v.sound != nil {
			changed := cw.Clone()
			changed.Word = v.sound.CommonChange(cw.Word)
			if !containsWord(out, changed) {
				extra = append(extra, changed)
			}
		}
		if augmentedTenses[cw.Features.Get(morph.KeyTense)] {
			aug := cw.Clone()
			aug.Word = augment + cw.Word
			extra = append(extra, aug)
		}
	}
	return morph.UniqueWords(append(out, extra...))
}

func containsWord(ws []morph.ConstructedWord, w morph.ConstructedWord) bool {
	for _, o := range ws {
		if o.Equal(w) {
			return true
		}
	}
	return false
}
