package pali

import (
	"context"
	"strings"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/strategy"
)

// segmentSeparator joins stem and ending in the Word of an analysis.
const segmentSeparator = "_"

const verbEnding = "ti"

// Citation endings tried when a matched morpheme names no declension.
var (
	nounLemmaEndings      = []string{"as", "a", "u", "us", "i", "in", "ar", "an", "ant", "ā", "ī", "ū"}
	adjectiveLemmaEndings = []string{"a", "i", "u", "ant", "ā", "ī", "ū"}
	numeral5To18Ending    = "a"
	numeral19UpEndings    = []string{"a", "i", "aṃ"}
)

// Analyze returns every reading of word. Without pos the word classes are
// guessed from the form. Pronouns and the irregular tables are always
// consulted. A word nothing applies to gives an empty result.
func (e *Engine) Analyze(ctx context.Context, word string, pos ...string) []Analysis {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	cws := e.analyze(ctx, word, pos)
	out := make([]Analysis, 0, len(cws))
	for _, cw := range cws {
		out = append(out, newAnalysis(cw))
	}
	return out
}

func (e *Engine) analyze(ctx context.Context, word string, pos []string) []morph.ConstructedWord {
	var out []morph.ConstructedWord
	out = append(out, e.pronounReadings(word)...)
	out = append(out, irregularReadings(word, grammar.Noun, e.grammar.IrregularNouns())...)
	out = append(out, irregularReadings(word, grammar.Numeral, e.grammar.IrregularNumerals())...)

	for _, class := range e.wordClasses(word, pos) {
		if class == grammar.Adverb {
			out = append(out, strategy.Adverb.Apply(word, strategy.Options{})...)
			continue
		}
		p := e.grammar.Class(class)
		if p == nil {
			out = append(out, strategy.Unknown.Apply(word, strategy.Options{})...)
			continue
		}
		for _, m := range p.Morphemes() {
			ending, ok := m.Match(word)
			if !ok {
				continue
			}
			start := strings.TrimSuffix(word, ending)
			for _, lemma := range e.lemmaFromStem(ctx, start, class, m.Get(morph.KeyDeclension)) {
				out = append(out, morph.ConstructedWord{
					Word:     start + segmentSeparator + ending,
					Stem:     start,
					Lemma:    lemma,
					Features: m.Features,
				}.Clone())
			}
		}
	}
	return morph.UniqueWords(out)
}

// wordClasses expands the abbreviations of the given hints, or guesses
// the classes of word when there is none.
func (e *Engine) wordClasses(word string, pos []string) []string {
	var out []string
	for _, p := range pos {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		if c, ok := strategy.ParseWordClass(p); ok {
			p = c.String()
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		out = e.guesser.FromWordForm(word)
	}
	return out
}

// pronounReadings matches word against every pronoun form. The lemma is
// the nominative singular of the same pronoun.
func (e *Engine) pronounReadings(word string) []morph.ConstructedWord {
	pronouns := e.grammar.Pronouns()
	var out []morph.ConstructedWord
	for _, mo := range pronouns.Morphemes() {
		if !mo.Exactly(word) {
			continue
		}
		citation := mo.Features
		if citation.Has(morph.KeyCase) {
			citation = citation.Set(morph.KeyCase, "nominative")
		}
		if citation.Has(morph.KeyNumber) {
			citation = citation.Set(morph.KeyNumber, "singular")
		}
		for _, lemma := range pronouns.Filter(citation).Endings() {
			out = append(out, morph.ConstructedWord{Word: word, Lemma: lemma.Text, Features: mo.Features}.Clone())
		}
	}
	return out
}

func irregularReadings(word, class string, irr *grammar.Irregular) []morph.ConstructedWord {
	if !irr.IsIrregular(word) {
		return nil
	}
	fs, _ := irr.Forms(word).FeatureSetOf(word)
	if !fs.Has(morph.KeyParadigm) {
		fs = fs.Set(morph.KeyParadigm, class)
	}
	var out []morph.ConstructedWord
	for _, lemma := range irr.Lemma(word).Endings() {
		out = append(out, morph.ConstructedWord{Word: word, Lemma: lemma.Text, Features: fs}.Clone())
	}
	return out
}

// lemmaFromStem lists the citation forms a stem may come from. A known
// declension decides alone.
func (e *Engine) lemmaFromStem(ctx context.Context, stem, class, declension string) []string {
	if declension != "" {
		return []string{stem + declension}
	}
	var out []string
	switch class {
	case grammar.Noun:
		out = suffixed(stem, nounLemmaEndings)
	case grammar.Adjective:
		out = suffixed(stem, adjectiveLemmaEndings)
	case grammar.Verb:
		helper := e.manager.VerbHelper()
		out = append(out, stem+verbEnding)
		for _, s := range helper.StemFromRoot(stem, 0) {
			out = append(out, s+verbEnding)
		}
		for _, r := range helper.RootFromStem(ctx, stem, 0) {
			out = append(out, r+verbEnding)
		}
	case grammar.Numeral:
		if strategy.IsFiveTo18Stem(stem) {
			out = append(out, stem+numeral5To18Ending)
		} else if strategy.Is19UpStem(stem) {
			out = suffixed(stem, numeral19UpEndings)
		}
	case grammar.Adverb:
		out = append(out, stem)
	}
	return uniqueStrings(out)
}

func suffixed(stem string, endings []string) []string {
	out := make([]string, 0, len(endings))
	for _, e := range endings {
		out = append(out, stem+e)
	}
	return out
}

func uniqueStrings(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
