package strategy

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/morph"
	"github.com/cours-de-latin/pali/sandhi"
	"github.com/cours-de-latin/pali/validate"
)

func setup(t *testing.T) (*grammar.Grammar, *sandhi.Rules, *Manager) {
	t.Helper()
	g, err := grammar.Default()
	require.NoError(t, err)
	rules, err := sandhi.Default()
	require.NoError(t, err)
	return g, rules, NewManager(g, rules)
}

func words(ws []morph.ConstructedWord) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Word
	}
	return out
}

func find(ws []morph.ConstructedWord, word string) (morph.ConstructedWord, bool) {
	for _, w := range ws {
		if w.Word == word {
			return w, true
		}
	}
	return morph.ConstructedWord{}, false
}

func TestGeneralFallsBackToSandhi(t *testing.T) {
	_, rules, _ := setup(t)
	gen := NewGeneral(sandhi.NewMerger(rules))
	fs := morph.Pairs(morph.KeyCase, "nominative")

	got := gen.Apply("vāṃ", morph.NewParadigm(morph.NewMorpheme(fs, morph.Morph{Text: "ka"})), morph.NullRule{})
	assert.Equal(t, []string{"vāṅka"}, words(got))

	got = gen.Apply("rāja", morph.NewParadigm(morph.NewMorpheme(fs, morph.Morph{Text: "tthi"})), morph.RightDelete(1))
	assert.Empty(t, got)
}

func TestGeneralOccurrence(t *testing.T) {
	gen := NewGeneral(nil)
	p := morph.NewParadigm(morph.NewMorpheme(morph.Pairs(morph.KeyTense, "future"),
		morph.Morph{Text: "issati", Occurrence: morph.ParseOccurrence("Cm1")},
		morph.Morph{Text: "mi", Occurrence: morph.ParseOccurrence("Cl1a")},
	))
	got := gen.Apply("bhavati", p, morph.Replacing("bhava"))
	require.Len(t, got, 2)
	assert.Equal(t, "bhavissati", got[0].Word)
	assert.Equal(t, "bhav", got[0].Stem)
	assert.Equal(t, "bhavāmi", got[1].Word)
	assert.Equal(t, "bhavā", got[1].Stem)
	for _, w := range got {
		assert.Equal(t, "bhavati", w.Lemma)
		assert.Equal(t, "future", w.Features.Get(morph.KeyTense))
	}
}

func TestNounDeclensionCoverage(t *testing.T) {
	g, rules, m := setup(t)
	noun := m.Strategy(ClassNoun)
	merger := sandhi.NewMerger(rules)
	endings := g.Class(grammar.Noun).Endings()
	var v validate.Validator
	merged := func(w morph.ConstructedWord) bool {
		for _, e := range endings {
			if slices.Contains(merger.Joined(w.Stem, e.Text), w.Word) {
				return true
			}
		}
		return false
	}
	lemmas := []string{
		"mano", "manas", "deva", "bhikkhu", "āyus", "aggi", "hatthin", "pitar",
		"rājan", "guṇavat", "guṇavant", "kaññā", "nadī", "vadhū", "guṇavaṃ",
	}
	for _, l := range lemmas {
		t.Run(l, func(t *testing.T) {
			got := noun.Apply(l, Options{})
			assert.NotEmpty(t, got)
			for _, w := range got {
				assert.Equal(t, l, w.Lemma)
				assert.Equal(t, grammar.Noun, w.Features.Get(morph.KeyParadigm))
				require.NotEmpty(t, w.Word)
				assert.True(t, v.IsValidWord(w.Word) || merged(w), "%s is neither valid nor a sandhi merge", w.Word)
			}
		})
	}
	assert.Empty(t, noun.Apply("dhammak", Options{}))
}

func TestNoun(t *testing.T) {
	_, _, m := setup(t)
	noun := m.Strategy(ClassNoun)

	got := noun.Apply("deva", Options{})
	w, ok := find(got, "devo")
	require.True(t, ok)
	assert.True(t, w.Features.Satisfies(morph.Pairs(morph.KeyCase, "nominative", morph.KeyNumber, "singular", morph.KeyGender, "masculine")))
	assert.Subset(t, words(got), []string{"devaṃ", "devena", "devānaṃ", "devesu"})

	masc := noun.Apply("deva", Options{Gender: "masculine"})
	for _, w := range masc {
		assert.Equal(t, "masculine", w.Features.Get(morph.KeyGender))
	}
	assert.Less(t, len(masc), len(got))

	fem := noun.Apply("deva", Options{Gender: "feminine"})
	assert.Subset(t, words(fem), []string{"devā", "devī", "deviyā"})
	for _, w := range fem {
		assert.Equal(t, "deva", w.Lemma)
		assert.Equal(t, "feminine", w.Features.Get(morph.KeyGender))
	}

	assert.Contains(t, words(noun.Apply("mana", Options{Declension: "as"})), "manasā")
	assert.Empty(t, noun.Apply("mana", Options{Declension: "i"}))

	for _, w := range noun.Apply("rājā", Options{Declension: "an"}) {
		assert.Equal(t, "an", w.Features.Get(morph.KeyDeclension))
	}
	assert.Contains(t, words(noun.Apply("rājā", Options{})), "rājānaṃ")
}

func TestNounIrregular(t *testing.T) {
	_, _, m := setup(t)
	got := m.Strategy(ClassNoun).Apply("go", Options{})
	assert.Subset(t, words(got), []string{"go", "gāvo", "gāvena"})
	for _, w := range got {
		assert.Equal(t, "go", w.Lemma)
	}
}

func TestAdjective(t *testing.T) {
	_, _, m := setup(t)
	got := m.Strategy(ClassAdjective).Apply("kusala", Options{})

	tests := []struct {
		word       string
		comparison string
	}{
		{"kusalo", Positive},
		{"kusalī", Positive},
		{"kusalataro", Comparative},
		{"kusaliyo", Comparative},
		{"kusalatamo", Superlative},
		{"kusaliṭṭho", Superlative},
		{"kusalissiko", Superlative},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w, ok := find(got, tt.word)
			require.True(t, ok)
			assert.Equal(t, tt.comparison, w.Features.Get(morph.KeyComparison))
		})
	}

	tama, _ := find(got, "kusalatamo")
	assert.Equal(t, "rare", tama.Features.Get(morph.KeyFrequency))
	for _, w := range got {
		assert.Equal(t, "kusala", w.Lemma)
	}

	assert.Contains(t, words(m.Strategy(ClassAdjective).Apply("guṇavant", Options{})), "guṇavantī")
}

func TestVerb(t *testing.T) {
	_, _, m := setup(t)
	verb := m.Strategy(ClassVerb)
	got := verb.Apply("bhavati", Options{})
	assert.Subset(t, words(got), []string{
		"bhavati", "bhavanti", "bhavāmi", "bhavissati", "bhavi", "abhavi", "bhavā", "abhavā", "bhoti",
	})

	w, ok := find(got, "bhoti")
	require.True(t, ok)
	assert.Equal(t, "present", w.Features.Get(morph.KeyTense))

	w, ok = find(got, "abhavi")
	require.True(t, ok)
	assert.Equal(t, "aorist", w.Features.Get(morph.KeyTense))

	assert.Equal(t, len(got), len(morph.UniqueWords(got)))
	assert.Contains(t, words(verb.Apply("desayati", Options{})), "deseti")
	assert.Empty(t, verb.Apply("gacchanto", Options{}))

	stems := make(map[string]bool)
	for _, cw := range got {
		stems[cw.Stem] = true
	}
	assert.True(t, stems["bhu"] || stems["bhū"], "no form built on the root of bhavati")

	withClass := verb.Apply("bhavati", Options{Declension: "1"})
	assert.Subset(t, words(withClass), words(got))
	assert.Contains(t, words(withClass), "bhoma")
}

func TestStemFromRoot(t *testing.T) {
	h := NewVerbHelper(nil)
	tests := []struct {
		root  string
		class int
		want  []string
	}{
		{"dā", 1, []string{"dā", "dadā"}},
		{"bhuj", 2, []string{"bhuñja"}},
		{"budh", 3, []string{"bujjha"}},
		{"div", 3, []string{"dibba"}},
		{"su", 4, []string{"suṇu", "suṇo", "suṇā"}},
		{"sak", 4, []string{"sakuṇu", "sakuṇo", "sakuṇā"}},
		{"ki", 5, []string{"kinā"}},
		{"tan", 6, []string{"tano", "tanav"}},
		{"cur", 7, []string{"curaya", "cure", "coraya", "core"}},
	}
	for _, tt := range tests {
		t.Run(tt.root, func(t *testing.T) {
			assert.Equal(t, tt.want, h.StemFromRoot(tt.root, tt.class))
		})
	}
	assert.Subset(t, h.StemFromRoot("bhū", 0), []string{"bhū", "bho", "bhava", "bhūnā"})
}

func TestRootFromStem(t *testing.T) {
	_, rules, _ := setup(t)
	h := NewVerbHelper(sandhi.NewSplitter(rules))
	ctx := context.Background()
	tests := []struct {
		stem  string
		class int
		want  []string
	}{
		{"bhava", 1, []string{"bhu", "bhū"}},
		{"bhuñja", 2, []string{"bhuj"}},
		{"suṇo", 4, []string{"su"}},
		{"kinā", 5, []string{"ki"}},
		{"tano", 6, []string{"tan"}},
		{"coraya", 7, []string{"cor", "cur", "cūr"}},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, h.RootFromStem(ctx, tt.stem, tt.class))
		})
	}
	assert.Subset(t, h.RootFromStem(ctx, "bhava", 0), []string{"bhu", "bhū"})
	assert.Empty(t, h.RootFromStem(ctx, "bhava", 2))

	assert.True(t, IsPlausibleRoot("bhū"))
	assert.False(t, IsPlausibleRoot("v"))
	assert.False(t, IsPlausibleRoot("bhava"))
}

func TestNumeral(t *testing.T) {
	_, _, m := setup(t)
	num := m.Strategy(ClassNumeral)

	assert.Subset(t, words(num.Apply("eka", Options{})), []string{"eko", "ekena", "ekā"})
	assert.Subset(t, words(num.Apply("pañca", Options{})), []string{"pañca", "pañcahi", "pañcannaṃ", "pañcasu"})
	assert.Subset(t, words(num.Apply("vīsati", Options{})), []string{"vīsati", "vīsatiyā"})
	assert.Subset(t, words(num.Apply("sataṃ", Options{})), []string{"sataṃ", "satena"})

	for _, w := range num.Apply("pañca", Options{}) {
		assert.Equal(t, FiveTo18, w.Features.Get(morph.KeyRestrict))
		assert.Equal(t, "pañca", w.Lemma)
	}

	assert.True(t, IsOneToFourStem("ek"))
	assert.True(t, IsFiveTo18Stem("pañc"))
	assert.True(t, Is19UpStem("vīsat"))
}

func TestPronoun(t *testing.T) {
	_, _, m := setup(t)
	pron := m.Strategy(ClassPronoun)

	so := words(pron.Apply("so", Options{}))
	assert.Subset(t, so, []string{"so", "te"})
	assert.NotContains(t, so, "sā")

	aham := words(pron.Apply("ahaṃ", Options{}))
	assert.Subset(t, aham, []string{"ahaṃ", "mayaṃ", "amhe"})
	assert.NotContains(t, aham, "tvaṃ")

	asu := words(pron.Apply("asu", Options{}))
	assert.Subset(t, asu, []string{"asu", "amu", "amuyo"})
	assert.NotContains(t, asu, "aduṃ")

	assert.Subset(t, words(pron.Apply("ime", Options{})), []string{"ayaṃ", "idaṃ", "imā"})
	assert.Empty(t, pron.Apply("xyz", Options{}))
}

func TestInvariable(t *testing.T) {
	got := Adverb.Apply("evaṃ", Options{})
	require.Len(t, got, 1)
	assert.Equal(t, "evaṃ", got[0].Word)
	assert.Equal(t, grammar.Adverb, got[0].Features.Get(morph.KeyParadigm))
	assert.Equal(t, grammar.Indeclinable, got[0].Features.Get(morph.KeySubtype))

	got = Unknown.Apply("xyz", Options{})
	require.Len(t, got, 1)
	assert.Equal(t, grammar.Unknown, got[0].Features.Get(morph.KeyParadigm))

	assert.Empty(t, Null{}.Apply("deva", Options{}))
}

func TestAffix(t *testing.T) {
	_, _, m := setup(t)
	got := m.Generate("deva", "noun", Options{Extra: []string{ExtraAffix}})
	plain := m.Generate("deva", "noun", Options{})
	assert.Greater(t, len(got), len(plain))

	w, ok := find(got, "padevo")
	require.True(t, ok)
	assert.Equal(t, grammar.Noun, w.Features.Get(morph.KeyParadigm))
	assert.True(t, w.Features.Contains(morph.Feature{Key: morph.KeySubtype, Value: "prefix"}))
	assert.Contains(t, words(got), "devotā")
}

func TestManager(t *testing.T) {
	_, _, m := setup(t)
	tests := []struct {
		in   string
		want WordClass
		ok   bool
	}{
		{"noun", ClassNoun, true},
		{" Verb", ClassVerb, true},
		{"adj", ClassAdjective, true},
		{"adv", ClassAdverb, true},
		{"indeclinable", ClassIndeclinable, true},
		{"foo", ClassUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := ParseWordClass(tt.in)
			assert.Equal(t, tt.want, c)
			assert.Equal(t, tt.ok, ok)
		})
	}
	assert.Equal(t, "adjective", ClassAdjective.String())
	assert.IsType(t, Null{}, m.Strategy(WordClass(42)))
	assert.Nil(t, m.Generate("deva", "foo", Options{}))
	assert.NotEmpty(t, m.Generate("deva", "adj", Options{}))
	assert.Equal(t, "masculine", ParseGender("m"))
	assert.Equal(t, "neuter", ParseGender("nt"))
}

func TestFeminineBases(t *testing.T) {
	assert.Equal(t, []string{"devā", "devī", "devinī", "devānī"}, FeminineBases("deva"))
	assert.Equal(t, []string{"sādhunī"}, FeminineBases("sādhu"))
	assert.Equal(t, []string{"agginī", "aggānī"}, FeminineBases("aggi"))
	assert.Nil(t, FeminineBases("x"))
}
