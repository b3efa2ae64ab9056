package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureSetSubsetLaw(t *testing.T) {
	a := Pairs("case", "nominative", "number", "singular", "gender", "masculine", "declension", "a")
	all := a.Features()

	// every subset of a's pairs is satisfied
	for mask := 0; mask < 1<<len(all); mask++ {
		var sub []Feature
		for i, f := range all {
			if mask&(1<<i) != 0 {
				sub = append(sub, f)
			}
		}
		b := NewFeatureSet(sub...)
		assert.True(t, a.Satisfies(b), "subset %s", b)
		assert.False(t, a.Satisfies(b.With(Feature{"case", "genitive"})), "extended %s", b)
	}
}

func TestFeatureSetIsCopyOnWrite(t *testing.T) {
	base := Pairs("case", "nominative")
	withNumber := base.With(Feature{"number", "plural"})
	changed := withNumber.Set("case", "accusative")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, "nominative", withNumber.Get("case"))
	assert.Equal(t, "accusative", changed.Get("case"))
	assert.Equal(t, "plural", changed.Get("number"))
	assert.Equal(t, "", base.Get("number"))

	feats := base.Features()
	feats[0].Value = "mutated"
	assert.Equal(t, "nominative", base.Get("case"))
}

func TestFeatureSetOps(t *testing.T) {
	s := Pairs("a", "1", "b", "2", "a", "3")
	assert.Equal(t, "1", s.Get("a"))
	assert.True(t, s.Has("b"))
	assert.Equal(t, Pairs("b", "2"), s.Without("a"))
	assert.Equal(t, Pairs("a", "1", "b", "2", "a", "3", "c", "4"), s.Union(Pairs("b", "2", "c", "4")))
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, s.Map())
	assert.True(t, Pairs("x", "y").Equal(Pairs("x", "y")))
	assert.False(t, Pairs("x", "y", "z", "w").Equal(Pairs("z", "w", "x", "y")))
	assert.Equal(t, "{a=1,b=2,a=3}", s.String())
}

func TestOccurrence(t *testing.T) {
	tests := []struct {
		tag  string
		stem string
		want string
	}{
		{"Cm1", "rāj", "rā"},
		{"Cm2", "pit", "p"},
		{"Cl1a", "rāja", "rājā"},
		{"Cl2a", "pitar", "pitār"},
		{"Cl1a", "pitar", "pitar"},
		{"Cm9", "ab", ""},
		{"Drare", "rāj", "rāj"},
		{"Rx", "rāj", "rāj"},
		{"", "rāj", "rāj"},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.stem, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOccurrence(tt.tag).ApplyString(tt.stem))
		})
	}

	cw := ConstructedWord{Stem: "rāj"}
	out := ParseOccurrence("Drare").Apply(cw)
	assert.Equal(t, "rare", out.Features.Get(KeyFrequency))
	assert.True(t, cw.Features.IsEmpty())
	out = ParseOccurrence("Drare").Apply(out)
	assert.Equal(t, 1, out.Features.Len())
	assert.Equal(t, "Cm1", ParseOccurrence("Cm1").Tag())
}

func TestMorpheme(t *testing.T) {
	m := NewMorpheme(Pairs("case", "genitive"), Morph{Text: "assa"}, Morph{Text: "a"}, Morph{Text: "ssa"})
	assert.True(t, m.IsApplicable("rājassa"))
	got, ok := m.Match("rājassa")
	require.True(t, ok)
	assert.Equal(t, "assa", got)
	_, ok = m.Match("rājo")
	assert.False(t, ok)
	assert.True(t, m.Exactly("ssa"))
	assert.False(t, m.Exactly("rājassa"))
}

func TestParadigmAddMerges(t *testing.T) {
	p := NewParadigm(
		NewMorpheme(Pairs("case", "nominative"), Morph{Text: "o"}),
		NewMorpheme(Pairs("case", "nominative"), Morph{Text: "e"}, Morph{Text: "o"}),
		NewMorpheme(Pairs("case", "accusative"), Morph{Text: "aṃ"}),
	)
	require.Equal(t, 2, p.Len())
	assert.Len(t, p.Morphemes()[0].Allomorphs, 2)
	assert.Len(t, p.Endings(), 3)
}

func TestParadigmFilter(t *testing.T) {
	p := NewParadigm(
		NewMorpheme(Pairs("declension", "a", "gender", "masculine", "case", "nominative"), Morph{Text: "o"}),
		NewMorpheme(Pairs("declension", "a", "gender", "neuter", "case", "nominative"), Morph{Text: "aṃ"}),
		NewMorpheme(Pairs("declension", "i", "gender", "masculine", "case", "nominative"), Morph{Text: "i"}),
	)
	fs := Pairs("declension", "a")
	once := p.Filter(fs)
	require.NotNil(t, once)
	assert.Equal(t, 2, once.Len())
	twice := once.Filter(fs)
	assert.Equal(t, once.Morphemes(), twice.Morphemes())

	assert.Nil(t, p.Filter(Pairs("declension", "u")))
	assert.Nil(t, (*Paradigm)(nil).Filter(fs))

	// filtered copies are independent of the source
	ms := once.Morphemes()
	ms[0].Allomorphs[0].Text = "x"
	assert.Equal(t, "o", p.Morphemes()[0].Allomorphs[0].Text)

	diff := p.Difference(once)
	assert.Equal(t, 1, diff.Len())

	fsOf, ok := p.FeatureSetOf("aṃ")
	require.True(t, ok)
	assert.Equal(t, "neuter", fsOf.Get("gender"))

	assert.True(t, p.IsApplicable("rājo"))
	assert.False(t, p.IsApplicable("rājesu"))
	merged := p.WithFeature("declension", "x")
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, "x", merged.Morphemes()[0].Get("declension"))
}

func TestParadigmHasSubtype(t *testing.T) {
	p := NewParadigm(
		NewMorpheme(Pairs("subtype", "demonstrative", "case", "nominative"), Morph{Text: "ayaṃ"}),
		NewMorpheme(Pairs("subtype", "demonstrative", "case", "accusative"), Morph{Text: "imaṃ"}),
	)
	assert.True(t, p.HasSubtype("demonstrative"))
	assert.False(t, p.HasSubtype("personal"))
	assert.False(t, NewParadigm().HasSubtype("demonstrative"))
}

func TestConstructedWordClone(t *testing.T) {
	cw := ConstructedWord{Word: "rājo", Lemma: "rāja", Features: Pairs("case", "nominative")}
	c := cw.Clone()
	c.Features = c.Features.Set("case", "vocative")
	assert.Equal(t, "nominative", cw.Features.Get("case"))
	assert.False(t, cw.Equal(c))
	assert.Len(t, UniqueWords([]ConstructedWord{cw, cw.Clone(), c}), 2)
}

func TestDerivingRules(t *testing.T) {
	assert.Equal(t, "rāj", RightDelete(1).Apply("rāja"))
	assert.Equal(t, "rāja", RightDelete(9).Apply("rāja"))
	assert.Equal(t, "bhava", RightDeleteString("ti").Apply("bhavati"))
	assert.Equal(t, "bhavati", RightDeleteString("xx").Apply("bhavati"))
	assert.Equal(t, "ja", LeftDelete(2).Apply("rāja"))
	assert.Equal(t, "gacchati", LeftDeleteString("ā").Apply("āgacchati"))
	assert.Equal(t, "gam", Replacing("gam").Apply("gacchati"))
	assert.Equal(t, "rāja", NullRule{}.Apply("rāja"))
}
