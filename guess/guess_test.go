package guess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/pali/grammar"
)

func newGuesser(t *testing.T, opts ...Option) *Guesser {
	t.Helper()
	g, err := grammar.Default()
	require.NoError(t, err)
	return New(g, opts...)
}

func TestSelectClasses(t *testing.T) {
	g := &Guesser{prune: 16}
	tests := []struct {
		name   string
		ranked []Score
		want   []string
	}{
		{"empty", nil, []string{"adverb", "indeclinable"}},
		{"single", []Score{{"noun", 3}}, []string{"noun"}},
		{"clear winner", []Score{{"verb", 40}, {"noun", 20}}, []string{"verb"}},
		{"within prune", []Score{{"verb", 30}, {"noun", 20}}, []string{"verb", "noun"}},
		{"exactly prune", []Score{{"verb", 36}, {"noun", 20}}, []string{"verb", "noun"}},
		{"sliding window", []Score{{"noun", 60}, {"adjective", 50}, {"numeral", 40}, {"verb", 10}}, []string{"noun", "adjective", "numeral"}},
		{"gap after tie", []Score{{"noun", 30}, {"adjective", 30}, {"verb", 5}}, []string{"noun", "adjective"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.selectClasses(tt.ranked))
		})
	}
}

func TestFromWordForm(t *testing.T) {
	g := newGuesser(t)

	assert.Equal(t, []string{"adverb", "indeclinable"}, g.FromWordForm("qqq"))
	assert.Equal(t, []string{"noun"}, g.FromWordForm("gāvena"))
	assert.Equal(t, []string{"numeral"}, g.FromWordForm("tīhi"))
	assert.Contains(t, g.FromWordForm("bhavati"), "verb")
	assert.Contains(t, g.FromWordForm("rājassa"), "noun")

	for _, w := range []string{"rājassa", "bhavati", "kaññāya", "dhammesu"} {
		first := g.FromWordForm(w)
		assert.NotEmpty(t, first, w)
		assert.Equal(t, first, g.FromWordForm(w), w)
	}
}

func TestScoresSeedVerbs(t *testing.T) {
	g := newGuesser(t)
	var verb int
	for _, s := range g.Scores("bhavati") {
		if s.Class == "verb" {
			verb = s.Score
		}
	}
	// seed plus the -ti ending itself
	assert.GreaterOrEqual(t, verb, verbSeed+3)
}

func TestWithPrune(t *testing.T) {
	assert.Equal(t, 3, newGuesser(t, WithPrune(3)).Prune())
	assert.Equal(t, DefaultPrune, newGuesser(t, WithPrune(-1)).Prune())
}

func TestFromLemma(t *testing.T) {
	g := newGuesser(t)
	tests := []struct {
		lemma string
		want  []string
	}{
		{"rāja", []string{"noun", "adjective", "numeral"}},
		{"go", []string{"noun"}},
		{"tayo", []string{"numeral"}},
		{"ahaṃ", []string{"pronoun"}},
		{"bhavati", []string{"verb"}},
		{"gantuṃ", []string{"indeclinable"}},
		{"pitar", []string{"noun"}},
		{"guṇavant", []string{"noun", "adjective"}},
		{"ce", nil},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			assert.Equal(t, tt.want, g.FromLemma(tt.lemma))
		})
	}
}

func TestIsLemmaForm(t *testing.T) {
	for _, w := range []string{"tathā", "na", "evaṃ", "bhavati", "pitar", "rājan", "bhikkhu"} {
		assert.True(t, IsLemmaForm(w), w)
	}
	for _, w := range []string{"te", "rājo", "rājāyo", "kiṃ"} {
		assert.False(t, IsLemmaForm(w), w)
	}
}
