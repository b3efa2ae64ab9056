package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"dhamma", []string{"dh", "a", "m", "m", "a"}},
		{"bhikkhu", []string{"bh", "i", "k", "kh", "u"}},
		{"rāja", []string{"r", "ā", "j", "a"}},
		{"saṃgha", []string{"s", "a", "ṃ", "gh", "a"}},
		{"h", []string{"h"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.word))
		})
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsVowel("a"))
	assert.True(t, IsVowel("ā"))
	assert.True(t, IsLongVowel("ū"))
	assert.False(t, IsLongVowel("e"))
	assert.True(t, IsConsonant("kh"))
	assert.True(t, IsConsonant("ṃ"))
	assert.False(t, IsConsonant("a"))
	assert.True(t, IsAspirated("ṭh"))
	assert.False(t, IsAspirated("h"))
	assert.True(t, Contains("-"))
	assert.True(t, Contains("A"))
	assert.False(t, Contains("x"))
}

func TestConsonantsLongestFirst(t *testing.T) {
	cs := Consonants()
	seenSingle := false
	for _, c := range cs {
		if RuneLen(c) == 1 {
			seenSingle = true
			continue
		}
		assert.False(t, seenSingle, "digraph %q after a single letter", c)
	}
	assert.Contains(t, Aspirated(), "kh")
	assert.NotContains(t, Aspirated(), "h")
}

func TestVowelGrades(t *testing.T) {
	assert.Equal(t, "ā", Long("a"))
	assert.Equal(t, "e", Long("e"))
	assert.Equal(t, "i", Short("ī"))
	assert.Equal(t, "e", Strong("ī"))
	assert.Equal(t, "o", Strong("u"))
	assert.Equal(t, []string{"u", "ū"}, Weak("o"))
	assert.Equal(t, []string{"k"}, Weak("k"))
}

func TestAssimilation(t *testing.T) {
	assert.Equal(t, "ṅ", AssimilatedNiggahita("k"))
	assert.Equal(t, "m", AssimilatedNiggahita("a"))
	assert.Equal(t, "", AssimilatedNiggahita("r"))
	assert.Equal(t, "cca", AssimilatedWithYa("t"))
	assert.Equal(t, "aya", AssimilatedWithYa("a"))
	assert.Equal(t, "kka", AssimilatedWithYa("k"))
	assert.Equal(t, "c", PalatalFor("k"))
	assert.Equal(t, "jh", PalatalFor("gh"))
}

func TestEndings(t *testing.T) {
	assert.True(t, EndsWithVowel("rāja"))
	assert.True(t, EndsWithConsonant("bhavant"))
	assert.False(t, EndsWithConsonant(""))
	assert.True(t, ContainsVowel("gam"))
	assert.False(t, ContainsVowel("kkh"))
}
