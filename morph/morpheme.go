package morph

import "strings"

// Morph is one surface realisation of a morpheme.
type Morph struct {
	Text       string
	Occurrence Occurrence
}

func (m Morph) String() string {
	if m.Occurrence.IsNull() {
		return m.Text
	}
	return m.Text + "#" + m.Occurrence.Tag()
}

// Morpheme pairs a grammatical meaning with its allomorphs.
type Morpheme struct {
	Features   FeatureSet
	Allomorphs []Morph
}

// NewMorpheme returns a morpheme with a private copy of the allomorphs.
func NewMorpheme(fs FeatureSet, allomorphs ...Morph) Morpheme {
	return Morpheme{Features: fs, Allomorphs: append([]Morph(nil), allomorphs...)}
}

func (m Morpheme) Get(key string) string { return m.Features.Get(key) }

// IsApplicable reports whether word ends with one of the allomorphs.
func (m Morpheme) IsApplicable(word string) bool {
	for _, a := range m.Allomorphs {
		if strings.HasSuffix(word, a.Text) {
			return true
		}
	}
	return false
}

// Match returns the longest allomorph that word ends with.
func (m Morpheme) Match(word string) (string, bool) {
	best, ok := "", false
	for _, a := range m.Allomorphs {
		if strings.HasSuffix(word, a.Text) && (!ok || len(a.Text) > len(best)) {
			best, ok = a.Text, true
		}
	}
	return best, ok
}

// Exactly reports whether word equals one of the allomorphs.
func (m Morpheme) Exactly(word string) bool {
	for _, a := range m.Allomorphs {
		if a.Text == word {
			return true
		}
	}
	return false
}

// Equal compares the grammatical meaning only.
func (m Morpheme) Equal(o Morpheme) bool {
	return m.Features.Equal(o.Features)
}

func (m Morpheme) clone() Morpheme {
	return NewMorpheme(m.Features, m.Allomorphs...)
}

func (m Morpheme) String() string {
	texts := make([]string, len(m.Allomorphs))
	for i, a := range m.Allomorphs {
		texts[i] = a.String()
	}
	return strings.Join(texts, "/") + m.Features.String()
}
