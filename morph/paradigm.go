package morph

import "strings"

// Paradigm is an ordered collection of morphemes. Morphemes with equal
// feature sets are merged on insertion.
type Paradigm struct {
	morphemes []Morpheme
}

// NewParadigm builds a paradigm from the given morphemes, merging
// duplicates.
func NewParadigm(ms ...Morpheme) *Paradigm {
	p := &Paradigm{}
	for _, m := range ms {
		p.Add(m)
	}
	return p
}

// Add inserts m, or appends its allomorphs to the morpheme that already
// carries the same feature set.
func (p *Paradigm) Add(m Morpheme) {
	for i := range p.morphemes {
		if p.morphemes[i].Equal(m) {
			existing := p.morphemes[i].clone()
			for _, a := range m.Allomorphs {
				if !containsMorph(existing.Allomorphs, a) {
					existing.Allomorphs = append(existing.Allomorphs, a)
				}
			}
			p.morphemes[i] = existing
			return
		}
	}
	p.morphemes = append(p.morphemes, m.clone())
}

func containsMorph(ms []Morph, m Morph) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

// Merge adds every morpheme of other to p.
func (p *Paradigm) Merge(other *Paradigm) {
	if other == nil {
		return
	}
	for _, m := range other.morphemes {
		p.Add(m)
	}
}

// Morphemes returns a copy of the morpheme list.
func (p *Paradigm) Morphemes() []Morpheme {
	if p == nil {
		return nil
	}
	out := make([]Morpheme, len(p.morphemes))
	for i, m := range p.morphemes {
		out[i] = m.clone()
	}
	return out
}

func (p *Paradigm) Len() int {
	if p == nil {
		return 0
	}
	return len(p.morphemes)
}

func (p *Paradigm) IsEmpty() bool { return p.Len() == 0 }

// Filter returns the morphemes whose features satisfy fs, or nil when
// none do.
func (p *Paradigm) Filter(fs FeatureSet) *Paradigm {
	if p == nil {
		return nil
	}
	out := &Paradigm{}
	for _, m := range p.morphemes {
		if m.Features.Satisfies(fs) {
			out.morphemes = append(out.morphemes, m.clone())
		}
	}
	if len(out.morphemes) == 0 {
		return nil
	}
	return out
}

// Difference returns the morphemes of p that are not in other.
func (p *Paradigm) Difference(other *Paradigm) *Paradigm {
	out := &Paradigm{}
	if p == nil {
		return out
	}
	for _, m := range p.morphemes {
		found := false
		for _, o := range other.Morphemes() {
			if m.Equal(o) {
				found = true
				break
			}
		}
		if !found {
			out.morphemes = append(out.morphemes, m.clone())
		}
	}
	return out
}

// Endings lists every allomorph of every morpheme, in paradigm order.
func (p *Paradigm) Endings() []Morph {
	var out []Morph
	for _, m := range p.Morphemes() {
		out = append(out, m.Allomorphs...)
	}
	return out
}

// IsApplicable reports whether any morpheme matches the end of word.
func (p *Paradigm) IsApplicable(word string) bool {
	for _, m := range p.Morphemes() {
		if m.IsApplicable(word) {
			return true
		}
	}
	return false
}

// HasSubtype reports whether every morpheme carries subtype=s.
func (p *Paradigm) HasSubtype(s string) bool {
	if p.IsEmpty() {
		return false
	}
	for _, m := range p.morphemes {
		if !m.Features.Contains(Feature{Key: KeySubtype, Value: s}) {
			return false
		}
	}
	return true
}

// FeatureSetOf returns the features of the first morpheme having word as
// an allomorph.
func (p *Paradigm) FeatureSetOf(word string) (FeatureSet, bool) {
	for _, m := range p.Morphemes() {
		if m.Exactly(word) {
			return m.Features, true
		}
	}
	return FeatureSet{}, false
}

// WithFeature returns a copy of p where every morpheme has key set to value.
func (p *Paradigm) WithFeature(key, value string) *Paradigm {
	out := &Paradigm{}
	for _, m := range p.Morphemes() {
		m.Features = m.Features.Set(key, value)
		out.Add(m)
	}
	return out
}

func (p *Paradigm) String() string {
	var sb strings.Builder
	for _, m := range p.Morphemes() {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
