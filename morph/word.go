package morph

import (
	"fmt"
	"strings"
)

// ConstructedWord is a word form under construction or the result of a
// generation or analysis step.
type ConstructedWord struct {
	Word     string
	Stem     string
	Lemma    string
	Features FeatureSet
}

// Clone returns a copy that shares no state with cw.
func (cw ConstructedWord) Clone() ConstructedWord {
	cw.Features = NewFeatureSet(cw.Features.features...)
	return cw
}

// Equal compares all fields, feature order included.
func (cw ConstructedWord) Equal(o ConstructedWord) bool {
	return cw.Word == o.Word && cw.Stem == o.Stem && cw.Lemma == o.Lemma && cw.Features.Equal(o.Features)
}

func (cw ConstructedWord) String() string {
	return fmt.Sprintf("%s (%s) %s", cw.Word, cw.Lemma, cw.Features)
}

// UniqueWords drops later duplicates, keeping first-seen order.
func UniqueWords(ws []ConstructedWord) []ConstructedWord {
	out := make([]ConstructedWord, 0, len(ws))
	for _, w := range ws {
		dup := false
		for _, o := range out {
			if w.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, w)
		}
	}
	return out
}

// DerivingRule derives a stem from a lemma.
type DerivingRule interface {
	Apply(lemma string) string
}

// NullRule returns the lemma unchanged.
type NullRule struct{}

func (NullRule) Apply(lemma string) string { return lemma }

// RightDelete removes the last N letters.
type RightDelete int

func (n RightDelete) Apply(lemma string) string {
	r := []rune(lemma)
	if int(n) > len(r) || n < 0 {
		return lemma
	}
	return string(r[:len(r)-int(n)])
}

// RightDeleteString removes a suffix if lemma ends with it.
type RightDeleteString string

func (s RightDeleteString) Apply(lemma string) string {
	return strings.TrimSuffix(lemma, string(s))
}

// LeftDelete removes the first N letters.
type LeftDelete int

func (n LeftDelete) Apply(lemma string) string {
	r := []rune(lemma)
	if int(n) > len(r) || n < 0 {
		return lemma
	}
	return string(r[n:])
}

// LeftDeleteString removes a prefix if lemma starts with it.
type LeftDeleteString string

func (s LeftDeleteString) Apply(lemma string) string {
	return strings.TrimPrefix(lemma, string(s))
}

// Replacing ignores the lemma and yields a fixed stem.
type Replacing string

func (s Replacing) Apply(string) string { return string(s) }
