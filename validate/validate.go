// Package validate implements the phonotactic checks that decide whether a
// generated string can be a Pali word.
package validate

import (
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
)

// Validator checks words against Pali phonotactics. The zero value is
// ready to use and safe for concurrent use.
type Validator struct{}

// IsWord reports whether every letter of word belongs to the alphabet.
func (Validator) IsWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !alphabet.Contains(string(r)) {
			return false
		}
	}
	return true
}

// IsValidWord applies, in order, the initial syllable check, the
// three-consonant cluster check, the post-aspirate check and the law of
// mora.
func (v Validator) IsValidWord(word string) bool {
	if !v.IsWord(word) {
		return false
	}
	units := alphabet.Segment(strings.ToLower(word))
	if len(units) < 2 {
		return len(units) == 1 && alphabet.IsVowel(units[0])
	}
	return validStart(units) &&
		noTripleConsonant(units) &&
		noConsonantAfterAspirate(units) &&
		moraLaw(units)
}

// IsProbableWord is IsValidWord plus the requirement that the word is not
// made of consonants only.
func (v Validator) IsProbableWord(word string) bool {
	return v.IsValidWord(word) && alphabet.ContainsVowel(word)
}

// IsValidNounLemma rejects valid words that cannot be a noun citation form.
func (v Validator) IsValidNounLemma(word string) bool {
	return v.IsValidWord(word) && !strings.HasSuffix(word, "e")
}

func validStart(u []string) bool {
	first, second := u[0], u[1]
	switch {
	case alphabet.IsVowel(first) && alphabet.IsConsonant(second):
		return true
	case alphabet.IsConsonant(first) && alphabet.IsVowel(second):
		return true
	}
	return false
}

func noTripleConsonant(u []string) bool {
	run := 0
	for _, s := range u {
		if alphabet.IsConsonant(s) {
			run++
			if run == 3 {
				return false
			}
			continue
		}
		run = 0
	}
	return true
}

func noConsonantAfterAspirate(u []string) bool {
	for i := 1; i < len(u); i++ {
		if alphabet.IsAspirated(u[i-1]) && alphabet.IsConsonant(u[i]) {
			return false
		}
	}
	return true
}

// moraLaw: a long vowel may only be followed by a consonant that opens a
// new syllable, i.e. a consonant followed by a vowel or a semivowel.
func moraLaw(u []string) bool {
	for i := 0; i+1 < len(u); i++ {
		if !alphabet.IsLongVowel(u[i]) || !alphabet.IsConsonant(u[i+1]) {
			continue
		}
		if i+2 >= len(u) {
			return false
		}
		next := u[i+2]
		if !alphabet.IsVowel(next) && !alphabet.IsSemiVowel(next) {
			return false
		}
	}
	return true
}
