// Package alphabet holds the Pali phoneme inventory and the small
// phonological helpers shared by the validator, the sandhi engine and the
// verb derivation code.
package alphabet

import "strings"

var (
	shortVowels = []string{"a", "i", "u", "e", "o"}
	longVowels  = []string{"ā", "ī", "ū"}
	semiVowels  = []string{"y", "r", "l", "ḷ", "v"}
	nasals      = []string{"ṅ", "ñ", "ṇ", "n", "m", "ṃ"}
	sibilants   = []string{"h", "s"}
	mutes       = []string{
		"kh", "gh", "ch", "jh", "ṭh", "ḍh", "th", "dh", "ph", "bh",
		"k", "g", "c", "j", "ṭ", "ḍ", "t", "d", "p", "b",
	}
	dentals   = []string{"th", "dh", "t", "d", "n", "l", "s"}
	palatals  = []string{"c", "ch", "j", "jh", "ñ", "y"}
	gutturals = []string{"k", "kh", "g", "gh", "ṅ"}
)

var (
	vowelSet     = toSet(shortVowels, longVowels)
	longSet      = toSet(longVowels)
	semiSet      = toSet(semiVowels)
	consonantSet = toSet(semiVowels, nasals, sibilants, mutes, dentals, palatals)
	nasalSet     = toSet(nasals)
)

func toSet(lists ...[]string) map[string]bool {
	m := make(map[string]bool)
	for _, l := range lists {
		for _, s := range l {
			m[s] = true
		}
	}
	return m
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}

// Vowels returns the short vowels followed by the long ones.
func Vowels() []string { return append(clone(shortVowels), longVowels...) }

func ShortVowels() []string { return clone(shortVowels) }
func LongVowels() []string  { return clone(longVowels) }
func SemiVowels() []string  { return clone(semiVowels) }
func Nasals() []string      { return clone(nasals) }
func Mutes() []string       { return clone(mutes) }
func Dentals() []string     { return clone(dentals) }
func Palatals() []string    { return clone(palatals) }

// Consonants returns every consonant, aspirated digraphs first so the
// result can be used directly as a regexp alternation.
func Consonants() []string {
	out := make([]string, 0, len(consonantSet))
	for c := range consonantSet {
		out = append(out, c)
	}
	sortLongestFirst(out)
	return out
}

// Aspirated returns the aspirated digraphs (kh, gh, ...).
func Aspirated() []string {
	var out []string
	for _, c := range Consonants() {
		if IsAspirated(c) {
			out = append(out, c)
		}
	}
	return out
}

func sortLongestFirst(s []string) {
	// insertion sort keeps equal-length entries deterministic
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func less(a, b string) bool {
	la, lb := len([]rune(a)), len([]rune(b))
	if la != lb {
		return la > lb
	}
	return a < b
}

func IsVowel(s string) bool     { return vowelSet[s] }
func IsLongVowel(s string) bool { return longSet[s] }
func IsSemiVowel(s string) bool { return semiSet[s] }
func IsConsonant(s string) bool { return consonantSet[s] }
func IsNasal(s string) bool     { return nasalSet[s] }

// IsAspirated reports whether s is a two letter unit ending in h.
func IsAspirated(s string) bool {
	r := []rune(s)
	return len(r) == 2 && r[1] == 'h'
}

func IsGuttural(s string) bool {
	for _, g := range gutturals {
		if g == s {
			return true
		}
	}
	return false
}

// Contains reports whether the single letter s belongs to the alphabet.
// The hyphen and the apostrophe are accepted as well.
func Contains(s string) bool {
	s = strings.ToLower(s)
	return IsVowel(s) || IsConsonant(s) || s == "-" || s == "'"
}

// PalatalFor returns the palatal matching a guttural (k -> c, gh -> jh).
func PalatalFor(guttural string) string {
	for i, g := range gutturals {
		if g == guttural {
			return palatals[i]
		}
	}
	return guttural
}

// Long lengthens a short a, i or u.
func Long(s string) string {
	switch s {
	case "a":
		return "ā"
	case "i":
		return "ī"
	case "u":
		return "ū"
	}
	return s
}

// Short shortens a long vowel.
func Short(s string) string {
	switch s {
	case "ā":
		return "a"
	case "ī":
		return "i"
	case "ū":
		return "u"
	}
	return s
}

// Strong returns the guṇa grade of a vowel.
func Strong(s string) string {
	switch s {
	case "a":
		return "ā"
	case "i", "ī":
		return "e"
	case "u", "ū":
		return "o"
	}
	return s
}

// Weak returns every vowel whose strong grade is s.
func Weak(s string) []string {
	switch s {
	case "ā":
		return []string{"a"}
	case "e":
		return []string{"i", "ī"}
	case "o":
		return []string{"u", "ū"}
	}
	return []string{s}
}

// AssimilatedNiggahita returns the nasal that ṃ becomes in front of c.
func AssimilatedNiggahita(c string) string {
	switch c {
	case "j", "c", "h", "e":
		return "ñ"
	case "k", "kh":
		return "ṅ"
	case "d", "dh", "n":
		return "n"
	case "m", "p", "s", "bh", "b":
		return "m"
	case "ṭ", "ṭh":
		return "ṇ"
	case "l":
		return "l"
	}
	if IsVowel(c) {
		return "m"
	}
	return ""
}

// AssimilatedWithYa returns the cluster that c forms with a following ya.
func AssimilatedWithYa(c string) string {
	if IsVowel(c) {
		return c + "ya"
	}
	switch c {
	case "dh":
		return "jjha"
	case "d":
		return "jja"
	case "ṇ", "n":
		return "ñña"
	case "v":
		return "bba"
	case "t":
		return "cca"
	case "th":
		return "ccha"
	case "h":
		return "hya"
	}
	return c + c + "a"
}
