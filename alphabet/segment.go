package alphabet

import "strings"

// aspirable lists the letters that combine with a following h into a
// single phonological unit.
var aspirable = map[rune]bool{
	'k': true, 'g': true, 'c': true, 'j': true, 'ṭ': true,
	'ḍ': true, 't': true, 'd': true, 'p': true, 'b': true,
}

// Segment splits word into phonological units. An aspirated digraph such
// as "kh" is one unit, every other letter is a unit of its own.
func Segment(word string) []string {
	runes := []rune(word)
	units := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if aspirable[runes[i]] && i+1 < len(runes) && runes[i+1] == 'h' {
			units = append(units, string(runes[i:i+2]))
			i++
			continue
		}
		units = append(units, string(runes[i]))
	}
	return units
}

// Pattern renders a list of units as a regexp alternation group.
func Pattern(units []string) string {
	return "(?:" + strings.Join(units, "|") + ")"
}

// RuneLen is the length of s in letters.
func RuneLen(s string) int {
	return len([]rune(s))
}

// EndsWithVowel reports whether the last unit of s is a vowel.
func EndsWithVowel(s string) bool {
	u := Segment(s)
	return len(u) > 0 && IsVowel(u[len(u)-1])
}

// EndsWithConsonant reports whether the last unit of s is a consonant.
func EndsWithConsonant(s string) bool {
	u := Segment(s)
	return len(u) > 0 && IsConsonant(u[len(u)-1])
}

// ContainsVowel reports whether any letter of s is a vowel.
func ContainsVowel(s string) bool {
	for _, r := range s {
		if IsVowel(string(r)) {
			return true
		}
	}
	return false
}
