package pali

import (
	"strings"
)

// Stem strips endings from word until none is left to strip. With pos,
// or with the classes guessed from word, only the endings of those
// classes are used; a class without endings uses all of them.
func (e *Engine) Stem(word string, pos ...string) []string {
	word = Normalize(word)
	if word == "" {
		return nil
	}
	var out []string
	for _, class := range e.wordClasses(word, pos) {
		endings := longestFirst(e.grammar.Endings(class))
		if len(endings) == 0 {
			endings = e.endings
		}
		out = append(out, stemRecursive(word, endings))
	}
	if len(out) == 0 {
		out = append(out, e.NaiveStem(word))
	}
	return uniqueStrings(out)
}

// NaiveStem strips the endings of every word class.
func (e *Engine) NaiveStem(word string) string {
	return stemRecursive(Normalize(word), e.endings)
}

// stemRecursive never strips a word down to nothing.
func stemRecursive(word string, endings []string) string {
	for _, end := range endings {
		if len(end) < len(word) && strings.HasSuffix(word, end) {
			return stemRecursive(strings.TrimSuffix(word, end), endings)
		}
	}
	return word
}
