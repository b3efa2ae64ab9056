package sandhi

import "strings"

// SoundChanger applies the word internal sound rules (ava > o, aya > e).
type SoundChanger struct {
	rules *Rules
}

func NewSoundChanger(rules *Rules) *SoundChanger {
	return &SoundChanger{rules: rules}
}

// CommonChange applies every sound rule wherever it matches, in rule
// order. Only the first candidate of a rule is used.
func (sc *SoundChanger) CommonChange(word string) string {
	for _, r := range sc.rules.Sound {
		word = r.loose.ReplaceAllStringFunc(word, func(m string) string {
			if c := r.rewrite(m, 0, true); len(c) > 0 {
				return c[0]
			}
			return m
		})
	}
	return word
}

// Alternatives applies each sound rule at each single position and
// returns the distinct one-word results, word itself excluded.
func (sc *SoundChanger) Alternatives(word string) []string {
	seen := map[string]bool{word: true}
	var out []string
	for i := range word {
		for _, r := range sc.rules.Sound {
			if !r.IsApplicable(word[i:]) {
				continue
			}
			for _, c := range r.rewrite(word, i, true) {
				if strings.Contains(c, " ") || seen[c] {
					continue
				}
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
