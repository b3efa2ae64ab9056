package sandhi

import (
	"sort"
	"strings"
)

// Merger joins adjacent words according to the merge rules.
type Merger struct {
	rules *Rules
}

func NewMerger(rules *Rules) *Merger {
	return &Merger{rules: rules}
}

// MergeTwo returns every merge of w1 and w2, sorted and unique. When no
// rule applies the result is the two words joined by a space.
func (m *Merger) MergeTwo(w1, w2 string) []string {
	var out []string
	for _, r := range m.rules.Merge {
		if r.IsApplicable(w1, w2) {
			out = append(out, r.Apply(w1, w2, m.rules.Dictionary)...)
		}
	}
	if len(out) == 0 {
		return []string{w1 + " " + w2}
	}
	return sortedUnique(out)
}

// Merge folds MergeTwo over words from left to right, keeping every
// intermediate candidate.
func (m *Merger) Merge(words ...string) []string {
	if len(words) == 0 {
		return nil
	}
	acc := []string{words[0]}
	for _, w := range words[1:] {
		var next []string
		for _, a := range acc {
			next = append(next, m.MergeTwo(a, w)...)
		}
		acc = sortedUnique(next)
	}
	return acc
}

// Joined returns the merges of w1 and w2 that form a single word. It is
// empty when no rule applies.
func (m *Merger) Joined(w1, w2 string) []string {
	var out []string
	for _, c := range m.MergeTwo(w1, w2) {
		if !strings.Contains(c, " ") {
			out = append(out, c)
		}
	}
	return out
}

func sortedUnique(s []string) []string {
	sort.Strings(s)
	out := make([]string, 0, len(s))
	for _, v := range s {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}
