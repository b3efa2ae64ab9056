package sandhi

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Rule is a compiled pattern:replacement line used for splitting and for
// sound changes. The pattern is matched at a given position of a word.
type Rule struct {
	Pattern     string
	Replacement string

	anchored *regexp.Regexp
	loose    *regexp.Regexp
	repl     replacement
	dict     *Dictionary
}

func compileRule(pattern, repl string, dict *Dictionary) (*Rule, error) {
	expanded := dict.Expand(pattern)
	anchored, err := regexp.Compile(`^(?:` + expanded + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	r, err := compileReplacement(repl, dict)
	if err != nil {
		return nil, err
	}
	return &Rule{
		Pattern:     pattern,
		Replacement: repl,
		anchored:    anchored,
		loose:       regexp.MustCompile(expanded),
		repl:        r,
		dict:        dict,
	}, nil
}

func compileReplacement(repl string, dict *Dictionary) (replacement, error) {
	r, err := parseReplacement(dict.Expand(repl))
	if err != nil {
		return replacement{}, fmt.Errorf("replacement %q: %w", repl, err)
	}
	for _, name := range r.methods() {
		if _, ok := dict.Method(name); !ok {
			return replacement{}, fmt.Errorf("replacement %q: undeclared method %s", repl, name)
		}
	}
	return r, nil
}

func (r *Rule) String() string { return r.Pattern + ":" + r.Replacement }

// IsApplicable reports whether the pattern matches at the start of s.
func (r *Rule) IsApplicable(s string) bool {
	return r.anchored.MatchString(s)
}

// ApplyAt rewrites word at byte offset pos, where the pattern must match.
// Every candidate of the replacement yields one output. Method calls are
// left unresolved.
func (r *Rule) ApplyAt(word string, pos int) []string {
	return r.rewrite(word, pos, false)
}

func (r *Rule) rewrite(word string, pos int, resolve bool) []string {
	suffix := word[pos:]
	m := r.anchored.FindStringSubmatchIndex(suffix)
	if m == nil {
		return nil
	}
	groups := submatches(suffix, m)
	var out []string
	for _, c := range r.repl.expand(groups, r.dict, resolve) {
		out = append(out, word[:pos]+c+suffix[m[1]:])
	}
	return out
}

// MergeRule joins the end of one word and the start of the next. Its
// pattern holds exactly one space separating the two halves.
type MergeRule struct {
	Pattern     string
	Replacement string

	left  *regexp.Regexp
	right *regexp.Regexp
	joint *regexp.Regexp
	repl  replacement
}

// errPatternHalves is reported for merge patterns without exactly two
// space separated parts.
var errPatternHalves = errors.New("merge pattern needs exactly two space separated parts")

func compileMergeRule(pattern, repl string, dict *Dictionary) (*MergeRule, error) {
	expanded := dict.Expand(pattern)
	halves := strings.Split(expanded, " ")
	if len(halves) != 2 || halves[0] == "" || halves[1] == "" {
		return nil, fmt.Errorf("pattern %q: %w", pattern, errPatternHalves)
	}
	l := strings.TrimSuffix(halves[0], "$")
	rt := halves[1]
	left, err := regexp.Compile(`(?:` + l + `)$`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	right, err := regexp.Compile(`^(?:` + rt + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	joint, err := regexp.Compile(`(?:` + l + `) (?:` + rt + `)`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	r, err := compileReplacement(repl, dict)
	if err != nil {
		return nil, err
	}
	return &MergeRule{Pattern: pattern, Replacement: repl, left: left, right: right, joint: joint, repl: r}, nil
}

func (r *MergeRule) String() string { return r.Pattern + ":" + r.Replacement }

// IsApplicable reports whether w1 ends like the left half and w2 starts
// like the right half.
func (r *MergeRule) IsApplicable(w1, w2 string) bool {
	return r.left.MatchString(w1) && r.right.MatchString(w2)
}

// Apply merges w1 and w2. Methods are resolved through dict.
func (r *MergeRule) Apply(w1, w2 string, dict *Dictionary) []string {
	joined := w1 + " " + w2
	boundary := len(w1)
	for _, m := range r.joint.FindAllStringSubmatchIndex(joined, -1) {
		if m[0] > boundary || m[1] <= boundary {
			continue
		}
		groups := submatches(joined, m)
		var out []string
		for _, c := range r.repl.expand(groups, dict, true) {
			out = append(out, joined[:m[0]]+c+joined[m[1]:])
		}
		return out
	}
	return nil
}

func submatches(s string, m []int) []string {
	groups := make([]string, len(m)/2)
	for i := range groups {
		if m[2*i] >= 0 {
			groups[i] = s[m[2*i]:m[2*i+1]]
		}
	}
	return groups
}
