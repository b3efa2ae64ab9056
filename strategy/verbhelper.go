package strategy

import (
	"context"
	"regexp"
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
	"github.com/cours-de-latin/pali/sandhi"
)

// Classes is the number of present stem classes VerbHelper knows.
const Classes = 7

var (
	vowelGroup = "(" + strings.Join(alphabet.Vowels(), "|") + ")"
	consGroup  = "(" + strings.Join(alphabet.Consonants(), "|") + ")"

	nasalInfix   = regexp.MustCompile("(" + strings.Join(alphabet.Nasals(), "|") + ")" + consGroup + "a")
	nasalStem    = regexp.MustCompile("(" + strings.Join(alphabet.Nasals(), "|") + ")" + consGroup + "a$")
	uNuStem      = regexp.MustCompile(`^(.{2,})uṇ[uoā]$`)
	nuStem       = regexp.MustCompile(`^(.*)ṇ[uoā]$`)
	naStem       = regexp.MustCompile("^(.*" + vowelGroup + ")nā$")
	oStem        = regexp.MustCompile(`^(.*)o$`)
	avStem       = regexp.MustCompile(`^(.*)av$`)
	ayaStem      = regexp.MustCompile(`^(.*)aya$`)
	eStem        = regexp.MustCompile(`^(.*)e$`)
	consonantEnd = regexp.MustCompile(consGroup + "$")
)

// VerbHelper converts between verbal roots and present stems of the seven
// classes.
type VerbHelper struct {
	splitter *sandhi.Splitter
}

// NewVerbHelper returns a helper. splitter may be nil, which disables the
// third class in RootFromStem.
func NewVerbHelper(splitter *sandhi.Splitter) *VerbHelper {
	return &VerbHelper{splitter: splitter}
}

// StemFromRoot returns the present stems of root in class (1 to 7), or in
// every class when class is 0.
func (h *VerbHelper) StemFromRoot(root string, class int) []string {
	switch class {
	case 1:
		return firstStem(root)
	case 2:
		return secondStem(root)
	case 3:
		return thirdStem(root)
	case 4:
		return fourthStem(root)
	case 5:
		return fifthStem(root)
	case 6:
		return []string{root + "o", root + "av"}
	case 7:
		return seventhStem(root)
	}
	var out []string
	for c := 1; c <= Classes; c++ {
		out = append(out, h.StemFromRoot(root, c)...)
	}
	return unique(out)
}

// RootFromStem returns the plausible roots of stem assuming class (1 to 7),
// or any class when class is 0.
func (h *VerbHelper) RootFromStem(ctx context.Context, stem string, class int) []string {
	var cands []string
	switch class {
	case 1:
		cands = firstRoot(stem)
	case 2:
		cands = secondRoot(stem)
	case 3:
		cands = h.thirdRoot(ctx, stem)
	case 4:
		cands = fourthRoot(stem)
	case 5:
		cands = submatch(naStem, stem)
	case 6:
		cands = sixthRoot(stem)
	case 7:
		cands = seventhRoot(stem)
	default:
		for c := 1; c <= Classes; c++ {
			cands = append(cands, h.RootFromStem(ctx, stem, c)...)
		}
	}
	var out []string
	for _, c := range unique(cands) {
		if IsPlausibleRoot(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsPlausibleRoot reports whether root is short and has a vowel.
func IsPlausibleRoot(root string) bool {
	return len(alphabet.Segment(root)) < 4 && alphabet.ContainsVowel(root)
}

func strengthen(root string) string {
	var sb strings.Builder
	for _, u := range alphabet.Segment(root) {
		if alphabet.IsVowel(u) {
			sb.WriteString(alphabet.Strong(u))
		} else {
			sb.WriteString(u)
		}
	}
	return sb.String()
}

func reduplicate(root string) []string {
	parts := alphabet.Segment(root)
	if len(parts) < 2 {
		return []string{root}
	}
	first := parts[0]
	var one string
	vowelOnly := false
	switch {
	case alphabet.IsVowel(first):
		one, vowelOnly = alphabet.Strong(first), true
	case alphabet.IsGuttural(first):
		one = alphabet.PalatalFor(first)
		if alphabet.IsAspirated(one) {
			one = firstLetter(one)
		}
	case first == "h":
		one = "j"
	case first == "v":
		one, vowelOnly = "u", true
	case alphabet.IsAspirated(first):
		one = firstLetter(first)
	default:
		one = first
	}
	strong := strengthen(root)
	if vowelOnly {
		return []string{one + root, one + strong}
	}
	var out []string
	switch parts[1] {
	case "a", "ā":
		out = append(out, one+"a"+root)
		if parts[1] == "a" {
			out = append(out, one+"a"+strong)
		}
	case "i", "ī":
		out = append(out, one+"i"+root, one+"i"+strong)
		if parts[1] == "i" {
			out = append(out, one+"e"+root, one+"e"+strong)
		}
	case "u", "ū":
		out = append(out, one+"u"+root, one+"a"+root, one+"u"+strong, one+"a"+strong)
		if parts[1] == "u" {
			out = append(out, one+"o"+root, one+"o"+strong)
		}
	}
	return out
}

func firstStem(root string) []string {
	var out []string
	if alphabet.EndsWithVowel(root) {
		out = append(out, root)
		head := trimLast(root)
		switch {
		case strings.HasSuffix(root, "i"), strings.HasSuffix(root, "ī"):
			out = append(out, head+"e", head+"aya")
		case strings.HasSuffix(root, "u"), strings.HasSuffix(root, "ū"):
			out = append(out, head+"o", head+"ava")
		}
	} else {
		out = append(out, root+"a", strengthen(root)+"a")
	}
	for _, s := range reduplicate(root) {
		if strings.HasSuffix(s, "a") || strings.HasSuffix(s, "ā") {
			out = append(out, s)
		} else {
			out = append(out, s+"a")
		}
	}
	return out
}

func secondStem(root string) []string {
	parts := alphabet.Segment(root)
	if len(parts) == 0 {
		return nil
	}
	last := parts[len(parts)-1]
	return []string{strings.Join(parts[:len(parts)-1], "") + alphabet.AssimilatedNiggahita(last) + last + "a"}
}

func thirdStem(root string) []string {
	parts := alphabet.Segment(root)
	var pre, post string
	switch len(parts) {
	case 3:
		pre, post = parts[0]+parts[1], parts[2]
	case 2:
		pre, post = parts[0], parts[1]
	default:
		return nil
	}
	return []string{pre + alphabet.AssimilatedWithYa(post)}
}

func fourthStem(root string) []string {
	if consonantEnd.MatchString(root) {
		return []string{root + "uṇu", root + "uṇo", root + "uṇā"}
	}
	return []string{root + "ṇu", root + "ṇo", root + "ṇā"}
}

func fifthStem(root string) []string {
	if alphabet.EndsWithVowel(root) {
		return []string{root + "nā"}
	}
	return nil
}

func seventhStem(root string) []string {
	strong := strengthen(root)
	return []string{root + "aya", root + "e", strong + "aya", strong + "e"}
}

// weaken undoes strengthening of the first vowel of root. Only the
// consonants up to the second vowel are kept.
func weaken(root string) []string {
	parts := alphabet.Segment(root)
	var head, tail strings.Builder
	var vowels []string
	seen := 0
	for _, u := range parts {
		if alphabet.IsVowel(u) {
			vowels = append(vowels, alphabet.Weak(u)...)
			seen++
			continue
		}
		switch seen {
		case 0:
			head.WriteString(u)
		case 1:
			tail.WriteString(u)
		}
	}
	out := make([]string, 0, len(vowels))
	for _, v := range vowels {
		out = append(out, head.String()+v+tail.String())
	}
	return out
}

func unduplicate(stem string) string {
	parts := alphabet.Segment(stem)
	if len(parts) < 2 {
		return stem
	}
	for i := 1; i < len(parts); i++ {
		if alphabet.IsConsonant(parts[i]) {
			return strings.Join(parts[i:], "")
		}
	}
	return stem
}

func firstRoot(stem string) []string {
	var out []string
	if IsPlausibleRoot(stem) {
		out = append(out, stem)
	}
	undup := unduplicate(stem)
	if undup == "" {
		return out
	}
	sroot := trimLast(undup)
	out = append(out, sroot)
	out = append(out, weaken(sroot)...)
	switch {
	case strings.HasSuffix(stem, "e"):
		head := trimLast(stem)
		out = append(out, head+"i", head+"ī")
	case strings.HasSuffix(stem, "o"):
		head := trimLast(stem)
		out = append(out, head+"u", head+"ū")
	case strings.HasSuffix(stem, "aya"):
		head := strings.TrimSuffix(stem, "aya")
		out = append(out, head+"i", head+"ī")
	case strings.HasSuffix(stem, "ava"):
		head := strings.TrimSuffix(stem, "ava")
		out = append(out, head+"u", head+"ū")
	case strings.HasSuffix(stem, "a"):
		root := trimLast(stem)
		out = append(out, root)
		out = append(out, weaken(root)...)
	}
	return out
}

func secondRoot(stem string) []string {
	if !nasalStem.MatchString(stem) {
		return nil
	}
	return []string{nasalInfix.ReplaceAllString(stem, "${2}")}
}

func (h *VerbHelper) thirdRoot(ctx context.Context, stem string) []string {
	if h.splitter == nil || len(alphabet.Segment(stem)) < 4 {
		return nil
	}
	var out []string
	for _, r := range h.splitter.Split(ctx, stem, 1) {
		if len(r.Segments) >= 2 && r.Segments[1] == "ya" {
			out = append(out, r.Segments[0])
		}
	}
	return out
}

func fourthRoot(stem string) []string {
	if m := submatch(uNuStem, stem); m != nil {
		return m
	}
	return submatch(nuStem, stem)
}

func sixthRoot(stem string) []string {
	if m := submatch(oStem, stem); m != nil {
		return m
	}
	return submatch(avStem, stem)
}

func seventhRoot(stem string) []string {
	strong := submatch(ayaStem, stem)
	if strong == nil {
		strong = submatch(eStem, stem)
	}
	if strong == nil {
		return nil
	}
	return append(strong, weaken(strong[0])...)
}

// submatch returns the first group of re in s as a one element slice.
func submatch(re *regexp.Regexp, s string) []string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return []string{m[1]}
}

func firstLetter(s string) string {
	for _, r := range s {
		return string(r)
	}
	return s
}

func trimLast(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func unique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
