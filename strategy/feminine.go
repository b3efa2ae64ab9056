package strategy

import "strings"

var feminineRules = [][2]string{
	{"a", "ā"},
	{"a", "ī"},
	{"a", "inī"},
	{"a", "ānī"},
	{"ā", "inī"},
	{"u", "unī"},
	{"ū", "unī"},
	{"ī", "inī"},
	{"i", "inī"},
	{"i", "ānī"},
}

// FeminineBases returns the feminine stems derivable from a masculine or
// neuter base, e.g. deva -> devā, devī, devinī, devānī.
func FeminineBases(base string) []string {
	var out []string
	for _, r := range feminineRules {
		if strings.HasSuffix(base, r[0]) {
			out = append(out, strings.TrimSuffix(base, r[0])+r[1])
		}
	}
	return out
}
