package pali

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// velthuisReplacer maps the ASCII transliteration of Pali to its
// diacritic letters. Digraphs of long vowels come first.
var velthuisReplacer = strings.NewReplacer(
	"aa", "ā",
	"ii", "ī",
	"uu", "ū",
	".m", "ṃ",
	"\"n", "ṅ",
	"~n", "ñ",
	".t", "ṭ",
	".d", "ḍ",
	".n", "ṇ",
	".l", "ḷ",
	"ṁ", "ṃ",
)

// Normalize prepares user input for lookup: surrounding blanks are dropped,
// the word is lower cased, Velthuis transliteration is decoded and the
// result is put in NFC so that precomposed letters match the tables.
func Normalize(s string) string {
	s = norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
	return velthuisReplacer.Replace(s)
}
