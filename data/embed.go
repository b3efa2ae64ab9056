// Package data embeds the default Pali grammar and sandhi rule files so the
// engine works without any files on disk.
package data

import "embed"

// FS holds grammar/ and sandhi/.
//
//go:embed grammar/*.xml grammar/*.txt sandhi/*.txt
var FS embed.FS

// Default file names inside FS.
const (
	Paradigms         = "grammar/paradigms.xml"
	IrregularNouns    = "grammar/irregular_nouns.txt"
	IrregularNumerals = "grammar/irregular_numerals.txt"
	SandhiDictionary  = "sandhi/dictionary.txt"
	SandhiMerge       = "sandhi/merge.txt"
	SandhiSplit       = "sandhi/split.txt"
	SandhiSound       = "sandhi/sound.txt"
)
