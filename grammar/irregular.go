package grammar

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cours-de-latin/pali/morph"
)

// Irregular is a table of words that do not follow a regular declension.
// Every block of the source file is one paradigm.
type Irregular struct {
	paradigms []*morph.Paradigm
	// lemmaKeys are tried in order to find the citation form of a block.
	lemmaKeys []morph.FeatureSet
}

var (
	nounLemmaKeys = []morph.FeatureSet{
		morph.Pairs(morph.KeyCase, "nominative", morph.KeyNumber, "singular"),
	}
	numeralLemmaKeys = []morph.FeatureSet{
		morph.Pairs(morph.KeyNumber, "singular", morph.KeyCase, "vocative", morph.KeyGender, "masculine"),
		morph.Pairs(morph.KeyNumber, "plural", morph.KeyCase, "vocative", morph.KeyGender, "masculine"),
		morph.Pairs(morph.KeyNumber, "singular", morph.KeyCase, "nominative", morph.KeyGender, "masculine"),
		morph.Pairs(morph.KeyNumber, "plural", morph.KeyCase, "nominative", morph.KeyGender, "masculine"),
		morph.Pairs(morph.KeyNumber, "singular", morph.KeyCase, "vocative"),
		morph.Pairs(morph.KeyNumber, "plural", morph.KeyCase, "vocative"),
	}
)

// NewIrregularNouns wraps paradigms as an irregular noun table.
func NewIrregularNouns(ps ...*morph.Paradigm) *Irregular {
	return &Irregular{paradigms: ps, lemmaKeys: nounLemmaKeys}
}

// NewIrregularNumerals wraps paradigms as an irregular numeral table.
func NewIrregularNumerals(ps ...*morph.Paradigm) *Irregular {
	return &Irregular{paradigms: ps, lemmaKeys: numeralLemmaKeys}
}

func (ir *Irregular) find(word string) *morph.Paradigm {
	if ir == nil {
		return nil
	}
	for _, p := range ir.paradigms {
		if _, ok := p.FeatureSetOf(word); ok {
			return p
		}
	}
	return nil
}

// IsIrregular reports whether word is a form of any table entry.
func (ir *Irregular) IsIrregular(word string) bool {
	return ir.find(word) != nil
}

// Forms returns every form of the entry word belongs to, or nil.
func (ir *Irregular) Forms(word string) *morph.Paradigm {
	p := ir.find(word)
	if p == nil {
		return nil
	}
	return p.Filter(morph.FeatureSet{})
}

// Lemma returns the citation forms of the entry word belongs to.
func (ir *Irregular) Lemma(word string) *morph.Paradigm {
	p := ir.find(word)
	if p == nil {
		return nil
	}
	for _, key := range ir.lemmaKeys {
		if l := p.Filter(key); l != nil {
			return l
		}
	}
	return nil
}

// Len is the number of entries.
func (ir *Irregular) Len() int {
	if ir == nil {
		return 0
	}
	return len(ir.paradigms)
}

var irregularLine = regexp.MustCompile(`^([^{}\s]+)\{([^{}]*)\}$`)

// ReadIrregular parses blocks of `form{key=value,...}` lines separated by
// a lone "=". Lines starting with # are comments.
func ReadIrregular(r io.Reader, name string) ([]*morph.Paradigm, error) {
	var (
		out     []*morph.Paradigm
		current = morph.NewParadigm()
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "=" {
			if !current.IsEmpty() {
				out = append(out, current)
			}
			current = morph.NewParadigm()
			continue
		}
		m, err := parseIrregularLine(line)
		if err != nil {
			return nil, &ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		current.Add(m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if !current.IsEmpty() {
		out = append(out, current)
	}
	return out, nil
}

func parseIrregularLine(line string) (morph.Morpheme, error) {
	m := irregularLine.FindStringSubmatch(line)
	if m == nil {
		return morph.Morpheme{}, fmt.Errorf("expected form{key=value,...}, got %q", line)
	}
	var fs []morph.Feature
	if body := strings.TrimSpace(m[2]); body != "" {
		for _, pair := range strings.Split(body, ",") {
			k, v, ok := strings.Cut(pair, "=")
			k, v = strings.TrimSpace(k), strings.TrimSpace(v)
			if !ok || k == "" || v == "" {
				return morph.Morpheme{}, fmt.Errorf("bad feature %q in %q", pair, line)
			}
			fs = append(fs, morph.Feature{Key: k, Value: v})
		}
	}
	return morph.NewMorpheme(morph.NewFeatureSet(fs...), morph.Morph{Text: m[1]}), nil
}
