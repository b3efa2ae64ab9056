package morph

import (
	"regexp"
	"strconv"

	"github.com/cours-de-latin/pali/alphabet"
)

// OccurrenceKind tags the behaviour an allomorph attaches to a stem.
type OccurrenceKind int

const (
	NullOccurrence OccurrenceKind = iota
	DistributionOccurrence
	RestrictingOccurrence
	ChangingOccurrence
)

func (k OccurrenceKind) String() string {
	switch k {
	case DistributionOccurrence:
		return "distribution"
	case RestrictingOccurrence:
		return "restricting"
	case ChangingOccurrence:
		return "changing"
	}
	return "null"
}

// Occurrence is the instruction carried by an allomorph, e.g. "m1"
// (drop one letter from the stem) or "rare" (frequency annotation).
type Occurrence struct {
	Kind  OccurrenceKind
	Value string
}

// ParseOccurrence decodes a markup tag: the first letter selects the kind
// (D, R or C), the rest is the value. Anything else is a null occurrence.
func ParseOccurrence(tag string) Occurrence {
	if tag == "" {
		return Occurrence{}
	}
	rest := tag[1:]
	switch tag[0] {
	case 'D':
		return Occurrence{Kind: DistributionOccurrence, Value: rest}
	case 'R':
		return Occurrence{Kind: RestrictingOccurrence, Value: rest}
	case 'C':
		return Occurrence{Kind: ChangingOccurrence, Value: rest}
	}
	return Occurrence{Kind: NullOccurrence, Value: rest}
}

func (o Occurrence) IsNull() bool { return o.Kind == NullOccurrence }

// Tag is the inverse of ParseOccurrence.
func (o Occurrence) Tag() string {
	switch o.Kind {
	case DistributionOccurrence:
		return "D" + o.Value
	case RestrictingOccurrence:
		return "R" + o.Value
	case ChangingOccurrence:
		return "C" + o.Value
	}
	return ""
}

var (
	deleteInstr   = regexp.MustCompile(`^m(\d+)$`)
	lengthenInstr = regexp.MustCompile(`^l(\d+)[aiu]$`)
)

// ApplyString transforms a stem. Only changing occurrences alter it.
func (o Occurrence) ApplyString(stem string) string {
	if o.Kind != ChangingOccurrence {
		return stem
	}
	runes := []rune(stem)
	if m := deleteInstr.FindStringSubmatch(o.Value); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > len(runes) {
			return ""
		}
		return string(runes[:len(runes)-n])
	}
	if m := lengthenInstr.FindStringSubmatch(o.Value); m != nil {
		n, _ := strconv.Atoi(m[1])
		pos := len(runes) - n
		if pos < 0 || pos >= len(runes) {
			return stem
		}
		switch runes[pos] {
		case 'a', 'i', 'u':
			long := []rune(alphabet.Long(string(runes[pos])))
			runes[pos] = long[0]
			return string(runes)
		}
	}
	return stem
}

// Apply transforms a word under construction and returns the result.
// The input is not modified.
func (o Occurrence) Apply(cw ConstructedWord) ConstructedWord {
	switch o.Kind {
	case ChangingOccurrence:
		cw.Stem = o.ApplyString(cw.Stem)
	case DistributionOccurrence:
		cw.Features = cw.Features.Add(Feature{Key: KeyFrequency, Value: o.Value})
	case RestrictingOccurrence:
		// no defined semantics yet
	}
	return cw
}
