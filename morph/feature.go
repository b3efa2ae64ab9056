// Package morph is the in-memory model of Pali morphology: grammatical
// features, allomorphs, morphemes, paradigms and the words built from them.
//
// Values loaded from the grammar are shared between concurrent requests.
// FeatureSet is therefore immutable: every operation that would add or
// change a feature returns a new set.
package morph

import "strings"

// Common feature keys.
const (
	KeyParadigm   = "paradigm"
	KeyDeclension = "declension"
	KeyGender     = "gender"
	KeyCase       = "case"
	KeyNumber     = "number"
	KeySubtype    = "subtype"
	KeyComparison = "comparison"
	KeyFrequency  = "frequency"
	KeyTense      = "tense"
	KeyRestrict   = "restriction"
)

// Feature is a single key/value annotation such as case=nominative.
type Feature struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (f Feature) String() string {
	return f.Key + "=" + f.Value
}

// FeatureSet is an ordered list of features.
type FeatureSet struct {
	features []Feature
}

// NewFeatureSet builds a set from the given features, keeping their order.
func NewFeatureSet(fs ...Feature) FeatureSet {
	if len(fs) == 0 {
		return FeatureSet{}
	}
	return FeatureSet{features: append([]Feature(nil), fs...)}
}

// Pairs builds a set from alternating keys and values.
func Pairs(kv ...string) FeatureSet {
	fs := make([]Feature, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fs = append(fs, Feature{Key: kv[i], Value: kv[i+1]})
	}
	return FeatureSet{features: fs}
}

func (s FeatureSet) Len() int { return len(s.features) }

func (s FeatureSet) IsEmpty() bool { return len(s.features) == 0 }

// Features returns a copy of the underlying list.
func (s FeatureSet) Features() []Feature {
	return append([]Feature(nil), s.features...)
}

// Get returns the value of the first feature with the given key, or "".
func (s FeatureSet) Get(key string) string {
	for _, f := range s.features {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

func (s FeatureSet) Has(key string) bool {
	for _, f := range s.features {
		if f.Key == key {
			return true
		}
	}
	return false
}

func (s FeatureSet) Contains(f Feature) bool {
	for _, g := range s.features {
		if g == f {
			return true
		}
	}
	return false
}

// Satisfies reports whether every feature of other is present in s.
func (s FeatureSet) Satisfies(other FeatureSet) bool {
	for _, f := range other.features {
		if !s.Contains(f) {
			return false
		}
	}
	return true
}

// Equal is ordered list equality.
func (s FeatureSet) Equal(other FeatureSet) bool {
	if len(s.features) != len(other.features) {
		return false
	}
	for i := range s.features {
		if s.features[i] != other.features[i] {
			return false
		}
	}
	return true
}

// With returns a copy of s with fs appended.
func (s FeatureSet) With(fs ...Feature) FeatureSet {
	out := make([]Feature, 0, len(s.features)+len(fs))
	out = append(out, s.features...)
	out = append(out, fs...)
	return FeatureSet{features: out}
}

// Add returns a copy of s with f appended unless it is already present.
func (s FeatureSet) Add(f Feature) FeatureSet {
	if s.Contains(f) {
		return s
	}
	return s.With(f)
}

// Set returns a copy of s where every feature with the given key is
// replaced by key=value. The feature is appended when the key is absent.
func (s FeatureSet) Set(key, value string) FeatureSet {
	out := make([]Feature, 0, len(s.features)+1)
	found := false
	for _, f := range s.features {
		if f.Key == key {
			if !found {
				out = append(out, Feature{Key: key, Value: value})
				found = true
			}
			continue
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, Feature{Key: key, Value: value})
	}
	return FeatureSet{features: out}
}

// Without returns a copy of s without any feature carrying the given key.
func (s FeatureSet) Without(key string) FeatureSet {
	out := make([]Feature, 0, len(s.features))
	for _, f := range s.features {
		if f.Key != key {
			out = append(out, f)
		}
	}
	return FeatureSet{features: out}
}

// Union returns s followed by the features of other that s lacks.
func (s FeatureSet) Union(other FeatureSet) FeatureSet {
	out := s
	for _, f := range other.features {
		out = out.Add(f)
	}
	return out
}

// Map renders the set as a key/value map. Later duplicates are dropped.
func (s FeatureSet) Map() map[string]string {
	m := make(map[string]string, len(s.features))
	for _, f := range s.features {
		if _, ok := m[f.Key]; !ok {
			m[f.Key] = f.Value
		}
	}
	return m
}

func (s FeatureSet) String() string {
	parts := make([]string, len(s.features))
	for i, f := range s.features {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
