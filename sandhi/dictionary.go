package sandhi

import (
	"sort"
	"strings"

	"github.com/cours-de-latin/pali/alphabet"
)

// Constant is a named alternation usable inside rule patterns, e.g.
// VOWEL = a,ā,i,...
type Constant struct {
	Name   string
	Values []string
}

// Expansion renders the constant as the inside of an alternation group.
func (c Constant) Expansion() string {
	return strings.Join(c.Values, "|")
}

// Method is a unary sound transform callable from a merge replacement as
// +name(argument).
type Method func(string) string

var builtinMethods = map[string]Method{
	"short":     lastLetter(alphabet.Short),
	"long":      lastLetter(alphabet.Long),
	"strong":    lastLetter(alphabet.Strong),
	"asp":       aspirate,
	"unasp":     unaspirate,
	"duplicate": duplicate,
}

// IsMethod reports whether name is a known method.
func IsMethod(name string) bool {
	_, ok := builtinMethods[name]
	return ok
}

func lastLetter(f func(string) string) Method {
	return func(s string) string {
		r := []rune(s)
		if len(r) == 0 {
			return s
		}
		return string(r[:len(r)-1]) + f(string(r[len(r)-1]))
	}
}

var aspirable = map[string]bool{
	"k": true, "c": true, "ṭ": true, "t": true, "p": true,
	"g": true, "j": true, "ḍ": true, "d": true, "b": true,
}

func aspirate(s string) string {
	if aspirable[s] {
		return s + "h"
	}
	return s
}

func unaspirate(s string) string {
	if s != "h" && strings.HasSuffix(s, "h") {
		return strings.TrimSuffix(s, "h")
	}
	return s
}

func duplicate(s string) string {
	return unaspirate(s) + s
}

// Dictionary holds the constants and the methods declared by rule files.
type Dictionary struct {
	constants []Constant
	methods   map[string]Method
}

func NewDictionary() *Dictionary {
	return &Dictionary{methods: make(map[string]Method)}
}

// AddConstant registers c, replacing a constant of the same name.
func (d *Dictionary) AddConstant(c Constant) {
	for i := range d.constants {
		if d.constants[i].Name == c.Name {
			d.constants[i] = c
			return
		}
	}
	d.constants = append(d.constants, c)
	// longest names first so that VOWELS is tried before VOWEL
	sort.SliceStable(d.constants, func(i, j int) bool {
		return len(d.constants[i].Name) > len(d.constants[j].Name)
	})
}

// Declare enables one of the built in methods. It reports false when name
// is unknown.
func (d *Dictionary) Declare(name string) bool {
	m, ok := builtinMethods[name]
	if ok {
		d.methods[name] = m
	}
	return ok
}

// Constant looks a constant up by name.
func (d *Dictionary) Constant(name string) (Constant, bool) {
	for _, c := range d.constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Constants returns the declared constants.
func (d *Dictionary) Constants() []Constant {
	return append([]Constant(nil), d.constants...)
}

// Method returns a declared method.
func (d *Dictionary) Method(name string) (Method, bool) {
	m, ok := d.methods[name]
	return m, ok
}

// Call applies a declared method. Unknown methods leave arg untouched.
func (d *Dictionary) Call(name, arg string) string {
	if m, ok := d.methods[name]; ok {
		return m(arg)
	}
	return arg
}

// Expand substitutes constant names that stand alone inside a group, that
// is names preceded by ( or | and followed by ) or |.
func (d *Dictionary) Expand(s string) string {
	for _, c := range d.constants {
		s = expandConstant(s, c)
	}
	return s
}

func expandConstant(s string, c Constant) string {
	var sb strings.Builder
	i := 0
	for {
		j := strings.Index(s[i:], c.Name)
		if j < 0 {
			sb.WriteString(s[i:])
			break
		}
		j += i
		end := j + len(c.Name)
		if j > 0 && isGroupEdge(s[j-1], '(') && end < len(s) && isGroupEdge(s[end], ')') {
			sb.WriteString(s[i:j])
			sb.WriteString(c.Expansion())
		} else {
			sb.WriteString(s[i:end])
		}
		i = end
	}
	return sb.String()
}

func isGroupEdge(b, paren byte) bool {
	return b == paren || b == '|'
}
