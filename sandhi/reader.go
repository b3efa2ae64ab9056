package sandhi

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/pali/data"
)

// ErrMalformedRule is wrapped by every rule loading error.
var ErrMalformedRule = errors.New("malformed sandhi rule")

// ParseError locates a bad line in a rule file.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformedRule }

// Files names the rule sources inside a file system.
type Files struct {
	Dictionary string
	Merge      string
	Split      string
	Sound      string
}

// DefaultFiles are the names used by the embedded data.
var DefaultFiles = Files{
	Dictionary: data.SandhiDictionary,
	Merge:      data.SandhiMerge,
	Split:      data.SandhiSplit,
	Sound:      data.SandhiSound,
}

// Rules is the loaded, read-only rule set.
type Rules struct {
	Dictionary *Dictionary
	Merge      []*MergeRule
	Split      []*Rule
	Sound      []*Rule
}

// line is one rule line waiting for compilation, which needs every
// constant of every file.
type line struct {
	file    string
	no      int
	pattern string
	repl    string
}

type source struct {
	constants []Constant
	methods   []line
	rules     []line
}

func readSource(r io.Reader, name string) (*source, error) {
	src := &source{}
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
		case strings.HasPrefix(text, "="):
			cname, values, ok := strings.Cut(text[1:], ":")
			if !ok || cname == "" || values == "" {
				return nil, &ParseError{File: name, Line: no, Msg: fmt.Sprintf("bad constant %q", text)}
			}
			src.constants = append(src.constants, Constant{Name: cname, Values: strings.Split(values, ",")})
		case strings.HasPrefix(text, "+"):
			fn, _, _ := strings.Cut(text[1:], "(")
			src.methods = append(src.methods, line{file: name, no: no, pattern: fn})
		default:
			pattern, repl, ok := strings.Cut(text, ":")
			if !ok {
				return nil, &ParseError{File: name, Line: no, Msg: fmt.Sprintf("missing ':' in %q", text)}
			}
			src.rules = append(src.rules, line{file: name, no: no, pattern: pattern, repl: repl})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return src, nil
}

// Parse builds a rule set from already opened sources. Any of the readers
// may be nil.
func Parse(dictionary, merge, split, sound io.Reader) (*Rules, error) {
	return parse(
		named{dictionary, "dictionary"},
		named{merge, "merge"},
		named{split, "split"},
		named{sound, "sound"},
	)
}

type named struct {
	r    io.Reader
	name string
}

func parse(in ...named) (*Rules, error) {
	srcs := make([]*source, len(in))
	for i, n := range in {
		if n.r == nil {
			srcs[i] = &source{}
			continue
		}
		s, err := readSource(n.r, n.name)
		if err != nil {
			return nil, err
		}
		srcs[i] = s
	}
	return compile(srcs[0], srcs[1], srcs[2], srcs[3])
}

func compile(dictionary, merge, split, sound *source) (*Rules, error) {
	all := []*source{dictionary, merge, split, sound}
	dict := NewDictionary()
	for _, s := range all {
		for _, c := range s.constants {
			dict.AddConstant(c)
		}
	}
	for _, s := range all {
		for _, m := range s.methods {
			if !dict.Declare(m.pattern) {
				return nil, &ParseError{File: m.file, Line: m.no, Msg: fmt.Sprintf("unknown method %q", m.pattern)}
			}
		}
	}
	rules := &Rules{Dictionary: dict}
	for _, l := range merge.rules {
		r, err := compileMergeRule(l.pattern, l.repl, dict)
		if err != nil {
			return nil, &ParseError{File: l.file, Line: l.no, Msg: err.Error()}
		}
		rules.Merge = append(rules.Merge, r)
	}
	for _, group := range []struct {
		src *source
		dst *[]*Rule
	}{{split, &rules.Split}, {sound, &rules.Sound}} {
		for _, l := range group.src.rules {
			r, err := compileRule(l.pattern, l.repl, dict)
			if err != nil {
				return nil, &ParseError{File: l.file, Line: l.no, Msg: err.Error()}
			}
			*group.dst = append(*group.dst, r)
		}
	}
	return rules, nil
}

// Load reads the four rule files from fsys concurrently and compiles them.
// An empty file name skips that file.
func Load(ctx context.Context, fsys fs.FS, files Files) (*Rules, error) {
	names := []string{files.Dictionary, files.Merge, files.Split, files.Sound}
	srcs := make([]*source, len(names))
	eg, _ := errgroup.WithContext(ctx)
	for i, name := range names {
		eg.Go(func() error {
			if name == "" {
				srcs[i] = &source{}
				return nil
			}
			f, err := fsys.Open(name)
			if err != nil {
				return fmt.Errorf("open %s: %w", name, err)
			}
			defer f.Close()
			srcs[i], err = readSource(f, name)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return compile(srcs[0], srcs[1], srcs[2], srcs[3])
}

var (
	defaultOnce  sync.Once
	defaultRules *Rules
	defaultErr   error
)

// Default returns the rules built from the embedded data files.
func Default() (*Rules, error) {
	defaultOnce.Do(func() {
		defaultRules, defaultErr = Load(context.Background(), data.FS, DefaultFiles)
	})
	return defaultRules, defaultErr
}
