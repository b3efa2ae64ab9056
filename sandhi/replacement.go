package sandhi

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// node is one element of a compiled replacement.
type node interface {
	eval(ctx *evalContext) []string
}

type evalContext struct {
	groups []string
	dict   *Dictionary
	// resolve is false when rendering split results: functions are then
	// printed as written.
	resolve bool
}

type literal string

func (l literal) eval(*evalContext) []string { return []string{string(l)} }

type backref int

func (b backref) eval(ctx *evalContext) []string {
	if int(b) < len(ctx.groups) {
		return []string{ctx.groups[b]}
	}
	return []string{""}
}

type alternation [][]node

func (a alternation) eval(ctx *evalContext) []string {
	var out []string
	for _, seq := range a {
		out = append(out, evalSeq(seq, ctx)...)
	}
	return out
}

type call struct {
	name string
	arg  []node
}

func (c call) eval(ctx *evalContext) []string {
	args := evalSeq(c.arg, ctx)
	out := make([]string, len(args))
	for i, a := range args {
		if ctx.resolve {
			out[i] = ctx.dict.Call(c.name, a)
		} else {
			out[i] = "+" + c.name + "(" + a + ")"
		}
	}
	return out
}

// evalSeq concatenates the candidates of every node, producing their cross
// product in order.
func evalSeq(seq []node, ctx *evalContext) []string {
	out := []string{""}
	for _, n := range seq {
		parts := n.eval(ctx)
		next := make([]string, 0, len(out)*len(parts))
		for _, prefix := range out {
			for _, p := range parts {
				next = append(next, prefix+p)
			}
		}
		out = next
	}
	return out
}

// replacement is a parsed rule right hand side.
type replacement struct {
	src string
	seq []node
}

func (r replacement) expand(groups []string, dict *Dictionary, resolve bool) []string {
	return evalSeq(r.seq, &evalContext{groups: groups, dict: dict, resolve: resolve})
}

func (r replacement) String() string { return r.src }

// parseReplacement compiles the replacement syntax:
//
//	$n        back reference
//	(a|b)     one candidate per alternative
//	+f(x)     method call
//	$<space>  word end marker, dropped together with the space unless a
//	          back reference follows
func parseReplacement(src string) (replacement, error) {
	p := &replParser{src: src}
	seq, err := p.sequence(false)
	if err != nil {
		return replacement{}, err
	}
	if p.pos < len(p.src) {
		return replacement{}, fmt.Errorf("unbalanced %q at offset %d", p.src[p.pos], p.pos)
	}
	return replacement{src: src, seq: seq}, nil
}

type replParser struct {
	src string
	pos int
}

func (p *replParser) peek(off int) byte {
	if p.pos+off < len(p.src) {
		return p.src[p.pos+off]
	}
	return 0
}

// sequence parses until the end of input, or until an unnested ) or | when
// nested is set. The terminator is left in place.
func (p *replParser) sequence(nested bool) ([]node, error) {
	var (
		seq []node
		lit strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			seq = append(seq, literal(lit.String()))
			lit.Reset()
		}
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case nested && (c == ')' || c == '|'):
			flush()
			return seq, nil
		case !nested && c == ')':
			flush()
			return seq, nil
		case c == '$' && isDigit(p.peek(1)):
			flush()
			p.pos++
			n := 0
			for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
				n = n*10 + int(p.src[p.pos]-'0')
				p.pos++
			}
			seq = append(seq, backref(n))
		case c == '$' && p.peek(1) == ' ':
			p.pos += 2
			if p.peek(0) == '$' && isDigit(p.peek(1)) {
				lit.WriteByte(' ')
			}
		case c == '(':
			flush()
			alt, err := p.group()
			if err != nil {
				return nil, err
			}
			seq = append(seq, alt)
		case c == '+' && p.callAhead():
			flush()
			fn, err := p.call()
			if err != nil {
				return nil, err
			}
			seq = append(seq, fn)
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			lit.WriteRune(r)
			p.pos += size
		}
	}
	if nested {
		return nil, fmt.Errorf("missing ) in %q", p.src)
	}
	flush()
	return seq, nil
}

func (p *replParser) group() (alternation, error) {
	p.pos++ // (
	var alt alternation
	for {
		seq, err := p.sequence(true)
		if err != nil {
			return nil, err
		}
		alt = append(alt, seq)
		c := p.src[p.pos]
		p.pos++
		if c == ')' {
			return alt, nil
		}
	}
}

// callAhead reports whether a method name and an opening parenthesis
// follow the + at the current position.
func (p *replParser) callAhead() bool {
	i := p.pos + 1
	for i < len(p.src) && isNameByte(p.src[i]) {
		i++
	}
	return i > p.pos+1 && i < len(p.src) && p.src[i] == '('
}

func (p *replParser) call() (call, error) {
	start := p.pos + 1
	p.pos = start
	for isNameByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	p.pos++ // (
	arg, err := p.sequence(true)
	if err != nil {
		return call{}, err
	}
	if p.src[p.pos] != ')' {
		return call{}, fmt.Errorf("method %s takes one argument", name)
	}
	p.pos++
	return call{name: name, arg: arg}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}

// methods lists the method names called anywhere in the replacement.
func (r replacement) methods() []string {
	var names []string
	var walk func([]node)
	walk = func(seq []node) {
		for _, n := range seq {
			switch n := n.(type) {
			case call:
				names = append(names, n.name)
				walk(n.arg)
			case alternation:
				for _, s := range n {
					walk(s)
				}
			}
		}
	}
	walk(r.seq)
	return names
}
