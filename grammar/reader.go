package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cours-de-latin/pali/morph"
)

// ErrMalformed is wrapped by every parse error of the grammar loaders.
var ErrMalformed = errors.New("malformed grammar data")

// ParseError locates a syntax error in a grammar source.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Record is one ending of the markup together with the element path that
// encloses it, e.g. `o;paradigm type="noun";declension type="a";...`.
type Record struct {
	Ending     string
	Occurrence string
	Path       []string
}

// String renders the record in its flat form:
// ending[#occurrence];segment;segment...
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.Ending)
	if r.Occurrence != "" {
		sb.WriteByte('#')
		sb.WriteString(r.Occurrence)
	}
	for _, s := range r.Path {
		sb.WriteByte(';')
		sb.WriteString(s)
	}
	return sb.String()
}

// ParseRecord is the inverse of Record.String.
func ParseRecord(s string) (Record, error) {
	parts := strings.Split(s, ";")
	head := parts[0]
	if head == "" {
		return Record{}, fmt.Errorf("%w: empty ending in record %q", ErrMalformed, s)
	}
	var r Record
	if i := strings.Index(head, "#"); i >= 0 {
		r.Ending, r.Occurrence = head[:i], head[i+1:]
	} else {
		r.Ending = head
	}
	r.Path = append(r.Path, parts[1:]...)
	return r, nil
}

var segmentRe = regexp.MustCompile(`^([-\w]+) type="([^"]*)"$`)

// Morpheme converts the record into a morpheme: `k type="v"` segments
// become features k=v, bare segments become subtype features.
func (r Record) Morpheme() morph.Morpheme {
	fs := make([]morph.Feature, 0, len(r.Path))
	for _, seg := range r.Path {
		if m := segmentRe.FindStringSubmatch(seg); m != nil {
			fs = append(fs, morph.Feature{Key: m[1], Value: m[2]})
			continue
		}
		fs = append(fs, morph.Feature{Key: morph.KeySubtype, Value: seg})
	}
	return morph.NewMorpheme(morph.NewFeatureSet(fs...), morph.Morph{
		Text:       r.Ending,
		Occurrence: morph.ParseOccurrence(r.Occurrence),
	})
}

// BuildParadigm assembles records into a paradigm.
func BuildParadigm(records []Record) *morph.Paradigm {
	p := morph.NewParadigm()
	for _, r := range records {
		p.Add(r.Morpheme())
	}
	return p
}

var tokenRe = regexp.MustCompile(`<(/?)([-\w]+)((?:\s+[-\w]+="[^"]*")*)\s*>|([^<]+)`)

var attrRe = regexp.MustCompile(`([-\w]+)="([^"]*)"`)

const rootElement = "paradigms"

// stackReader walks the nested paradigm markup. Opening elements push a
// path segment, closing elements pop it and ending elements emit records.
type stackReader struct {
	file    string
	line    int
	stack   []string
	names   []string
	records []Record

	inEnding bool
	occ      string
	text     strings.Builder
}

// ReadMarkup parses paradigm markup from r. name is used in errors only.
func ReadMarkup(r io.Reader, name string) ([]Record, error) {
	sr := &stackReader{file: name}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		sr.line++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "<?") || strings.HasPrefix(line, "<!") {
			continue
		}
		if err := sr.readLine(line); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if sr.inEnding {
		return nil, sr.errorf("unterminated ending")
	}
	if len(sr.names) > 0 {
		return nil, sr.errorf("unclosed element <%s>", sr.names[len(sr.names)-1])
	}
	return sr.records, nil
}

func (sr *stackReader) errorf(format string, args ...any) error {
	return &ParseError{File: sr.file, Line: sr.line, Msg: fmt.Sprintf(format, args...)}
}

func (sr *stackReader) readLine(line string) error {
	for _, m := range tokenRe.FindAllStringSubmatch(line, -1) {
		if text := m[4]; text != "" {
			if sr.inEnding {
				sr.text.WriteString(text)
			} else if strings.TrimSpace(text) != "" {
				return sr.errorf("unexpected text %q", strings.TrimSpace(text))
			}
			continue
		}
		closing, name, attrs := m[1] == "/", m[2], m[3]
		var err error
		switch {
		case name == rootElement:
		case name == "ending" && closing:
			err = sr.closeEnding()
		case name == "ending":
			err = sr.openEnding(attrs)
		case closing:
			err = sr.pop(name)
		default:
			err = sr.push(name, attrs)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (sr *stackReader) push(name, attrs string) error {
	if sr.inEnding {
		return sr.errorf("element <%s> inside ending", name)
	}
	seg := name
	if t, ok := typeAttr(attrs); ok {
		seg = name + ` type="` + t + `"`
	}
	sr.stack = append(sr.stack, seg)
	sr.names = append(sr.names, name)
	return nil
}

func (sr *stackReader) pop(name string) error {
	if len(sr.names) == 0 {
		return sr.errorf("unexpected </%s>", name)
	}
	top := sr.names[len(sr.names)-1]
	if top != name {
		return sr.errorf("</%s> closes <%s>", name, top)
	}
	sr.stack = sr.stack[:len(sr.stack)-1]
	sr.names = sr.names[:len(sr.names)-1]
	return nil
}

func (sr *stackReader) openEnding(attrs string) error {
	if sr.inEnding {
		return sr.errorf("nested ending")
	}
	sr.inEnding = true
	sr.occ, _ = typeAttr(attrs)
	sr.occ = strings.ReplaceAll(sr.occ, " ", "")
	sr.text.Reset()
	return nil
}

func (sr *stackReader) closeEnding() error {
	if !sr.inEnding {
		return sr.errorf("unexpected </ending>")
	}
	sr.inEnding = false
	text := strings.TrimSpace(sr.text.String())
	if text == "" {
		return sr.errorf("empty ending")
	}
	sr.records = append(sr.records, Record{
		Ending:     text,
		Occurrence: sr.occ,
		Path:       append([]string(nil), sr.stack...),
	})
	return nil
}

func typeAttr(attrs string) (string, bool) {
	for _, m := range attrRe.FindAllStringSubmatch(attrs, -1) {
		if m[1] == "type" {
			return m[2], true
		}
	}
	return "", false
}
