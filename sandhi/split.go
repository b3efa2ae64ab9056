package sandhi

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/pali/guess"
	"github.com/cours-de-latin/pali/validate"
)

// DefaultDepth is used when Split is called with depth 0.
const DefaultDepth = 2

// MaxDepth caps the depth of a split unless WithMaxDepth changes it.
const MaxDepth = 3

// Lexicon tells whether a word is attested. It is optional; without it
// split candidates are ranked by segment count only.
type Lexicon interface {
	Exists(ctx context.Context, word string) (bool, error)
}

// SplitResult is one way of cutting a word into segments.
type SplitResult struct {
	Segments   []string `json:"segments"`
	Rule       string   `json:"rule"`
	Position   int      `json:"position"`
	Valid      bool     `json:"valid"`
	Confidence float64  `json:"confidence"`
}

func newSplitResult(segments []string, rule string, pos int, v validate.Validator) SplitResult {
	return SplitResult{
		Segments: segments,
		Rule:     rule,
		Position: pos,
		Valid:    validSegments(segments, v),
	}
}

func validSegments(segments []string, v validate.Validator) bool {
	for i, s := range segments {
		if i < len(segments)-1 && !guess.IsLemmaForm(s) {
			return false
		}
		if !v.IsProbableWord(s) {
			return false
		}
	}
	return true
}

func (r SplitResult) key() string {
	return strings.Join(r.Segments, " ")
}

func (r SplitResult) String() string {
	return strings.Join(r.Segments, " + ")
}

// Splitter cuts words at the positions where a split rule matches.
type Splitter struct {
	rules     *Rules
	validator validate.Validator
	lexicon   Lexicon
	depth     int
	maxDepth  int
}

// SplitterOption configures a Splitter.
type SplitterOption func(*Splitter)

// WithLexicon enables dictionary based confidence scores.
func WithLexicon(l Lexicon) SplitterOption {
	return func(s *Splitter) { s.lexicon = l }
}

// WithDefaultDepth changes the depth used when Split gets 0.
func WithDefaultDepth(d int) SplitterOption {
	return func(s *Splitter) {
		if d > 0 {
			s.depth = d
		}
	}
}

// WithMaxDepth changes the ceiling applied to every requested depth.
func WithMaxDepth(d int) SplitterOption {
	return func(s *Splitter) {
		if d > 0 {
			s.maxDepth = d
		}
	}
}

func NewSplitter(rules *Rules, opts ...SplitterOption) *Splitter {
	s := &Splitter{rules: rules, depth: DefaultDepth, maxDepth: MaxDepth}
	for _, opt := range opts {
		opt(s)
	}
	s.depth = min(s.depth, s.maxDepth)
	return s
}

// MaxDepth returns the ceiling applied to requested depths.
func (s *Splitter) MaxDepth() int { return s.maxDepth }

// Split returns the valid splits of word, best first. depth bounds how
// many times segments are split again; 0 selects the default depth and
// anything above the maximum depth is lowered to it. Depth 1 is a single
// pass over the word without re-splitting the segments.
//
// A canceled ctx stops the search and yields the results found so far.
func (s *Splitter) Split(ctx context.Context, word string, depth int) []SplitResult {
	if depth <= 0 {
		depth = s.depth
	}
	depth = min(depth, s.maxDepth)
	results := s.split(ctx, word, depth)
	for i := range results {
		results[i].Confidence = s.confidence(ctx, results[i].Segments)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

func (s *Splitter) split(ctx context.Context, word string, depth int) []SplitResult {
	single := s.pass(word)
	if depth <= 1 || ctx.Err() != nil {
		return single
	}
	seen := make(map[string]bool, len(single))
	out := make([]SplitResult, 0, len(single))
	add := func(r SplitResult) {
		if r.Valid && !seen[r.key()] {
			seen[r.key()] = true
			out = append(out, r)
		}
	}
	for _, r := range single {
		add(r)
	}
	for _, r := range single {
		if ctx.Err() != nil {
			break
		}
		for k, seg := range r.Segments {
			for _, sub := range s.split(ctx, seg, depth-1) {
				segs := make([]string, 0, len(r.Segments)+len(sub.Segments)-1)
				segs = append(segs, r.Segments[:k]...)
				segs = append(segs, sub.Segments...)
				segs = append(segs, r.Segments[k+1:]...)
				add(newSplitResult(segs, sub.Rule, r.Position, s.validator))
			}
		}
	}
	return out
}

// pass applies every split rule at every letter of word once.
func (s *Splitter) pass(word string) []SplitResult {
	seen := make(map[string]bool)
	var out []SplitResult
	pos := 0
	for i := range word {
		for _, rule := range s.rules.Split {
			if !rule.IsApplicable(word[i:]) {
				continue
			}
			for _, cand := range rule.ApplyAt(word, i) {
				segs := strings.Fields(cand)
				if len(segs) < 2 {
					continue
				}
				r := newSplitResult(segs, rule.String(), pos, s.validator)
				if !r.Valid || seen[r.key()] {
					continue
				}
				seen[r.key()] = true
				out = append(out, r)
			}
		}
		pos++
	}
	return out
}

// confidence is the share of attested segments, or 1/len(segments) when
// no lexicon is configured.
func (s *Splitter) confidence(ctx context.Context, segments []string) float64 {
	if len(segments) == 0 {
		return 0
	}
	if s.lexicon == nil {
		return 1 / float64(len(segments))
	}
	hits := 0
	for _, seg := range segments {
		ok, err := s.lexicon.Exists(ctx, seg)
		if err != nil {
			log.Warn().Err(err).Str("word", seg).Msg("lexicon lookup failed, counting as unknown")
			continue
		}
		if ok {
			hits++
		}
	}
	return float64(hits) / float64(len(segments))
}
