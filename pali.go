// Package pali provides Pali morphological analysis, generation,
// lemmatization and sandhi resolution on top of the paradigm and sandhi
// rule tables shipped in the data package.
//
// An Engine is safe for concurrent use once built.
package pali

import (
	"context"
	"io/fs"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/cours-de-latin/pali/grammar"
	"github.com/cours-de-latin/pali/guess"
	"github.com/cours-de-latin/pali/lexicon"
	"github.com/cours-de-latin/pali/sandhi"
	"github.com/cours-de-latin/pali/strategy"
)

// DefaultCacheSize is the number of lemmatization results kept in memory.
const DefaultCacheSize = 4096

// Engine holds the loaded tables and every component built on them.
type Engine struct {
	grammar  *grammar.Grammar
	rules    *sandhi.Rules
	guesser  *guess.Guesser
	manager  *strategy.Manager
	merger   *sandhi.Merger
	splitter *sandhi.Splitter
	lexicon  lexicon.Lookup
	logger   zerolog.Logger

	// lemmas caches Lemmatize results keyed by word and word class.
	lemmas *lru.Cache[string, []LemmaResult]

	// endings lists every ending of the grammar, longest first.
	endings []string
}

type options struct {
	grammar      *grammar.Grammar
	rules        *sandhi.Rules
	dataFS       fs.FS
	lexicon      lexicon.Lookup
	logger       zerolog.Logger
	prune        int
	defaultDepth int
	maxDepth     int
	cacheSize    int
}

// Option configures New.
type Option func(*options)

// WithGrammar uses an already loaded grammar instead of the embedded one.
func WithGrammar(g *grammar.Grammar) Option {
	return func(o *options) { o.grammar = g }
}

// WithRules uses already loaded sandhi rules instead of the embedded ones.
func WithRules(r *sandhi.Rules) Option {
	return func(o *options) { o.rules = r }
}

// WithDataFS loads the tables missing from WithGrammar and WithRules from
// fsys, using the file names of the embedded data.
func WithDataFS(fsys fs.FS) Option {
	return func(o *options) { o.dataFS = fsys }
}

// WithLexicon enables the dictionary backed operations and lexicon based
// split scoring.
func WithLexicon(l lexicon.Lookup) Option {
	return func(o *options) { o.lexicon = l }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPrune sets the word class guesser threshold.
func WithPrune(n int) Option {
	return func(o *options) { o.prune = n }
}

// WithDefaultDepth sets the split depth used when Split is called with 0.
func WithDefaultDepth(d int) Option {
	return func(o *options) { o.defaultDepth = d }
}

// WithMaxDepth caps the split depth a caller may request.
func WithMaxDepth(d int) Option {
	return func(o *options) { o.maxDepth = d }
}

// WithCacheSize bounds the lemmatization cache. Zero or less disables it.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// New loads the tables and wires the engine.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	o := options{
		logger:    zerolog.Nop(),
		prune:     guess.DefaultPrune,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	g, rules, err := loadTables(ctx, o)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		grammar: g,
		rules:   rules,
		guesser: guess.New(g, guess.WithPrune(o.prune)),
		manager: strategy.NewManager(g, rules),
		merger:  sandhi.NewMerger(rules),
		lexicon: o.lexicon,
		logger:  o.logger,
		endings: longestFirst(g.Endings("")),
	}
	if e.lexicon == nil {
		e.lexicon = lexicon.Null{}
	}
	splitOpts := []sandhi.SplitterOption{
		sandhi.WithDefaultDepth(o.defaultDepth),
		sandhi.WithMaxDepth(o.maxDepth),
	}
	if o.lexicon != nil {
		splitOpts = append(splitOpts, sandhi.WithLexicon(o.lexicon))
	}
	e.splitter = sandhi.NewSplitter(rules, splitOpts...)
	if o.cacheSize > 0 {
		e.lemmas, err = lru.New[string, []LemmaResult](o.cacheSize)
		if err != nil {
			return nil, err
		}
	}
	e.logger.Debug().
		Int("classes", len(g.Classes())).
		Int("endings", len(e.endings)).
		Bool("lexicon", o.lexicon != nil).
		Msg("pali engine ready")
	return e, nil
}

// Grammar returns the paradigm tables in use.
func (e *Engine) Grammar() *grammar.Grammar { return e.grammar }

// Rules returns the sandhi rules in use.
func (e *Engine) Rules() *sandhi.Rules { return e.rules }
