// Command pali runs the engine from the command line.
//
//	pali lemmatize [-pos noun] [-lexicon] word...
//	pali analyze   [-pos noun] word...
//	pali generate  [-pos noun] [-gender m] [-declension a] [-affixes] lemma...
//	pali stem      [-pos noun] word...
//	pali merge     word word...
//	pali split     [-depth 2] word...
//	pali compound  [-force] lemma...
//
// Every command accepts -json and -config. Words may be written in Velthuis
// transliteration.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/pali"
	"github.com/cours-de-latin/pali/internal/config"
	"github.com/cours-de-latin/pali/internal/engine"
	"github.com/cours-de-latin/pali/internal/logging"
	"github.com/cours-de-latin/pali/morph"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, e *pali.Engine, out *printer, args []string) error
	flags func(fs *flag.FlagSet)
}

// commandFlags holds the values bound by the per command flag sets.
type commandFlags struct {
	pos        string
	gender     string
	declension string
	affixes    bool
	lexicon    bool
	force      bool
	depth      int
}

var cf commandFlags

var commands = map[string]command{
	"lemmatize": {
		usage: "lemmatize [-pos class] [-lexicon] word...",
		flags: func(fs *flag.FlagSet) {
			fs.StringVar(&cf.pos, "pos", "", "word class hint")
			fs.BoolVar(&cf.lexicon, "lexicon", false, "ask the dictionary first")
		},
		run: runLemmatize,
	},
	"analyze": {
		usage: "analyze [-pos class] word...",
		flags: func(fs *flag.FlagSet) { fs.StringVar(&cf.pos, "pos", "", "word class hint") },
		run:   runAnalyze,
	},
	"generate": {
		usage: "generate [-pos class] [-gender m|f|n] [-declension d] [-affixes] lemma...",
		flags: func(fs *flag.FlagSet) {
			fs.StringVar(&cf.pos, "pos", "", "word class")
			fs.StringVar(&cf.gender, "gender", "", "keep one gender")
			fs.StringVar(&cf.declension, "declension", "", "declension or verb stem class")
			fs.BoolVar(&cf.affixes, "affixes", false, "add prefixed and suffixed forms")
		},
		run: runGenerate,
	},
	"stem": {
		usage: "stem [-pos class] word...",
		flags: func(fs *flag.FlagSet) { fs.StringVar(&cf.pos, "pos", "", "word class hint") },
		run:   runStem,
	},
	"merge": {
		usage: "merge word word...",
		run:   runMerge,
	},
	"split": {
		usage: "split [-depth n] word...",
		flags: func(fs *flag.FlagSet) { fs.IntVar(&cf.depth, "depth", 0, "split depth, 0 for the default") },
		run:   runSplit,
	},
	"compound": {
		usage: "compound [-force] lemma...",
		flags: func(fs *flag.FlagSet) { fs.BoolVar(&cf.force, "force", false, "split known lemmas too") },
		run:   runCompound,
	},
}

func usage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "usage: pali <command> [flags] args...")
	for _, name := range names {
		fmt.Fprintf(w, "  pali %s\n", commands[name].usage)
	}
}

// run executes one command line. The engine is built from the
// configuration only after the arguments are known to be valid.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	cf = commandFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print JSON")
	configPath := fs.String("config", "", "path to a YAML config file")
	if cmd.flags != nil {
		cmd.flags(fs)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %s", errUsage, err)
	}
	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "usage: pali %s\n", cmd.usage)
		return errUsage
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Log.Path, cfg.Log.Level); err != nil {
		return err
	}
	e, closeEngine, err := engine.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeEngine()
	return cmd.run(ctx, e, &printer{w: stdout, json: *asJSON}, fs.Args())
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Send()
	}
}

// ---- output -------------------------------------------------------------

type printer struct {
	w    io.Writer
	json bool
}

// print writes v as one JSON line, or the text lines when JSON is off.
func (p *printer) print(v any, lines ...string) error {
	if p.json {
		return json.NewEncoder(p.w).Encode(v)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}
	return nil
}

func featureText(fs morph.FeatureSet) string {
	var parts []string
	for _, f := range fs.Features() {
		parts = append(parts, f.Key+"="+f.Value)
	}
	return strings.Join(parts, ",")
}

func posHints() []string {
	if cf.pos == "" {
		return nil
	}
	return strings.Split(cf.pos, ",")
}

// ---- commands -----------------------------------------------------------

func runLemmatize(ctx context.Context, e *pali.Engine, out *printer, args []string) error {
	for _, w := range args {
		var res []pali.LemmaResult
		if cf.lexicon {
			res = e.LemmatizeWithLexicon(ctx, w)
		} else {
			res = e.Lemmatize(ctx, w, posHints()...)
		}
		lines := make([]string, 0, len(res))
		for _, r := range res {
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s", r.Word, r.Lemma, r.WordClass))
		}
		if err := out.print(res, lines...); err != nil {
			return err
		}
	}
	return nil
}

func runAnalyze(ctx context.Context, e *pali.Engine, out *printer, args []string) error {
	for _, w := range args {
		res := e.Analyze(ctx, w, posHints()...)
		lines := make([]string, 0, len(res))
		type item struct {
			Word     string            `json:"word"`
			Lemma    string            `json:"lemma"`
			Features map[string]string `json:"features"`
		}
		items := make([]item, 0, len(res))
		for _, a := range res {
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s", a.Word, a.Lemma, featureText(a.Features)))
			items = append(items, item{a.Word, a.Lemma, a.Features.Map()})
		}
		if err := out.print(items, lines...); err != nil {
			return err
		}
	}
	return nil
}

func runGenerate(ctx context.Context, e *pali.Engine, out *printer, args []string) error {
	var opts []pali.GenerateOption
	if cf.gender != "" {
		opts = append(opts, pali.WithGender(cf.gender))
	}
	if cf.declension != "" {
		opts = append(opts, pali.WithDeclension(cf.declension))
	}
	if cf.affixes {
		opts = append(opts, pali.WithAffixes())
	}
	for _, l := range args {
		forms := e.Generate(ctx, l, cf.pos, opts...)
		lines := make([]string, 0, len(forms))
		words := make([]string, 0, len(forms))
		for _, f := range forms {
			lines = append(lines, fmt.Sprintf("%s\t%s", f.Word, featureText(f.Features)))
			words = append(words, f.Word)
		}
		if err := out.print(map[string]any{"lemma": pali.Normalize(l), "forms": words}, lines...); err != nil {
			return err
		}
	}
	return nil
}

func runStem(_ context.Context, e *pali.Engine, out *printer, args []string) error {
	for _, w := range args {
		stems := e.Stem(w, posHints()...)
		if err := out.print(stems, strings.Join(stems, " ")); err != nil {
			return err
		}
	}
	return nil
}

func runMerge(_ context.Context, e *pali.Engine, out *printer, args []string) error {
	merged, err := e.Merge(args...)
	if err != nil {
		return err
	}
	return out.print(merged, merged...)
}

func runSplit(ctx context.Context, e *pali.Engine, out *printer, args []string) error {
	for _, w := range args {
		res := e.Split(ctx, w, cf.depth)
		lines := make([]string, 0, len(res))
		for _, r := range res {
			lines = append(lines, fmt.Sprintf("%s\t%.3f\t%s", r.String(), r.Confidence, r.Rule))
		}
		if err := out.print(res, lines...); err != nil {
			return err
		}
	}
	return nil
}

func runCompound(ctx context.Context, e *pali.Engine, out *printer, args []string) error {
	for _, l := range args {
		members, err := e.SplitCompound(ctx, l, cf.force)
		if err != nil {
			return err
		}
		if err := out.print(members, strings.Join(members, " + ")); err != nil {
			return err
		}
	}
	return nil
}
