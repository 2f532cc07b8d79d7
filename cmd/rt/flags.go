package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-redtape/internal/hints"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid arguments")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	color   string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	destination  string
	stdout       bool
	workers      int
	timeout      time.Duration
	createAssets bool
}

// highlightFlags holds code block and renderer flags.
type highlightFlags struct {
	fenced      string
	pygments    bool // alias for --fenced=rich
	chromaStyle string
	renderer    string
}

// assetFlags holds template and stylesheet flags.
type assetFlags struct {
	template  string
	styles    []string
	assetPath string
	embed     bool
}

// documentFlags holds per-document flags.
type documentFlags struct {
	title   string
	lang    string
	useJS   bool
	scripts []string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    outputFlags
	highlight highlightFlags
	assets    assetFlags
	document  documentFlags
}

// assetsFlags holds flags for the assets command.
type assetsFlags struct {
	common    commonFlags
	highlight highlightFlags
	assets    assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.StringVar(&f.color, "color", "auto", "colored output: auto, always, never")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.destination, "destination", "d", "", "write HTML to this directory")
	fs.BoolVar(&f.stdout, "stdout", false, "write HTML to stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-document timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.createAssets, "create-assets", false, "write stylesheets to <destination>/assets first")
}

// addHighlightFlags adds code block flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.fenced, "fenced", "", "fenced code blocks: rich, light, none")
	fs.BoolVar(&f.pygments, "pygments", false, "same as --fenced=rich")
	fs.StringVar(&f.chromaStyle, "chroma-style", "", "chroma style for rich mode")
	fs.StringVar(&f.renderer, "renderer", "", "markdown renderer: goldmark, commonmark")
}

// addAssetFlags adds asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template name or .html file path")
	fs.StringSliceVarP(&f.styles, "style", "s", nil, "extra stylesheet names (repeatable)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding built-in styles and templates")
	fs.BoolVarP(&f.embed, "embed", "e", false, "inline stylesheets in each document")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (default: first h1)")
	fs.StringVar(&f.lang, "lang", "", "document language (default: en)")
	fs.BoolVar(&f.useJS, "use-js", false, "link configured scripts")
	fs.StringSliceVar(&f.scripts, "script", nil, "script URL to link (repeatable, implies --use-js)")
}

// newFlagSet creates a quiet FlagSet; callers report errors themselves.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := newFlagSet("convert")
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addHighlightFlags(fs, &f.highlight)
	addAssetFlags(fs, &f.assets)
	addDocumentFlags(fs, &f.document)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseAssetsFlags parses assets command flags and returns positional args.
func parseAssetsFlags(args []string) (*assetsFlags, []string, error) {
	fs := newFlagSet("assets")
	f := &assetsFlags{}

	addCommonFlags(fs, &f.common)
	addHighlightFlags(fs, &f.highlight)
	addAssetFlags(fs, &f.assets)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v%s", ErrUsage, err, hints.ForUsage(fs.Name()))
}
