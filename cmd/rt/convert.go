package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/config"
	"github.com/alnah/go-redtape/internal/fileutil"
	"github.com/alnah/go-redtape/internal/hints"
	"github.com/alnah/go-redtape/internal/ui"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// DocumentConverter is the interface for the conversion service.
type DocumentConverter interface {
	Convert(ctx context.Context, input redtape.Input) (*redtape.Result, error)
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*redtape.Converter)(nil)

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(env.Stdout)
		return err
	}
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := applyColor(flags.common.color, env); err != nil {
		return err
	}
	if err := validateWorkers(flags.output.workers); err != nil {
		return err
	}

	cfg, envCfg, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}
	if cfg.Template.Name == "" {
		cfg.Template.Name = findCustomTemplate(inputs)
	}

	opts, err := converterOptions(cfg, resolveTimeout(flags.output.timeout, envCfg))
	if err != nil {
		return err
	}
	conv, err := newConverter(opts...)
	if err != nil {
		return err
	}

	// HTML owns stdout in --stdout mode; status lines move to stderr.
	out := env.outputUI()
	if flags.output.stdout {
		out = env.errorUI()
	}

	if flags.output.createAssets {
		dir := filepath.Join(cfg.Output.DefaultDir, redtape.DefaultAssetsDir)
		if err := exportAssets(conv, dir, flags.common, out); err != nil {
			return err
		}
	}

	files, err := discoverFiles(inputs, cfg.Output.DefaultDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	workers := redtape.ResolveWorkers(cfg.Workers)
	if flags.common.verbose {
		env.errorUI().Info("converting %d file(s) with %d worker(s)", len(files), workers)
	}

	results := convertBatch(ctx, conv, files, batchOptions{
		workers:  workers,
		title:    flags.document.title,
		toStdout: flags.output.stdout,
	})

	if flags.output.stdout {
		if err := writeStdout(results, env.Stdout); err != nil {
			return err
		}
	}
	printResults(results, flags.common, out, env.errorUI())

	return batchError(results)
}

// applyColor sets the environment color mode from --color.
func applyColor(value string, env *Environment) error {
	mode, err := ui.ParseColorMode(value)
	if err != nil {
		return err
	}
	env.Color = mode
	return nil
}

// loadSettings builds the configuration shared by all commands:
// defaults, then the config file, then RT_* variables.
func loadSettings(common commonFlags, env *Environment) (*config.Config, *envConfig, error) {
	warnUnknownEnvVars(env.errorUI())

	envCfg, err := loadEnvConfig()
	if err != nil {
		return nil, nil, err
	}

	name := common.config
	if name == "" {
		name = envCfg.Config
	}

	cfg := config.DefaultConfig()
	if name != "" {
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
			}
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, envCfg, nil
}

// configSearchPaths returns the paths LoadConfig tried for name.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return []string{name}
	}
	return config.SearchPaths(name)
}

// mergeFlags applies CLI flags over the config (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output.destination != "" {
		cfg.Output.DefaultDir = flags.output.destination
	}
	if flags.output.workers > 0 {
		cfg.Workers = flags.output.workers
	}

	mergeHighlightFlags(flags.highlight, cfg)
	mergeAssetFlags(flags.assets, cfg)

	if flags.document.lang != "" {
		cfg.Template.Lang = flags.document.lang
	}
	if flags.document.useJS {
		cfg.Scripts.Enabled = true
	}
	if len(flags.document.scripts) > 0 {
		cfg.Scripts.Enabled = true
		cfg.Scripts.URLs = append(cfg.Scripts.URLs, flags.document.scripts...)
	}
}

// mergeHighlightFlags applies code block flags. --fenced wins over the
// --pygments alias.
func mergeHighlightFlags(f highlightFlags, cfg *config.Config) {
	switch {
	case f.fenced != "":
		cfg.Highlight.Fenced = f.fenced
	case f.pygments:
		cfg.Highlight.Fenced = string(redtape.FencedRich)
	}
	if f.chromaStyle != "" {
		cfg.Highlight.ChromaStyle = f.chromaStyle
	}
	if f.renderer != "" {
		cfg.Renderer = f.renderer
	}
}

// mergeAssetFlags applies template and stylesheet flags.
func mergeAssetFlags(f assetFlags, cfg *config.Config) {
	if f.template != "" {
		cfg.Template.Name = f.template
	}
	if len(f.styles) > 0 {
		cfg.Assets.Styles = append(cfg.Assets.Styles, f.styles...)
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.embed {
		cfg.Assets.Embed = true
	}
}

// resolveInputs returns the paths to convert: the arguments, or the
// configured default input directory.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, fmt.Errorf("%w: pass files or directories, or set input.defaultDir%s", ErrNoInput, hints.ForUsage("convert"))
}

// resolveTimeout picks the per-document timeout: flag, then RT_TIMEOUT.
// Zero keeps the library default.
func resolveTimeout(flagValue time.Duration, env *envConfig) time.Duration {
	if flagValue > 0 {
		return flagValue
	}
	if env != nil && env.Timeout > 0 {
		return env.Timeout
	}
	return 0
}

// converterOptions translates the merged configuration into library options.
func converterOptions(cfg *config.Config, timeout time.Duration) ([]redtape.Option, error) {
	mode := redtape.DefaultFencedMode
	if cfg.Highlight.Fenced != "" {
		var err error
		if mode, err = redtape.ParseFencedMode(cfg.Highlight.Fenced); err != nil {
			return nil, withHint(err)
		}
	}

	opts := []redtape.Option{
		redtape.WithFencedMode(mode),
		redtape.WithEmbed(cfg.Assets.Embed),
	}
	if cfg.Renderer != "" {
		opts = append(opts, redtape.WithRenderer(cfg.Renderer))
	}
	if cfg.Highlight.ChromaStyle != "" {
		opts = append(opts, redtape.WithChromaStyle(cfg.Highlight.ChromaStyle))
	}
	if cfg.Template.Name != "" {
		opts = append(opts, redtape.WithTemplate(cfg.Template.Name))
	}
	if cfg.Template.Lang != "" {
		opts = append(opts, redtape.WithLang(cfg.Template.Lang))
	}
	if len(cfg.Assets.Styles) > 0 {
		opts = append(opts, redtape.WithStyle(cfg.Assets.Styles...))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, redtape.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Scripts.Enabled && len(cfg.Scripts.URLs) > 0 {
		opts = append(opts, redtape.WithScripts(cfg.Scripts.URLs...))
	}
	if timeout > 0 {
		opts = append(opts, redtape.WithTimeout(timeout))
	}
	return opts, nil
}

// newConverter creates the library converter, adding hints to option errors.
func newConverter(opts ...redtape.Option) (*redtape.Converter, error) {
	conv, err := redtape.NewConverter(opts...)
	if err != nil {
		return nil, withHint(err)
	}
	return conv, nil
}

// withHint appends an actionable hint for known configuration errors.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, redtape.ErrInvalidFencedMode):
		hint = hints.ForFencedMode([]string{
			string(redtape.FencedRich), string(redtape.FencedLight), string(redtape.FencedNone),
		})
	case errors.Is(err, redtape.ErrInvalidRenderer):
		hint = hints.ForRenderer([]string{redtape.RendererGoldmark, redtape.RendererCommonMark})
	case errors.Is(err, redtape.ErrInvalidChromaStyle):
		hint = hints.ForChromaStyle()
	case errors.Is(err, redtape.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound([]string{redtape.DefaultTemplate})
	case errors.Is(err, redtape.ErrStyleNotFound):
		hint = hints.ForStyleNotFound([]string{redtape.StyleBase, redtape.StylePrettify, redtape.StyleChroma})
	case errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, redtape.ErrExportTarget):
		hint = hints.ForAssetsTarget()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
