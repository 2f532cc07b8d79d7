package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/hints"
	"github.com/alnah/go-redtape/internal/ui"
)

// runAssetsCmd writes every built-in stylesheet to a directory, so that
// linked documents render offline: `rt assets [dir]`.
func runAssetsCmd(args []string, env *Environment) error {
	flags, positional, err := parseAssetsFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printAssetsUsage(env.Stdout)
		return err
	}
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one directory, got %d%s", ErrUsage, len(positional), hints.ForUsage("assets"))
	}

	if err := applyColor(flags.common.color, env); err != nil {
		return err
	}

	dir := redtape.DefaultAssetsDir
	if len(positional) == 1 {
		dir = positional[0]
	}

	cfg, _, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	mergeHighlightFlags(flags.highlight, cfg)
	mergeAssetFlags(flags.assets, cfg)

	opts, err := converterOptions(cfg, 0)
	if err != nil {
		return err
	}
	// Export the stylesheets of every fenced mode, not only the configured one.
	opts = append(opts, redtape.WithStyle(redtape.StylePrettify, redtape.StyleChroma))

	conv, err := newConverter(opts...)
	if err != nil {
		return err
	}
	return exportAssets(conv, dir, flags.common, env.outputUI())
}

// exportAssets writes the converter's stylesheets under dir.
func exportAssets(conv *redtape.Converter, dir string, common commonFlags, out *ui.UI) error {
	written, err := conv.ExportAssets(dir)
	if err != nil {
		if errors.Is(err, redtape.ErrExportTarget) {
			return withHint(err)
		}
		return fmt.Errorf("exporting assets: %w", err)
	}

	if common.quiet {
		return nil
	}
	if common.verbose {
		for _, path := range written {
			out.Success("Wrote %s", path)
		}
	}
	out.Success("Exported %d stylesheet(s) to %s", len(written), dir)
	return nil
}
