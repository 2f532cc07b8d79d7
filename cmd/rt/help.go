package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rt <command> [flags] [args]")
	fmt.Fprintln(w, "       rt [flags] <file|dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML (default)")
	fmt.Fprintln(w, "  assets     Write stylesheets for linked documents")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'rt help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rt convert [flags] <file|dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert GitHub-flavored markdown files to HTML documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file|dir   Markdown files, or directories whose *.md, *.mdown and")
	fmt.Fprintln(w, "             *.markdown files are converted (optional if config has")
	fmt.Fprintln(w, "             input.defaultDir). A custom.html in a directory argument")
	fmt.Fprintln(w, "             becomes the template for the whole run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -d, --destination <dir>   Write HTML to this directory (default: beside source)")
	fmt.Fprintln(w, "      --stdout              Write HTML to stdout")
	fmt.Fprintln(w, "      --create-assets       Write stylesheets to <destination>/assets first")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --timeout <d>         Per-document timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code blocks:")
	fmt.Fprintln(w, "      --fenced <mode>       rich (chroma), light (prettify), none")
	fmt.Fprintln(w, "      --pygments            Same as --fenced=rich")
	fmt.Fprintln(w, "      --chroma-style <s>    Chroma style (default: github)")
	fmt.Fprintln(w, "      --renderer <s>        goldmark or commonmark")
	fmt.Fprintln(w)
	printAssetFlagsUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title (default: first h1)")
	fmt.Fprintln(w, "      --lang <s>            Language attribute (default: en)")
	fmt.Fprintln(w, "      --use-js              Link configured scripts")
	fmt.Fprintln(w, "      --script <url>        Link a script (repeatable, implies --use-js)")
	fmt.Fprintln(w)
	printCommonFlagsUsage(w)
}

// printAssetsUsage prints usage for the assets command.
func printAssetsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rt assets [flags] [dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the built-in stylesheets to <dir>/css (default dir: ./assets),")
	fmt.Fprintln(w, "where documents converted without --embed link them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code blocks:")
	fmt.Fprintln(w, "      --chroma-style <s>    Chroma style for chroma.css (default: github)")
	fmt.Fprintln(w)
	printAssetFlagsUsage(w)
	fmt.Fprintln(w)
	printCommonFlagsUsage(w)
}

func printAssetFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or .html file path")
	fmt.Fprintln(w, "  -s, --style <name>        Extra stylesheet (repeatable)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding styles/ and templates/")
	fmt.Fprintln(w, "  -e, --embed               Inline stylesheets in each document")
}

func printCommonFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --color <when>        auto, always, never")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RT_CONFIG, RT_INPUT_DIR, RT_DESTINATION, RT_FENCED, RT_CHROMA_STYLE,")
	fmt.Fprintln(w, "  RT_RENDERER, RT_TEMPLATE, RT_ASSET_PATH, RT_EMBED, RT_LANG,")
	fmt.Fprintln(w, "  RT_TIMEOUT, RT_WORKERS. Flags take precedence.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "assets":
		printAssetsUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: rt version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: rt help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
