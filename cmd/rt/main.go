package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-redtape/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates a first argument that is neither a command
// nor something that looks like an input path.
var ErrUnknownCommand = errors.New("unknown command")

// commands lists the subcommand names.
var commands = []string{"convert", "assets", "version", "help"}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// A first argument that is not a command is read as convert input, so
// `rt doc.md` and `rt convert doc.md` are equivalent.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch {
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		return runHelp(rest, env)
	case cmd == "version" || cmd == "--version":
		fmt.Fprintf(env.Stdout, "rt %s\n", Version)
		return ExitSuccess
	case cmd == "convert":
		err = runConvertCmd(ctx, rest, env)
	case cmd == "assets":
		err = runAssetsCmd(rest, env)
	case looksLikeInput(cmd):
		err = runConvertCmd(ctx, args, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		env.errorUI().Error("%v", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		env.errorUI().Error("%v", err)
	}
	return exitCodeFor(err)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// looksLikeInput reports whether a non-command first argument should be
// handed to convert: a flag, a path, or a file name with an extension.
func looksLikeInput(arg string) bool {
	if isCommand(arg) {
		return false
	}
	if strings.HasPrefix(arg, "-") || fileutil.IsFilePath(arg) {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// shortBoolFlags are the single-letter boolean flags that can be combined.
const shortBoolFlags = "qve"

// hasVerboseFlag scans raw arguments for -v/--verbose before any flag set
// has parsed them.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--verbose" || arg == "--verbose=true" {
			return true
		}
		// Combined short booleans, e.g. -qv or -ev.
		short, ok := strings.CutPrefix(arg, "-")
		if ok && short != "" && strings.Trim(short, shortBoolFlags) == "" && strings.Contains(short, "v") {
			return true
		}
	}
	return false
}
