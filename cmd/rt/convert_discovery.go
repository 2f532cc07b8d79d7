package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrFileNotFound       = errors.New("file not found")
	ErrDuplicateOutput    = errors.New("two inputs write the same output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// markdownPattern matches the file names a directory argument contributes.
var markdownPattern = glob.MustCompile("*.{md,mdown,markdown}")

// Custom template names looked up in directory arguments, in order.
var customTemplateNames = []string{"custom.html", "custom.tmpl"}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands arguments into files to convert. Files are taken
// as given whatever their extension; directories contribute their
// Markdown files, without descending into subdirectories.
func discoverFiles(args []string, destination string) ([]FileToConvert, error) {
	var files []FileToConvert
	inputs := make(map[string]bool)
	outputs := make(map[string]string)

	for _, arg := range args {
		paths, err := expandArg(arg)
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			if inputs[path] {
				continue
			}
			inputs[path] = true

			outPath := resolveOutputPath(path, destination)
			if prev, ok := outputs[outPath]; ok {
				return nil, fmt.Errorf("%w: %s and %s -> %s", ErrDuplicateOutput, prev, path, outPath)
			}
			outputs[outPath] = path

			files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		}
	}

	return files, nil
}

// expandArg returns the Markdown paths for one argument.
func expandArg(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, arg)
		}
		return nil, err
	}

	if !info.IsDir() {
		return []string{filepath.Clean(arg)}, nil
	}

	entries, err := os.ReadDir(arg)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", arg, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !markdownPattern.Match(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(arg, entry.Name()))
	}
	return paths, nil
}

// resolveOutputPath determines the HTML output path for a Markdown file:
// beside the source, or in destination when one is set.
func resolveOutputPath(inputPath, destination string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), ".html")
	if destination == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return filepath.Join(destination, name)
}

// findCustomTemplate returns the first custom template found in the
// directory arguments, or "" when there is none. The template applies to
// every document of the run.
func findCustomTemplate(args []string) string {
	for _, arg := range args {
		if !fileutil.DirExists(arg) {
			continue
		}
		for _, name := range customTemplateNames {
			path := filepath.Join(arg, name)
			if fileutil.FileExists(path) {
				return path
			}
		}
	}
	return ""
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > redtape.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, redtape.MaxWorkers)
	}
	return nil
}
