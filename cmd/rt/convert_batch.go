package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	redtape "github.com/alnah/go-redtape"
	"github.com/alnah/go-redtape/internal/fileutil"
	"github.com/alnah/go-redtape/internal/hints"
	"github.com/alnah/go-redtape/internal/ui"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string // empty when writing to stdout
	HTML       []byte // kept only when writing to stdout
	Err        error
	Duration   time.Duration
}

// batchOptions groups parameters shared across batch/file conversion.
type batchOptions struct {
	workers  int
	title    string
	toStdout bool
}

// convertBatch processes files concurrently. The converter is safe for
// concurrent use, so all workers share it. Results keep the order of files.
func convertBatch(ctx context.Context, conv DocumentConverter, files []FileToConvert, opts batchOptions) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(opts.workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv DocumentConverter, f FileToConvert, opts batchOptions) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	input := redtape.Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(f.InputPath),
		OutputDir: filepath.Dir(f.OutputPath),
		Title:     opts.title,
	}
	if opts.toStdout {
		input.OutputDir = ""
		result.OutputPath = ""
	}

	res, err := conv.Convert(ctx, input)
	if err != nil {
		result.Err = withHint(err)
		result.Duration = time.Since(start)
		return result
	}

	if opts.toStdout {
		result.HTML = res.HTML
		result.Duration = time.Since(start)
		return result
	}

	if err := writeHTML(f.OutputPath, res.HTML); err != nil {
		result.Err = err
	}
	result.Duration = time.Since(start)
	return result
}

// writeHTML writes a document, creating its directory if needed.
func writeHTML(path string, html []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: creating output directory: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFile(path, html); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}

// writeStdout writes the successful documents to w in input order.
func writeStdout(results []ConversionResult, w io.Writer) error {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := w.Write(r.HTML); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each conversion: failures to errOut, successes to
// out unless quiet. Returns the tally.
func printResults(results []ConversionResult, common commonFlags, out, errOut *ui.UI) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			errOut.Error("%s: %v", r.InputPath, r.Err)
			continue
		}

		if common.quiet {
			continue
		}

		dest := r.OutputPath
		if dest == "" {
			if !common.verbose {
				continue
			}
			dest = "stdout"
		}

		if common.verbose {
			out.Success("%s -> %s (%v)", r.InputPath, dest, r.Duration.Round(time.Millisecond))
		} else {
			out.Success("Created %s", dest)
		}
	}

	if !common.quiet && len(results) > 1 {
		out.Info("%d succeeded, %d failed", summary.Succeeded, summary.Failed)
	}

	return summary
}

// batchError aggregates the failed conversions into one error. Every cause
// stays reachable through errors.Is.
func batchError(results []ConversionResult) error {
	var merr *multierror.Error
	for _, r := range results {
		if r.Err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		}
	}
	if merr == nil {
		return nil
	}

	total := len(results)
	merr.ErrorFormat = func(errs []error) string {
		return fmt.Sprintf("%d of %d conversions failed", len(errs), total)
	}
	return merr.ErrorOrNil()
}
