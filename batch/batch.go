// Package batch runs outline extraction over a directory of PDFs and writes
// one JSON document per input.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/format"
	"github.com/tsawler/outline/internal/observability"
	"github.com/tsawler/outline/model"
)

// Run-level errors. Per-document failures never surface here.
var (
	ErrInputMissing = errors.New("input directory does not exist")
	ErrNoInputs     = errors.New("no PDF files found in input directory")
)

// ExtractFunc produces the result for one input file
type ExtractFunc func(ctx context.Context, path string) (*model.Result, error)

// Options configures a batch run
type Options struct {
	InputDir  string
	OutputDir string

	// Workers bounds concurrent documents; defaults to the CPU count
	Workers int

	// DocTimeout bounds a single document; zero means no limit
	DocTimeout time.Duration

	// Extract defaults to outline.Open(path).Analyze
	Extract ExtractFunc
}

// DocumentReport is the outcome for one input file
type DocumentReport struct {
	Source   string
	Output   string
	Title    string
	Headings int
	Duration time.Duration
	Err      error
}

// Failed reports whether the document was written as the sentinel result
func (d DocumentReport) Failed() bool {
	return d.Err != nil
}

// Summary describes a completed run
type Summary struct {
	RunID     string
	Documents []DocumentReport
	Elapsed   time.Duration
}

// Succeeded counts documents extracted without error
func (s *Summary) Succeeded() int {
	n := 0
	for _, d := range s.Documents {
		if !d.Failed() {
			n++
		}
	}
	return n
}

// Failed counts documents written as the sentinel result
func (s *Summary) Failed() int {
	return len(s.Documents) - s.Succeeded()
}

// Runner processes every PDF in a directory
type Runner struct {
	opts   Options
	logger zerolog.Logger
}

// NewRunner creates a runner, filling unset options with defaults
func NewRunner(opts Options, logger zerolog.Logger) *Runner {
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Extract == nil {
		opts.Extract = func(ctx context.Context, path string) (*model.Result, error) {
			return outline.Open(path).Analyze(ctx)
		}
	}
	return &Runner{opts: opts, logger: logger}
}

// Discover lists the PDF files directly inside dir, sorted by name
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, dir)
		}
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || format.Detect(entry.Name()) != format.PDF {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputs, dir)
	}

	sort.Strings(files)
	return files, nil
}

// Run processes all inputs. Documents are handled concurrently up to the
// worker limit; a failing document is written as the sentinel result and
// does not stop its siblings.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := observability.WithRun(r.logger, runID)

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	files, err := Discover(r.opts.InputDir)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("files", len(files)).Int("workers", r.opts.Workers).Msg("found PDF files to process")

	reports := make([]DocumentReport, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			reports[i] = r.process(gctx, logger, path)
			return nil
		})
	}
	_ = g.Wait()

	summary := &Summary{
		RunID:     runID,
		Documents: reports,
		Elapsed:   time.Since(start),
	}

	logger.Info().
		Int("succeeded", summary.Succeeded()).
		Int("failed", summary.Failed()).
		Dur("elapsed", summary.Elapsed).
		Msg("processing complete")

	return summary, ctx.Err()
}

// process extracts and writes a single document
func (r *Runner) process(ctx context.Context, logger zerolog.Logger, path string) DocumentReport {
	start := time.Now()
	name := filepath.Base(path)
	report := DocumentReport{
		Source: path,
		Output: OutputPath(r.opts.OutputDir, path),
	}

	logger.Info().Str("file", name).Msg("processing")

	result, err := r.extract(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Str("file", name).Msg("error processing document")
		report.Err = err
		result = model.ErrorResult()
	}

	if err := WriteResult(report.Output, result); err != nil {
		logger.Error().Err(err).Str("file", name).Msg("failed to write result")
		report.Err = errors.Join(report.Err, err)
	}

	report.Title = result.Title
	report.Headings = len(result.Outline)
	report.Duration = time.Since(start)

	logger.Info().
		Str("file", name).
		Str("output", filepath.Base(report.Output)).
		Int("headings", report.Headings).
		Dur("elapsed", report.Duration).
		Msg("generated")

	return report
}

// extract runs the extract function under the per-document timeout,
// converting panics into errors
func (r *Runner) extract(ctx context.Context, path string) (*model.Result, error) {
	if r.opts.DocTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.DocTimeout)
		defer cancel()
	}

	type outcome struct {
		result *model.Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", outline.ErrInternal, rec)}
			}
		}()
		res, err := r.opts.Extract(ctx, path)
		if err == nil && res == nil {
			err = outline.ErrInternal
		}
		done <- outcome{result: res, err: err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-ctx.Done():
		return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), ctx.Err())
	}
}
