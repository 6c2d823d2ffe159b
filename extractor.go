package outline

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/outline/decoder"
	"github.com/tsawler/outline/format"
	"github.com/tsawler/outline/layout"
	"github.com/tsawler/outline/lexicon"
	"github.com/tsawler/outline/model"
)

// Extractor provides a fluent interface for inferring a PDF's title and
// heading outline. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source; exactly one is set
	filename string
	doc      *model.Document
	pages    []model.Page

	// Configuration
	options ExtractOptions
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		pages:    e.pages,
		options:  e.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithTitleConfig replaces the title selector configuration.
func (e *Extractor) WithTitleConfig(config layout.TitleConfig) *Extractor {
	newExt := e.clone()
	newExt.options.title = config
	return newExt
}

// WithHeadingConfig replaces the heading classifier configuration.
func (e *Extractor) WithHeadingConfig(config layout.HeadingConfig) *Extractor {
	newExt := e.clone()
	newExt.options.heading = config
	return newExt
}

// WithDecoderConfig replaces the glyph grouping configuration.
func (e *Extractor) WithDecoderConfig(config decoder.Config) *Extractor {
	newExt := e.clone()
	newExt.options.decode = config
	return newExt
}

// WithStopWords injects a stop-word set into both heuristics.
//
// Example:
//
//	words := lexicon.Load("/app/stopwords.txt")
//	result := outline.Open("doc.pdf").WithStopWords(words).Result(ctx)
func (e *Extractor) WithStopWords(words lexicon.Set) *Extractor {
	newExt := e.clone()
	newExt.options.stopWords = words
	return newExt
}

// WithValidation runs a structural PDF validation before decoding. Files
// that fail it are reported as decode errors.
func (e *Extractor) WithValidation() *Extractor {
	newExt := e.clone()
	newExt.options.validate = true
	return newExt
}

// WithLogger sets the logger used for debug output. The default discards.
func (e *Extractor) WithLogger(logger zerolog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Result runs the full extraction and never fails: any error or panic is
// logged and converted into the sentinel result whose title is
// model.ErrorTitle.
//
// Example:
//
//	result := outline.Open("document.pdf").Result(ctx)
//	if result.IsError() {
//	    // extraction failed
//	}
func (e *Extractor) Result(ctx context.Context) (result *model.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			e.options.logger.Error().
				Str("source", e.source()).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("extraction panicked")
			result = model.ErrorResult()
		}
	}()

	res, err := e.Analyze(ctx)
	if err != nil {
		e.options.logger.Warn().Err(err).Str("source", e.source()).Msg("extraction failed")
		return model.ErrorResult()
	}
	return res
}

// Analyze runs the full extraction and reports failures as errors.
// The title selector and heading classifier run concurrently once the font
// profile is built.
func (e *Extractor) Analyze(ctx context.Context) (*model.Result, error) {
	start := time.Now()

	pages, meta, err := e.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, &ExtractError{Op: "analyze", Path: e.source(), Err: ErrNoPages}
	}

	profile := layout.BuildFontProfile(pages)
	e.options.logger.Debug().
		Str("source", e.source()).
		Float64("body_size", profile.BodyFontSize).
		Float64("threshold", profile.SizeThreshold).
		Int("qualifying_lines", profile.QualifyingLines).
		Msg("font profile built")

	selector := layout.NewTitleSelectorWithConfig(e.options.titleConfig())
	classifier := layout.NewHeadingClassifierWithConfig(e.options.headingConfig())

	var (
		title   string
		entries []model.HeadingEntry
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(guard(func() {
		title = selector.Select(&pages[0], profile)
	}))
	g.Go(guard(func() {
		entries = classifier.Classify(pages, profile)
	}))
	if err := g.Wait(); err != nil {
		return nil, &ExtractError{Op: "analyze", Path: e.source(), Err: err}
	}

	e.options.logger.Debug().
		Str("source", e.source()).
		Str("title", title).
		Str("metadata_title", meta.Title).
		Int("headings", len(entries)).
		Dur("elapsed", time.Since(start)).
		Msg("outline extracted")

	return model.NewResult(title, entries), nil
}

// Title returns only the document title.
func (e *Extractor) Title(ctx context.Context) (string, error) {
	res, err := e.Analyze(ctx)
	if err != nil {
		return "", err
	}
	return res.Title, nil
}

// Outline returns only the heading outline.
func (e *Extractor) Outline(ctx context.Context) ([]model.HeadingEntry, error) {
	res, err := e.Analyze(ctx)
	if err != nil {
		return nil, err
	}
	return res.Outline, nil
}

// Profile returns the document's font profile.
func (e *Extractor) Profile(ctx context.Context) (*model.FontProfile, error) {
	pages, err := e.loadPages(ctx)
	if err != nil {
		return nil, err
	}
	return layout.BuildFontProfile(pages), nil
}

// Pages returns the normalized pages.
func (e *Extractor) Pages(ctx context.Context) ([]model.Page, error) {
	return e.loadPages(ctx)
}

// Metadata returns the document information dictionary values the decoder
// could read. Sources built from pages carry none.
func (e *Extractor) Metadata(ctx context.Context) (model.Metadata, error) {
	_, meta, err := e.load(ctx)
	return meta, err
}

// PageCount returns the number of pages in the source.
func (e *Extractor) PageCount(ctx context.Context) (int, error) {
	pages, err := e.loadPages(ctx)
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// loadPages returns the normalized pages, decoding the file if needed.
func (e *Extractor) loadPages(ctx context.Context) ([]model.Page, error) {
	pages, _, err := e.load(ctx)
	return pages, err
}

// load returns the normalized pages and the document metadata.
func (e *Extractor) load(ctx context.Context) ([]model.Page, model.Metadata, error) {
	switch {
	case e.pages != nil:
		return e.pages, model.Metadata{}, nil
	case e.doc != nil:
		return layout.Normalize(e.doc), e.doc.Metadata, nil
	}

	doc, err := e.decode(ctx)
	if err != nil {
		return nil, model.Metadata{}, err
	}
	return layout.Normalize(doc), doc.Metadata, nil
}

// decode opens and decodes the configured file.
func (e *Extractor) decode(ctx context.Context) (*model.Document, error) {
	if e.filename == "" {
		return nil, &ExtractError{Op: "open", Err: ErrNoFilename}
	}

	kind, err := format.DetectFile(e.filename)
	if err != nil {
		return nil, &ExtractError{Op: "open", Path: e.filename, Err: err}
	}
	if kind != format.PDF {
		return nil, &ExtractError{Op: "open", Path: e.filename, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)}
	}

	if e.options.validate {
		report, err := decoder.Preflight(e.filename)
		if err != nil {
			return nil, &ExtractError{Op: "validate", Path: e.filename, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
		}
		e.options.logger.Debug().Str("source", e.filename).Int("pages", report.PageCount).Msg("preflight passed")
	}

	doc, err := decoder.NewWithConfig(e.options.decode).DecodeFile(ctx, e.filename)
	if err != nil {
		if errors.Is(err, decoder.ErrMalformed) {
			err = fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, &ExtractError{Op: "decode", Path: e.filename, Err: err}
	}
	return doc, nil
}

// source names the extraction input for logs and errors.
func (e *Extractor) source() string {
	switch {
	case e.filename != "":
		return e.filename
	case e.doc != nil:
		return e.doc.Source
	default:
		return ""
	}
}

// guard adapts fn to an errgroup task, converting a panic into ErrInternal
// so it reaches the caller instead of crashing the process.
func guard(fn func()) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%w: %v", ErrInternal, rec)
			}
		}()
		fn()
		return nil
	}
}
