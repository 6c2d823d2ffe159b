// Package outline infers a PDF's title and heading outline from the font
// usage of its text lines.
//
// Basic usage:
//
//	result := outline.Open("document.pdf").Result(ctx)
//	if result.IsError() {
//	    // the title is the "Error extracting title" sentinel
//	}
//
// With options:
//
//	result, err := outline.Open("report.pdf").
//	    WithValidation().
//	    WithLogger(logger).
//	    Analyze(ctx)
//
// Already-decoded input can be analyzed without touching the file system
// through FromDocument or FromPages. The heuristics themselves live in the
// layout package.
package outline

import (
	"context"

	"github.com/tsawler/outline/model"
)

// Open returns an Extractor for the PDF at filename. Nothing is read until
// a terminal operation such as Result or Analyze is called.
//
// Example:
//
//	result := outline.Open("document.pdf").Result(ctx)
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-decoded document.
//
// Example:
//
//	doc, err := decoder.New().DecodeFile(ctx, "document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	result := outline.FromDocument(doc).Result(ctx)
func FromDocument(doc *model.Document) *Extractor {
	if doc == nil {
		doc = model.NewDocument("")
	}
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromPages creates an Extractor from already-normalized pages.
func FromPages(pages []model.Page) *Extractor {
	if pages == nil {
		pages = []model.Page{}
	}
	return &Extractor{
		pages:   pages,
		options: defaultOptions(),
	}
}

// Extract runs the default extraction over a decoded document. It never
// fails; failures yield the sentinel result.
func Extract(doc *model.Document) *model.Result {
	return FromDocument(doc).Result(context.Background())
}

// ExtractPages runs the default extraction over normalized pages. An empty
// page list yields the sentinel result.
func ExtractPages(pages []model.Page) *model.Result {
	return FromPages(pages).Result(context.Background())
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	title := outline.Must(outline.Open("document.pdf").Title(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
