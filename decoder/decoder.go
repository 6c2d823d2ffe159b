package decoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/outline/model"
)

// ErrMalformed is returned when the input cannot be parsed as a PDF
var ErrMalformed = errors.New("malformed PDF")

// Config holds configuration for glyph grouping
type Config struct {
	// LineTolerance is the baseline distance, as a fraction of the glyph
	// size, within which glyphs share a line
	// Default: 0.5
	LineTolerance float64

	// WordGapRatio inserts a space when the horizontal gap between glyphs
	// exceeds this fraction of the glyph size
	// Default: 0.3
	WordGapRatio float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance: 0.5,
		WordGapRatio:  0.3,
	}
}

// Decoder reads PDFs into model documents
type Decoder struct {
	config Config
}

// New creates a decoder with default configuration
func New() *Decoder {
	return &Decoder{config: DefaultConfig()}
}

// NewWithConfig creates a decoder with custom configuration
func NewWithConfig(config Config) *Decoder {
	return &Decoder{config: config}
}

// DecodeFile opens and decodes the PDF at path. File system errors are
// returned as is; parse failures wrap ErrMalformed.
func (d *Decoder) DecodeFile(ctx context.Context, path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return d.Decode(ctx, f, info.Size(), path)
}

// Decode reads a PDF of the given size. Panics raised by the PDF reader on
// damaged input are recovered and reported as ErrMalformed.
func (d *Decoder) Decode(ctx context.Context, r io.ReaderAt, size int64, source string) (doc *model.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrMalformed, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc = model.NewDocument(source)
	doc.Metadata = readMetadata(reader)

	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			doc.AddPage(&model.RawPage{})
			continue
		}

		width, height := mediaBox(page)
		doc.AddPage(&model.RawPage{
			Width:  width,
			Height: height,
			Groups: d.groupGlyphs(page.Content().Text),
		})
	}

	return doc, nil
}

// readMetadata pulls the document information dictionary, if present
func readMetadata(r *pdf.Reader) model.Metadata {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return model.Metadata{}
	}
	return model.Metadata{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Producer: info.Key("Producer").Text(),
	}
}

// mediaBox returns the page dimensions, or zeros when the page does not
// carry its own MediaBox
func mediaBox(p pdf.Page) (float64, float64) {
	box := p.V.Key("MediaBox")
	if box.Len() != 4 {
		return 0, 0
	}
	return box.Index(2).Float64() - box.Index(0).Float64(),
		box.Index(3).Float64() - box.Index(1).Float64()
}
