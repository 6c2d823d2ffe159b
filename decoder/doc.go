// Package decoder turns PDF files into the styled fragment groups consumed
// by the layout heuristics.
//
// Glyph runs reported by the PDF content stream are grouped into lines by
// baseline, ordered left to right, and split into fragments wherever the
// font or size changes. Bold and italic flags are derived from font names.
//
// Basic usage:
//
//	doc, err := decoder.New().DecodeFile(ctx, "report.pdf")
//	if errors.Is(err, decoder.ErrMalformed) {
//		// not a readable PDF
//	}
//
// The optional [Preflight] check runs a full structural validation before
// decoding.
package decoder
