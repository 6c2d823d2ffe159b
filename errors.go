package outline

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Analyze and the Extractor accessors. Extract
// and Extractor.Result never return them; they convert every failure into
// the sentinel result instead.
var (
	ErrNoPages           = errors.New("document has no pages")
	ErrNoFilename        = errors.New("no filename specified")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrDecode            = errors.New("failed to decode document")
	ErrInternal          = errors.New("internal extraction fault")
)

// ExtractError records the failing step and source of an extraction error
type ExtractError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
