package decoder

import (
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PreflightReport summarizes a successful structural validation
type PreflightReport struct {
	PageCount int
}

// Preflight validates the PDF structure of the file at path before it is
// decoded. Validation failures wrap ErrMalformed.
func Preflight(path string) (*PreflightReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return PreflightReader(f)
}

// PreflightReader validates the PDF structure read from rs
func PreflightReader(rs io.ReadSeeker) (*PreflightReport, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &PreflightReport{
		PageCount: ctx.PageCount,
	}, nil
}
