// Package format provides input format detection.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// pdfMagic is the PDF header prefix. Some producers put a few bytes of
// junk before it, so the first kilobyte is searched.
var pdfMagic = []byte("%PDF-")

const magicWindow = 1024

// DetectFromMagic checks file magic bytes to determine format.
func DetectFromMagic(data []byte) Format {
	if len(data) > magicWindow {
		data = data[:magicWindow]
	}
	if bytes.Contains(data, pdfMagic) {
		return PDF
	}
	return Unknown
}

// DetectFromReader reads the start of r and checks its magic bytes.
func DetectFromReader(r io.Reader) (Format, error) {
	buf := make([]byte, magicWindow)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(buf[:n]), nil
}

// DetectFile checks the file's magic bytes, falling back to the extension
// when the content is not recognized.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	if fmtByMagic, err := DetectFromReader(f); err != nil {
		return Unknown, err
	} else if fmtByMagic != Unknown {
		return fmtByMagic, nil
	}
	return Detect(path), nil
}
