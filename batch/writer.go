package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/outline/model"
)

// OutputPath maps an input file to <outputDir>/<base name>.json
func OutputPath(outputDir, source string) string {
	base := filepath.Base(source)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
}

// Encode writes the result as 2-space indented JSON. Non-ASCII text and
// HTML-significant characters are written as is.
func Encode(w io.Writer, result *model.Result) error {
	if result == nil {
		result = model.ErrorResult()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

// WriteResult writes the result to path, replacing any existing file
func WriteResult(path string, result *model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, result); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
