package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if got := PDF.Extension(); got != ".pdf" {
		t.Errorf("PDF.Extension() = %q, want .pdf", got)
	}
	if got := Unknown.Extension(); got != "" {
		t.Errorf("Unknown.Extension() = %q, want empty", got)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.pdf", PDF},
		{"document.PDF", PDF},
		{"/app/input/Report.Pdf", PDF},
		{"document.docx", Unknown},
		{"document", Unknown},
		{"pdf", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf header", []byte("%PDF-1.7\n"), PDF},
		{"leading junk", append([]byte("\x00\x00garbage"), []byte("%PDF-1.4")...), PDF},
		{"too short", []byte("%PD"), Unknown},
		{"plain text", []byte("Hello, World!"), Unknown},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04}, Unknown},
		{"empty", nil, Unknown},
		{"header past window", append(bytes.Repeat([]byte(" "), 2048), []byte("%PDF-1.4")...), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	got, err := DetectFromReader(bytes.NewReader([]byte("%PDF-1.4\n%%EOF")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", got)
	}

	got, err = DetectFromReader(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("DetectFromReader(empty) error = %v", err)
	}
	if got != Unknown {
		t.Errorf("DetectFromReader(empty) = %v, want Unknown", got)
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name string
		path string
		want Format
	}{
		{"magic without extension", write("scan", "%PDF-1.5\n"), PDF},
		{"extension without magic", write("empty.pdf", ""), PDF},
		{"neither", write("notes.txt", "plain"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFile(tt.path)
			if err != nil {
				t.Fatalf("DetectFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
