package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestZeroSetIsEmpty(t *testing.T) {
	var s Set
	if s.Len() != 0 || s.Contains("the") {
		t.Error("zero Set should be empty")
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet("The", " and ", "", "OR")
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for _, w := range []string{"the", "THE", "and", "or"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	if s.Contains("guide") {
		t.Error("Contains(guide) = true")
	}
}

func TestRead(t *testing.T) {
	s := Read(strings.NewReader("# english\nthe\n\n  with \nfrom\n"))
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.Contains("# english") {
		t.Error("comment line should be skipped")
	}
}

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if Load("").Len() != 0 {
		t.Error("empty path should give empty set")
	}
}

func TestLoaderLoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("the\nand\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(path)
	first := l.Get()
	if first.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", first.Len())
	}

	// Later changes to the file are not observed
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if l.Get().Len() != 2 {
		t.Error("Loader reloaded the file")
	}

	var nilLoader *Loader
	if nilLoader.Get().Len() != 0 {
		t.Error("nil loader should give empty set")
	}
}
