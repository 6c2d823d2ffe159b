// Package lexicon holds the optional stop-word set. Loading never fails:
// an unreadable or missing list yields an empty set.
package lexicon

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"
)

// Set is a read-only set of lower-case words. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a set from the given words
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return Set{words: m}
}

// Contains reports whether word is in the set (case-insensitive)
func (s Set) Contains(word string) bool {
	if len(s.words) == 0 {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words
func (s Set) Len() int {
	return len(s.words)
}

// Read parses one word per line. Blank lines and lines starting with '#'
// are skipped. A read error returns what was parsed so far.
func Read(r io.Reader) Set {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return NewSet(words...)
}

// Load reads a stop-word file. Any failure yields an empty set.
func Load(path string) Set {
	if path == "" {
		return Set{}
	}
	f, err := os.Open(path)
	if err != nil {
		return Set{}
	}
	defer f.Close()
	return Read(f)
}

// Loader loads a stop-word file at most once and hands out the same set
// to every caller.
type Loader struct {
	path string
	once sync.Once
	set  Set
}

// NewLoader returns a lazy loader for path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Get loads the set on first use
func (l *Loader) Get() Set {
	if l == nil {
		return Set{}
	}
	l.once.Do(func() {
		l.set = Load(l.path)
	})
	return l.set
}
