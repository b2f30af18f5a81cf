package dictionary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultCacheDir = "wordle-solver"
	defaultFilename = "words_alpha.txt"
)

// DefaultPath resolves where the word list lives when no path is configured:
// $XDG_CACHE_HOME/wordle-solver, then $HOME/.config/wordle-solver, then /tmp.
func DefaultPath() string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return filepath.Join(v, defaultCacheDir, defaultFilename)
	}
	if v := os.Getenv("HOME"); v != "" {
		return filepath.Join(v, ".config", defaultCacheDir, defaultFilename)
	}
	return filepath.Join("/tmp", defaultCacheDir, defaultFilename)
}

// TextFile reads a newline-delimited word list from disk.
type TextFile struct {
	path string
}

// NewTextFile checks that path (or DefaultPath when empty) can be opened.
func NewTextFile(path string) (*TextFile, error) {
	if path == "" {
		path = DefaultPath()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	_ = f.Close()
	return &TextFile{path: path}, nil
}

// Path returns the resolved file path.
func (t *TextFile) Path() string { return t.path }

func (t *TextFile) ExtractWords(ctx context.Context, length int) ([]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return scanWords(f, length)
}
