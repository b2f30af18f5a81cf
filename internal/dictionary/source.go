// internal/dictionary/source.go
//
// Word sources that seed a solver's candidate pool.
//
// Responsibilities:
//   - Define the Source contract: every word of an exact length, trimmed, in
//     the backing store's natural order, duplicates kept.
//   - Share the newline-delimited parser used by file, embedded and object
//     storage backends.
//
// Backends:
//   - TextFile  newline-delimited file on disk (default path under the cache dir)
//   - Embedded  small list compiled into the binary
//   - SQLite    words table managed by migrations
//   - BigQuery  table column queried by length
//   - GCS       newline-delimited object in a bucket
//
// An unreadable store fails when the source is constructed; a readable but
// empty store yields an empty slice.

package dictionary

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// Source supplies the initial candidate pool.
type Source interface {
	// ExtractWords returns every word of exactly length runes.
	ExtractWords(ctx context.Context, length int) ([]string, error)
}

var ErrInvalidLength = errors.New("dictionary: word length must be positive")

// scanWords reads one word per line, trims surrounding whitespace and keeps
// words of exactly length runes. Blank lines and "#" comments are skipped.
func scanWords(r io.Reader, length int) ([]string, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return scanLines(r, func(w string) bool { return utf8.RuneCountInString(w) == length })
}

// ReadWords returns every word in r regardless of length, with the same
// trimming and comment rules as the file-backed sources.
func ReadWords(r io.Reader) ([]string, error) {
	return scanLines(r, func(string) bool { return true })
}

func scanLines(r io.Reader, keep func(string) bool) ([]string, error) {
	out := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if keep(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}
