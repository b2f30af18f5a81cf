package dictionary

import (
	"context"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Embedded serves the word list compiled into the binary.
type Embedded struct{}

func NewEmbedded() *Embedded { return &Embedded{} }

func (Embedded) ExtractWords(ctx context.Context, length int) ([]string, error) {
	f, err := assets.OpenWordList()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanWords(f, length)
}
