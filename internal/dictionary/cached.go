package dictionary

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadObserver is told about every load that reaches the wrapped source.
type LoadObserver func(length, count int, took time.Duration, err error)

// Cached memoizes another Source per word length. Concurrent misses for the
// same length share one load. Callers get their own copy of the words.
type Cached struct {
	src      Source
	observer LoadObserver

	mu    sync.RWMutex
	words map[int][]string
	gen   uint64
	group singleflight.Group
}

// NewCached wraps src. observer may be nil.
func NewCached(src Source, observer LoadObserver) *Cached {
	return &Cached{src: src, observer: observer, words: make(map[int][]string)}
}

func (c *Cached) ExtractWords(ctx context.Context, length int) ([]string, error) {
	c.mu.RLock()
	words, ok := c.words[length]
	gen := c.gen
	c.mu.RUnlock()
	if ok {
		return slices.Clone(words), nil
	}

	// Shared loads outlive the caller that started them; each caller stops
	// waiting when its own ctx is done.
	loadCtx := context.WithoutCancel(ctx)
	key := strconv.FormatUint(gen, 10) + ":" + strconv.Itoa(length)
	ch := c.group.DoChan(key, func() (any, error) {
		c.mu.RLock()
		words, ok := c.words[length]
		c.mu.RUnlock()
		if ok {
			return words, nil
		}

		start := time.Now()
		words, err := c.src.ExtractWords(loadCtx, length)
		if c.observer != nil {
			c.observer(length, len(words), time.Since(start), err)
		}
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.words[length] = words
		}
		c.mu.Unlock()
		return words, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]string)), nil
	}
}

// Invalidate drops every cached length; loads already in flight are not
// stored.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	c.words = make(map[int][]string)
	c.gen++
	c.mu.Unlock()
}
