package main

import (
	"context"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/dictionary"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func noClose() error { return nil }

// openSource builds the configured word source. The returned close func is
// always non-nil.
func openSource(ctx context.Context, d config.Dictionary) (dictionary.Source, func() error, error) {
	switch d.Kind {
	case config.DictionaryEmbedded:
		return dictionary.NewEmbedded(), noClose, nil
	case config.DictionaryFile:
		src, err := dictionary.NewTextFile(d.Path)
		if err != nil {
			return nil, noClose, err
		}
		return src, noClose, nil
	case config.DictionarySQLite:
		src, err := dictionary.OpenSQLite(ctx, d.SQLitePath)
		if err != nil {
			return nil, noClose, err
		}
		return src, src.Close, nil
	case config.DictionaryBigQuery:
		src, err := dictionary.NewBigQuery(ctx, d.BigQueryProject, d.BigQueryTable, d.BigQueryColumn)
		if err != nil {
			return nil, noClose, err
		}
		return src, src.Close, nil
	case config.DictionaryGCS:
		src, err := dictionary.NewGCS(ctx, d.GCSBucket, d.GCSObject, d.GCSCredentialsFile)
		if err != nil {
			return nil, noClose, err
		}
		return src, src.Close, nil
	default:
		return nil, noClose, fmt.Errorf("unknown dictionary kind %q", d.Kind)
	}
}

func openStore(s config.Store) (store.Store, error) {
	switch s.Kind {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreBadger:
		return store.OpenBadger(store.BadgerConfig{Path: s.BadgerPath, SyncWrites: true})
	default:
		return nil, fmt.Errorf("unknown store kind %q", s.Kind)
	}
}
