package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/dictionary"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP session API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	src, closeSrc, err := openSource(ctx, cfg.Dictionary)
	if err != nil {
		return err
	}
	defer func() { _ = closeSrc() }()

	cached := dictionary.NewCached(src, metrics.DictionaryLoaded)
	if tf, ok := src.(*dictionary.TextFile); ok && cfg.Dictionary.Watch {
		if err := dictionary.WatchFile(ctx, tf.Path(), cached.Invalidate); err != nil {
			return err
		}
	}
	// warm the default width so the first session does not pay for the load
	if words, err := cached.ExtractWords(ctx, cfg.WordLength); err != nil {
		log.Warn().Err(err).Msg("initial word load failed")
	} else {
		log.Info().Str("dictionary", cfg.Dictionary.Kind).Int("width", cfg.WordLength).Int("words", len(words)).Msg("word list loaded")
	}

	st, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	srv := httpserver.New(httpserver.Options{
		Dictionary:     cached,
		Store:          st,
		WordLength:     cfg.WordLength,
		SuggestLimit:   cfg.SuggestLimit,
		AuthSecretHash: cfg.Auth.SecretHash,
		JWTSecret:      cfg.Auth.JWTSecret,
		TokenTTL:       time.Duration(cfg.Auth.ExpiresHours) * time.Hour,
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Kind).Bool("auth", cfg.Auth.Enabled()).Msg("starting wordle-solver")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
