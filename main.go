// main.go
//
// Entry point for the wordle-solver binary.
// Responsibilities:
//   - Build the cobra command tree (serve, solve, words, hash-secret).
//   - Load configuration once before any command runs.
//   - Configure the global zerolog logger (JSON for serve, console otherwise).

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
)

var (
	configPath string
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Narrow down Wordle answers from guess feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			if cmd.Name() != "serve" {
				log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $CONFIG_FILE)")
	rootCmd.AddCommand(serveCmd, solveCmd, wordsCmd, hashSecretCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("wordle-solver")
	}
}
