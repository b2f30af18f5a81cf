package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/dictionary"
)

var countWidth int

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect and manage word lists",
}

var wordsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many words of a given length the configured source holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width := countWidth
		if width == 0 {
			width = cfg.WordLength
		}
		src, closeSrc, err := openSource(cmd.Context(), cfg.Dictionary)
		if err != nil {
			return err
		}
		defer func() { _ = closeSrc() }()

		words, err := src.ExtractWords(cmd.Context(), width)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), len(words))
		return nil
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Append a newline-delimited word list to the SQLite dictionary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		words, err := dictionary.ReadWords(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		db, err := dictionary.OpenSQLite(cmd.Context(), cfg.Dictionary.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Import(cmd.Context(), words)
		if err != nil {
			return err
		}
		log.Info().Str("db", cfg.Dictionary.SQLitePath).Int("words", n).Msg("imported")
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	wordsCountCmd.Flags().IntVar(&countWidth, "width", 0, "word length (default from config)")
	wordsCmd.AddCommand(wordsCountCmd, wordsImportCmd)
}
