package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/hint"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	solveWidth  int
	solveLimit  int
	solveAnswer string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Interactively narrow the candidates from guess feedback",
	Long: `Enter each guess followed by its feedback pattern, one letter per tile:
  g = green (right spot), y = yellow (elsewhere), b = grey (not in the word)

  > crane bbygb

With --answer the feedback is computed for you and only the guess is typed.
Type "list" to print every candidate, "quit" to leave.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width := solveWidth
		if width == 0 {
			width = cfg.WordLength
		}
		limit := solveLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.SuggestLimit
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
		return runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), words, solveOptions{
			width:  width,
			limit:  limit,
			answer: solveAnswer,
		})
	},
}

func init() {
	solveCmd.Flags().IntVar(&solveWidth, "width", 0, "letters per word (default from config)")
	solveCmd.Flags().IntVar(&solveLimit, "limit", 10, "suggestions shown per turn, 0 for all")
	solveCmd.Flags().StringVar(&solveAnswer, "answer", "", "practice against a known answer")
}

type solveOptions struct {
	width  int
	limit  int
	answer string
}

var (
	tileBase   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("231"))
	tileStyles = map[hint.Mark]lipgloss.Style{
		hint.MarkHit:     tileBase.Background(lipgloss.Color("28")),
		hint.MarkPresent: tileBase.Background(lipgloss.Color("178")),
		hint.MarkMiss:    tileBase.Background(lipgloss.Color("240")),
	}
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func renderTiles(word string, marks []hint.Mark) string {
	tiles := make([]string, 0, len(marks))
	i := 0
	for _, r := range strings.ToUpper(word) {
		tiles = append(tiles, tileStyles[marks[i]].Render(string(r)))
		i++
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func showCandidates(out io.Writer, engine *solver.Simple, limit int) {
	words := engine.Suggest()
	more := ""
	if limit > 0 && len(words) > limit {
		more = dimStyle.Render(fmt.Sprintf(" … %d more", len(words)-limit))
		words = words[:limit]
	}
	fmt.Fprintf(out, "%d candidates: %s%s\n", engine.RemainingCount(), strings.Join(words, " "), more)
}

// runSolve drives one interactive solving session over in/out.
func runSolve(ctx context.Context, in io.Reader, out io.Writer, words []string, opts solveOptions) error {
	answer := strings.ToLower(strings.TrimSpace(opts.answer))
	if answer != "" && utf8.RuneCountInString(answer) != opts.width {
		return fmt.Errorf("answer %q is not %d letters", answer, opts.width)
	}
	engine, err := solver.New(opts.width, words)
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	turns := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch engine.RemainingCount() {
		case 0:
			fmt.Fprintln(out, "no candidates left; check the feedback you entered")
			return nil
		case 1:
			fmt.Fprintf(out, "solved: %s\n", engine.Suggest()[0])
			return nil
		}
		showCandidates(out, engine, opts.limit)

		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		fields := strings.Fields(strings.ToLower(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "list":
			showCandidates(out, engine, 0)
			continue
		}

		guess := fields[0]
		var marks []hint.Mark
		if answer != "" {
			marks, err = hint.Score(answer, guess)
		} else if len(fields) != 2 {
			err = errors.New("expected: <guess> <pattern>")
		} else {
			marks, err = hint.ParsePattern(fields[1])
		}
		if err == nil && len(marks) != utf8.RuneCountInString(guess) {
			err = hint.ErrLengthMismatch
		}
		var hints []hint.Hint
		if err == nil {
			hints, err = hint.FromMarks(guess, marks)
		}
		if err == nil {
			err = engine.AddHint(guess, hints)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		turns++
		fmt.Fprintln(out, renderTiles(guess, marks))
		if hint.AllHit(marks) {
			fmt.Fprintf(out, "solved: %s (%d guesses)\n", guess, turns)
			return nil
		}
	}
}
