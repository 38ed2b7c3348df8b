package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chemiz/chemiz/internal/quiz"
	"github.com/chemiz/chemiz/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer generated questions in plain text (no journal)",
	Args:  cobra.NoArgs,
	Long: `Generate and interactively answer questions without the full-screen UI.

Nothing is written to the journal. Useful for checking a custom dataset.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("theme", "", "Question family: basic or concept (default from config)")
	previewCmd.Flags().String("mode", "", "Answer mode: short or choice (default from config)")
	previewCmd.Flags().Int("count", 5, "Number of questions to ask")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("theme"); v != "" {
		cfg.Quiz.Theme = v
	}
	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		cfg.Quiz.Mode = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}

	state, err := session.New(session.Options{
		Source:         c.generator,
		Matcher:        c.dataset.Index(),
		Theme:          c.theme,
		Mode:           c.mode,
		AdvanceConcept: true,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "%s · %s, %d questions\n\n", c.theme.Label(), c.mode.Label(), count)

	for i := 1; i <= count; i++ {
		q := state.Ensure()

		fmt.Fprintf(out, "── Question %d/%d ──\n", i, count)
		fmt.Fprintln(out, q.Prompt())
		if image, desc, ok := quiz.Structure(q); ok {
			if image != nil {
				fmt.Fprintln(out, image.Render())
			} else {
				fmt.Fprintln(out, "구조 특징:", desc)
			}
		}
		choices := q.Choices()
		for j, choice := range choices {
			fmt.Fprintf(out, "  %d) %s\n", j+1, choice)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Fprintln(out, "(skipped)")
			fmt.Fprintln(out)
			state.NewQuestion()
			continue
		}
		input = pickChoice(input, choices)

		outcome, err := state.Submit(input)
		if err != nil {
			return err
		}
		if outcome.Correct {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Wrong. Answer: %s\n", outcome.Expected)
			fmt.Fprintln(out, "Explanation:", q.Explanation())
			state.NewQuestion()
		}
		fmt.Fprintln(out)
	}

	sum := session.BuildSummary(state)
	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", sum.Score, sum.Total)
	return nil
}

// pickChoice maps a 1-based option number to the option text. Anything else
// is returned unchanged.
func pickChoice(input string, choices []string) string {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(choices) {
		return input
	}
	return choices[n-1]
}
