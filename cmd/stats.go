package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missedLimit, _ := cmd.Flags().GetInt("missed")

		s, err := openJournal(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		repo := s.EventRepo()

		stats, err := repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if stats.Attempts == 0 && stats.Sessions == 0 {
			fmt.Fprintln(out, "No attempts recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "Sessions  %d\n", stats.Sessions)
		fmt.Fprintf(out, "Attempts  %d\n", stats.Attempts)
		fmt.Fprintf(out, "Correct   %d (%.0f%%)\n", stats.Correct, stats.Accuracy()*100)

		if len(stats.ByKind) > 0 {
			kinds := make([]string, 0, len(stats.ByKind))
			for k := range stats.ByKind {
				kinds = append(kinds, k)
			}
			slices.Sort(kinds)

			fmt.Fprintln(out)
			fmt.Fprintln(out, "By Question Kind")
			fmt.Fprintln(out, strings.Repeat("─", 48))
			fmt.Fprintf(out, "%-24s  %8s  %8s  %4s\n", "Kind", "Attempts", "Correct", "%")
			fmt.Fprintln(out, strings.Repeat("─", 48))
			for _, k := range kinds {
				ks := stats.ByKind[k]
				pct := 0.0
				if ks.Attempts > 0 {
					pct = float64(ks.Correct) / float64(ks.Attempts) * 100
				}
				fmt.Fprintf(out, "%-24s  %8d  %8d  %3.0f%%\n", k, ks.Attempts, ks.Correct, pct)
			}
		}

		if missedLimit <= 0 {
			return nil
		}
		missed, err := repo.MostMissed(ctx, missedLimit)
		if err != nil {
			return fmt.Errorf("query most missed: %w", err)
		}
		if len(missed) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Most Missed")
			fmt.Fprintln(out, strings.Repeat("─", 48))
			for _, m := range missed {
				fmt.Fprintf(out, "%3d×  %s  (%s)\n", m.Misses, m.Prompt, m.Expected)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("missed", 5, "Number of most missed prompts to show (0 hides them)")
}
