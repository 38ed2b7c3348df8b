package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chemiz/chemiz/internal/substance"
	"github.com/chemiz/chemiz/internal/ui/components"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List substances (optionally filtered by search text or category)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := loadContent(cfg)
		if err != nil {
			return err
		}

		items := c.dataset.Search(query)
		if category != "" {
			items = substance.FilterCategory(items, substance.Category(category))
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No substances match.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), components.Table(
			[]string{"이름", "시성식", "별칭", "분류"}, substanceRows(items), -1, 0))
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d substances\n", len(items))
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "Filter by name, alias or formula")
	listCmd.Flags().String("category", "", "Filter by category (무기물, 탄화수소, 유기 화합물, 산)")
}

func substanceRows(items []substance.Substance) [][]string {
	rows := make([][]string, len(items))
	for i, s := range items {
		rows[i] = []string{s.Name, s.Formula, strings.Join(s.Aliases, ", "), string(s.Category)}
	}
	return rows
}
