package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jotdex/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats [year]",
	Short: "Print note counts for a year without writing anything",
	Long: `Count notes per month for a year. Nothing is written; use this
to preview what the yearly index would report.

Examples:
  jotdex-cli stats 2024
  jotdex-cli stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := yearArg(args)
		if err != nil {
			return err
		}

		ctx := context.Background()
		countCmd := commands.NewStatsCommand(GetRepo(), year)
		result, err := countCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, skip := range result.Skipped {
			fmt.Fprintln(os.Stderr, skip)
		}
		fmt.Printf("Total number of notes in %d: %d\n", result.Summary.Year, result.Summary.TotalNotes())
		for _, m := range result.Summary.Months {
			fmt.Printf("%s: %d notes\n", m.Month.Name(), len(m.Notes))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
