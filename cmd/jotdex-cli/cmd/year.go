package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jotdex/internal/application"
	"jotdex/internal/application/commands"
)

var yearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Generate the yearly index and all monthly indexes",
	Long: `Generate the yearly index for a year, plus a monthly index for
every month folder found under it. With no argument the year is read
from standard input.

Examples:
  jotdex-cli year 2024
  jotdex-cli year`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := yearArg(args)
		if err != nil {
			return err
		}

		ctx := context.Background()
		genCmd := commands.NewYearIndexCommand(GetRepo(), GetRenderer(), author, year)
		result, err := genCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, skip := range result.Skipped {
			fmt.Fprintln(os.Stderr, skip)
		}
		fmt.Println(result.Message)
		fmt.Printf("Wrote %s and %d monthly indexes\n", result.IndexPath, len(result.MonthPaths))
		return nil
	},
}

// yearArg takes the year from args or prompts for it on stdin
func yearArg(args []string) (int, error) {
	if len(args) > 0 {
		return application.ParseYear(args[0])
	}

	fmt.Print("Enter the year (e.g. 2024): ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("failed to read year: %w", err)
	}
	return application.ParseYear(line)
}

func init() {
	rootCmd.AddCommand(yearCmd)
}
