package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jotdex/internal/application"
	"jotdex/internal/application/commands"
)

var monthCmd = &cobra.Command{
	Use:   "month <year> <month>",
	Short: "Generate the index of a single month",
	Long: `Generate the index file of one month folder.

Examples:
  jotdex-cli month 2024 1
  jotdex-cli month 2024 12`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := application.ParseYear(args[0])
		if err != nil {
			return err
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid month: %s", args[1])
		}

		ctx := context.Background()
		genCmd := commands.NewMonthIndexCommand(GetRepo(), GetRenderer(), author, year, month)
		result, err := genCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("Wrote %s\n", result.IndexPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
}
