package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jotdex/internal/application/commands"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Generate the vault-wide overview",
	Long: `Walk the whole vault and write overview.md at its root: a
hierarchical list of folders and notes with character counts.
Configuration and trash folders are skipped.

Example:
  jotdex-cli overview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		genCmd := commands.NewOverviewCommand(GetRepo(), GetRenderer(), author)
		result, err := genCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, skip := range result.Skipped {
			fmt.Fprintln(os.Stderr, skip)
		}
		fmt.Println(result.Message)
		fmt.Printf("Wrote %s\n", result.IndexPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
