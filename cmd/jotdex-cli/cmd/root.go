package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jotdex/internal/adapters/filesystem"
	"jotdex/internal/adapters/markdown"
	"jotdex/internal/config"
	"jotdex/internal/ports"
)

var (
	vaultPath string
	author    string
	repo      ports.JournalRepository
	renderer  ports.IndexRenderer
)

var rootCmd = &cobra.Command{
	Use:   "jotdex-cli",
	Short: "CLI for generating daily-notes vault indexes",
	Long: `jotdex-cli generates Markdown index files for a daily-notes vault
organized by year and month (<vault>/<year>/<yearmonth>/<note>.md).

It provides commands to generate the yearly index with statistics and
table of contents, per-month indexes, a vault-wide overview, and to
print note counts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = filesystem.NewRepository(vaultPath, config.SkipDirs)
		renderer = markdown.NewRenderer()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
	rootCmd.PersistentFlags().StringVarP(&author, "author", "a", config.Author(), "author written into generated metadata")
}

// GetRepo returns the initialized repository
func GetRepo() ports.JournalRepository {
	return repo
}

// GetRenderer returns the initialized renderer
func GetRenderer() ports.IndexRenderer {
	return renderer
}
