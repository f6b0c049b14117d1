package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jotdex/internal/adapters/filesystem"
	"jotdex/internal/adapters/markdown"
	"jotdex/internal/adapters/tui"
	"jotdex/internal/config"
)

func main() {
	repo := filesystem.NewRepository(config.VaultPath(), config.SkipDirs)
	renderer := markdown.NewRenderer()

	app := tui.NewApp(repo, renderer, config.Author())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
