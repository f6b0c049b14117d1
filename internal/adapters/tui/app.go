package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jotdex/internal/adapters/tui/styles"
	"jotdex/internal/application"
	"jotdex/internal/application/commands"
	"jotdex/internal/domain"
	"jotdex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPrompt ViewState = iota
	ViewReport
)

// App is the main TUI application model
type App struct {
	repo     ports.JournalRepository
	renderer ports.IndexRenderer
	author   string

	state ViewState
	input textinput.Model

	result   *commands.YearIndexResult
	overview *commands.OverviewResult
	message  string
	isErr    bool

	width  int
	height int
}

type yearResultMsg struct {
	result *commands.YearIndexResult
	err    error
}

type overviewResultMsg struct {
	result *commands.OverviewResult
	err    error
}

// NewApp creates a new TUI application
func NewApp(repo ports.JournalRepository, renderer ports.IndexRenderer, author string) *App {
	input := textinput.New()
	input.Placeholder = "2024"
	input.CharLimit = 4
	input.Focus()

	return &App{
		repo:     repo,
		renderer: renderer,
		author:   author,
		state:    ViewPrompt,
		input:    input,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case yearResultMsg:
		if msg.err != nil {
			a.setMessage(msg.err.Error(), true)
			return a, nil
		}
		a.result = msg.result
		a.overview = nil
		a.state = ViewReport
		a.setMessage(msg.result.Message, false)
		return a, nil

	case overviewResultMsg:
		if msg.err != nil {
			a.setMessage(msg.err.Error(), true)
			return a, nil
		}
		a.overview = msg.result
		a.result = nil
		a.state = ViewReport
		a.setMessage(msg.result.Message, false)
		return a, nil

	case tea.KeyMsg:
		if a.state == ViewPrompt {
			switch msg.String() {
			case "ctrl+c", "esc":
				return a, tea.Quit
			case "enter":
				return a, a.generateYear(a.input.Value())
			case "ctrl+o":
				return a, a.generateOverview()
			}
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit

		case "esc":
			a.state = ViewPrompt
			a.setMessage("", false)
			return a, nil

		case "o":
			return a, a.generateOverview()

		case "c":
			if a.result != nil {
				link := domain.WikiLink(fmt.Sprintf("Overview %d DailyNotes", a.result.Summary.Year), "")
				if err := clipboard.WriteAll(link); err != nil {
					a.setMessage(fmt.Sprintf("copy failed: %v", err), true)
				} else {
					a.setMessage(fmt.Sprintf("Copied %s", link), false)
				}
			}
			return a, nil
		}
	}

	if a.state == ViewPrompt {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View renders the application
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("jotdex"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(a.repo.VaultRoot()))
	b.WriteString("\n\n")

	switch a.state {
	case ViewPrompt:
		b.WriteString(styles.InputLabel.Render("Year to index"))
		b.WriteString("\n")
		b.WriteString(a.input.View())
		b.WriteString("\n")
		b.WriteString(styles.Help.Render("enter generate · ctrl+o vault overview · esc quit"))

	case ViewReport:
		if a.result != nil {
			b.WriteString(a.yearReport())
			b.WriteString(styles.Help.Render("c copy link · o vault overview · esc back · q quit"))
		} else if a.overview != nil {
			b.WriteString(a.overviewReport())
			b.WriteString(styles.Help.Render("esc back · q quit"))
		}
	}

	if a.message != "" {
		b.WriteString("\n\n")
		if a.isErr {
			b.WriteString(styles.ErrorMessage.Render(a.message))
		} else {
			b.WriteString(styles.Message.Render(a.message))
		}
	}

	return styles.App.Render(b.String())
}

func (a *App) yearReport() string {
	var b strings.Builder
	summary := a.result.Summary

	b.WriteString(styles.StatTotal.Render(
		fmt.Sprintf("Total number of notes in %d: %d", summary.Year, summary.TotalNotes())))
	b.WriteString("\n\n")
	for _, m := range summary.Months {
		b.WriteString(styles.StatLine.Render(fmt.Sprintf("%-10s %d notes", m.Month.Name(), len(m.Notes))))
		b.WriteString("\n")
	}
	for _, skip := range a.result.Skipped {
		b.WriteString(styles.ErrorMessage.Render(skip.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.PathLine.Render(a.result.IndexPath))
	b.WriteString("\n")

	return b.String()
}

func (a *App) overviewReport() string {
	var b strings.Builder

	b.WriteString(styles.StatTotal.Render(a.overview.Message))
	b.WriteString("\n\n")
	for _, skip := range a.overview.Skipped {
		b.WriteString(styles.ErrorMessage.Render(skip.Error()))
		b.WriteString("\n")
	}
	b.WriteString(styles.PathLine.Render(a.overview.IndexPath))
	b.WriteString("\n")

	return b.String()
}

func (a *App) setMessage(msg string, isErr bool) {
	a.message = msg
	a.isErr = isErr
}

func (a *App) generateYear(value string) tea.Cmd {
	return func() tea.Msg {
		year, err := application.ParseYear(value)
		if err != nil {
			return yearResultMsg{err: err}
		}
		cmd := commands.NewYearIndexCommand(a.repo, a.renderer, a.author, year)
		result, err := cmd.Execute(context.Background())
		return yearResultMsg{result: result, err: err}
	}
}

func (a *App) generateOverview() tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewOverviewCommand(a.repo, a.renderer, a.author)
		result, err := cmd.Execute(context.Background())
		return overviewResultMsg{result: result, err: err}
	}
}
