package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/store"
	"github.com/mhartveld/sprintdeck/internal/tui"
	"github.com/mhartveld/sprintdeck/internal/util"
	"golang.org/x/term"
)

func main() {
	theme := os.Getenv("SPRINTDECK_THEME")
	if theme != "" {
		tui.SetTheme(theme)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sprintdeck needs an interactive terminal.")
		os.Exit(1)
	}

	repo, seed := store.Seeded()
	model := tui.NewDashboardModel(repo, seed)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	util.MustSucceed("run dashboard", err)
}
