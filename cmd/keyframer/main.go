package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"keyframer/internal/adapters/clipboard"
	"keyframer/internal/adapters/editor"
	"keyframer/internal/adapters/filesystem"
	"keyframer/internal/adapters/tui"
	"keyframer/internal/application"
	"keyframer/internal/application/commands"
	"keyframer/internal/config"
	"keyframer/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.ProjectFile = os.Args[1]
	}
	cfg.ProjectFile = application.EnsureJSONExt(filesystem.ExpandPath(cfg.ProjectFile))

	// Initialize adapters
	store := filesystem.NewStore()
	editorOpener := editor.NewOpener()

	var clip ports.Clipboard
	if sys := clipboard.NewSystem(); sys.Available() {
		clip = sys
	}

	project, err := commands.NewOpenProjectCommand(store, cfg.ProjectFile).Execute(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create and run TUI app
	app := tui.NewApp(project.Timeline, store, clip, editorOpener, cfg)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
