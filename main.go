package main

import (
	"fmt"
	"os"

	"tabulo/cmd"
	"tabulo/internal/db"
	"tabulo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.Version {
		fmt.Println("tabulo " + version)
		return
	}

	database, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !config.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(ui.New(database), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
