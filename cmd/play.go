package cmd

import (
	"fmt"

	"github.com/afuentes/quizcoach/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp resolves the database path and launches the TUI. Shared by
// the bare root command and `play`.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	return app.Run(app.Options{DBPath: dbPath})
}
