package cmd

import (
	"fmt"

	"github.com/afuentes/quizcoach/internal/app"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases all stats, achievements and history.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		st, svc, err := app.OpenLedger(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := svc.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
