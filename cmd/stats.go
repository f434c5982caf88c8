package cmd

import (
	"fmt"

	"github.com/afuentes/quizcoach/internal/app"
	"github.com/afuentes/quizcoach/internal/ledger"
	"github.com/afuentes/quizcoach/internal/remote"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print game statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		st, svc, err := app.OpenLedger(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		view := svc.View()
		s := view.Stats

		if s.TotalGamesPlayed == 0 {
			fmt.Println("No games played yet.")
			return nil
		}

		fmt.Printf("Level:           %d (%d XP, %d to next)\n", s.Level, s.ExperiencePoints, s.XPToNextLevel)
		fmt.Printf("Games played:    %d\n", s.TotalGamesPlayed)
		fmt.Printf("Best score:      %d\n", s.BestScore)
		fmt.Printf("Average score:   %.1f\n", s.AverageScore)
		fmt.Printf("Accuracy:        %.0f%% (%d/%d)\n", s.Accuracy, s.TotalCorrectAnswers, s.TotalQuestionsAnswered)
		fmt.Printf("Current streak:  %d perfect games\n", s.CurrentStreak)
		fmt.Printf("Longest streak:  %d\n", s.LongestStreak)
		fmt.Printf("Achievements:    %d/%d\n", len(view.Achievements), len(ledger.Achievements))

		if len(view.CategoryStats) > 0 {
			fmt.Println("\nCategories:")
			for cat, cs := range view.CategoryStats {
				fmt.Printf("  %-10s %d games, best %d, %.0f%% accuracy\n",
					cat, cs.GamesPlayed, cs.BestScore, cs.Accuracy)
			}
		}

		if len(view.RecentGames) > 0 {
			fmt.Println("\nRecent games:")
			for _, g := range view.RecentGames {
				fmt.Printf("  %s  %-10s %-6s  %d pts  %d/%d  +%d XP\n",
					g.PlayedAt.Format("2006-01-02"), g.Category, g.Difficulty,
					g.Score, g.CorrectAnswers, g.TotalQuestions, g.XPGained)
			}
		}

		if lb, _ := cmd.Flags().GetBool("leaderboard"); lb {
			printLeaderboard(cmd)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("leaderboard", false, "Also fetch the global leaderboard (needs QUIZCOACH_API_URL)")
}

// printLeaderboard is best effort: a missing or unreachable backend
// prints a notice, never a failure.
func printLeaderboard(cmd *cobra.Command) {
	baseURL := remote.BaseURLFromEnv()
	if baseURL == "" {
		fmt.Println("\nLeaderboard unavailable: QUIZCOACH_API_URL not set.")
		return
	}

	client := remote.NewClient(baseURL, remote.DefaultTimeout)
	entries, err := client.Leaderboard(cmd.Context(), 10)
	if err != nil {
		fmt.Printf("\nLeaderboard unavailable: %v\n", err)
		return
	}

	fmt.Println("\nLeaderboard:")
	for _, e := range entries {
		fmt.Printf("  %2d. %-20s %6d pts  Lv %d\n", e.Rank, e.DisplayName, e.Score, e.Level)
	}
}
