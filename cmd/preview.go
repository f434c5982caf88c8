package cmd

import (
	"fmt"

	"github.com/afuentes/quizcoach/internal/questions"
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/spf13/cobra"
)

// previewCmd fetches questions from the embedded bank and prints them,
// for inspecting bank content without playing.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print sample questions from the embedded bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		bank, err := questions.NewLocalBank(nil)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		qs, err := bank.Fetch(cmd.Context(), questions.Request{
			Category:   quiz.Category(category),
			Difficulty: quiz.Difficulty(difficulty),
			Count:      count,
		})
		if err != nil {
			return err
		}
		if len(qs) == 0 {
			fmt.Println("No matching questions.")
			return nil
		}

		for i, q := range qs {
			fmt.Printf("%d. [%s/%s] %s\n", i+1, q.Category, q.Difficulty, q.Prompt)
			for j, opt := range q.Options {
				marker := " "
				if j == q.CorrectIndex {
					marker = "*"
				}
				fmt.Printf("   %s %c) %s\n", marker, 'a'+j, opt)
			}
			if q.Explanation != "" {
				fmt.Printf("   → %s\n", q.Explanation)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().String("category", "", "Filter by category (general, coaching, wellness)")
	previewCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")
	previewCmd.Flags().Int("count", 5, "Number of questions to print")
}
