package remote

import "context"

// StatsSubmission is the session result posted to the backend.
// Submission is best-effort; the local ledger is the source of truth.
type StatsSubmission struct {
	Score            int     `json:"score"`
	CorrectAnswers   int     `json:"correctAnswers"`
	TotalQuestions   int     `json:"totalQuestions"`
	Category         string  `json:"category"`
	Difficulty       string  `json:"difficulty"`
	TimeTakenSeconds float64 `json:"timeTaken"`
	XPGained         int     `json:"xpGained"`
}

// SubmitStats posts a finished session's result to the backend.
func (c *Client) SubmitStats(ctx context.Context, sub StatsSubmission) error {
	return c.postJSON(ctx, "/minigame/stats", sub)
}
