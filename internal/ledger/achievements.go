package ledger

// Progress is the evaluation input for achievement predicates: the
// already-updated stats and the just-appended head of the recent-games
// history. Predicates deliberately see only the latest game, not the
// full history.
type Progress struct {
	Stats  Stats
	Latest *GameRecord
}

// AchievementDef describes one achievement and its unlock predicate.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    func(p Progress) bool
}

// Achievements is the fixed registry, evaluated in order after every
// applied game result.
var Achievements = []AchievementDef{
	{
		ID:          "first_game",
		Name:        "First Game",
		Description: "Complete your first quiz",
		Icon:        "🎮",
		Unlocked:    func(p Progress) bool { return p.Stats.TotalGamesPlayed >= 1 },
	},
	{
		ID:          "perfect_score",
		Name:        "Flawless",
		Description: "Answer every question in a game correctly",
		Icon:        "🏆",
		Unlocked: func(p Progress) bool {
			return p.Latest != nil &&
				p.Latest.TotalQuestions > 0 &&
				p.Latest.CorrectAnswers == p.Latest.TotalQuestions
		},
	},
	{
		ID:          "speed_demon",
		Name:        "Lightning",
		Description: "Answer 5 questions correctly in under 30 seconds",
		Icon:        "⚡",
		Unlocked: func(p Progress) bool {
			return p.Latest != nil &&
				p.Latest.CorrectAnswers >= 5 &&
				p.Latest.TimeTakenSeconds <= 30
		},
	},
	{
		ID:          "streak_5",
		Name:        "On Fire",
		Description: "Reach a streak of 5 perfect games",
		Icon:        "🔥",
		Unlocked:    func(p Progress) bool { return p.Stats.LongestStreak >= 5 },
	},
	{
		ID:          "streak_10",
		Name:        "Unstoppable",
		Description: "Reach a streak of 10 perfect games",
		Icon:        "🔥🔥",
		Unlocked:    func(p Progress) bool { return p.Stats.LongestStreak >= 10 },
	},
	{
		ID:          "level_5",
		Name:        "Rising Star",
		Description: "Reach level 5",
		Icon:        "⭐",
		Unlocked:    func(p Progress) bool { return p.Stats.Level >= 5 },
	},
	{
		ID:          "level_10",
		Name:        "Expert",
		Description: "Reach level 10",
		Icon:        "🌟",
		Unlocked:    func(p Progress) bool { return p.Stats.Level >= 10 },
	},
	{
		ID:          "games_10",
		Name:        "Persistent",
		Description: "Complete 10 quizzes",
		Icon:        "💪",
		Unlocked:    func(p Progress) bool { return p.Stats.TotalGamesPlayed >= 10 },
	},
	{
		ID:          "games_50",
		Name:        "Dedicated",
		Description: "Complete 50 quizzes",
		Icon:        "🎯",
		Unlocked:    func(p Progress) bool { return p.Stats.TotalGamesPlayed >= 50 },
	},
	{
		ID:          "high_score_500",
		Name:        "High Roller",
		Description: "Score 500 points in a single game",
		Icon:        "🚀",
		Unlocked:    func(p Progress) bool { return p.Stats.BestScore >= 500 },
	},
}

// DefByID looks up an achievement definition, or nil if unknown.
func DefByID(id string) *AchievementDef {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
