package questions

import (
	"github.com/afuentes/quizcoach/internal/quiz"
	"github.com/afuentes/quizcoach/internal/remote"
)

// CategoryInfo is the display metadata for one quiz category.
type CategoryInfo struct {
	ID    quiz.Category
	Name  string
	Icon  string
	Color string
}

// DefaultCatalog returns the built-in category catalog, used when the
// backend offers no override.
func DefaultCatalog() []CategoryInfo {
	return []CategoryInfo{
		{ID: quiz.CategoryGeneral, Name: "General Knowledge", Icon: "🧠", Color: "#6366F1"},
		{ID: quiz.CategoryCoaching, Name: "Coaching", Icon: "🎯", Color: "#14B8A6"},
		{ID: quiz.CategoryWellness, Name: "Wellness", Icon: "🌱", Color: "#22C55E"},
	}
}

// MergeCatalog overlays backend category names onto the built-in
// catalog and appends categories the defaults don't know about. Icons
// and colors stay local; the backend only carries names.
func MergeCatalog(entries []remote.CategoryInfo) []CategoryInfo {
	catalog := DefaultCatalog()
	byID := make(map[quiz.Category]int, len(catalog))
	for i, c := range catalog {
		byID[c.ID] = i
	}
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		id := quiz.Category(e.ID)
		if i, ok := byID[id]; ok {
			if e.Name != "" {
				catalog[i].Name = e.Name
			}
			continue
		}
		catalog = append(catalog, CategoryInfo{ID: id, Name: e.Name, Icon: "❓", Color: "#94A3B8"})
	}
	return catalog
}
