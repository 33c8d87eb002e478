package tui

import "github.com/akyairhashvil/goalpad/internal/models"

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui

// GoalStore defines the goal list operations the TUI requires.
type GoalStore interface {
	Add(text string) models.Goal
	Remove(id string) bool
	List() []models.Goal
}
