package testutil

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/goalpad/internal/models"
)

// GoalBuilder provides fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			ID:        "goal-test",
			Text:      "Test Goal",
			CreatedAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		},
	}
}

func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.goal.ID = id
	return b
}

func (b *GoalBuilder) WithText(text string) *GoalBuilder {
	b.goal.Text = text
	return b
}

func (b *GoalBuilder) WithCreatedAt(t time.Time) *GoalBuilder {
	b.goal.CreatedAt = t
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	return b.goal
}

// Goals builds one goal per text with sequential ids goal-1, goal-2, ...
func Goals(texts ...string) []models.Goal {
	out := make([]models.Goal, 0, len(texts))
	for i, text := range texts {
		out = append(out, NewGoal().WithID(fmt.Sprintf("goal-%d", i+1)).WithText(text).Build())
	}
	return out
}
