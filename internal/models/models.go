package models

import "time"

// Goal represents a single user-entered goal. Goals are immutable once created.
type Goal struct {
	ID        string
	Text      string
	CreatedAt time.Time
}
