package goals

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/akyairhashvil/goalpad/internal/config"
)

var (
	ErrEmptyText       = errors.New("goal text is empty")
	ErrTextTooLong     = errors.New("goal text is too long")
	ErrUnknownIDScheme = errors.New("unknown id scheme")
)

// ValidateText trims text and checks it is fit to become a goal.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	if n := utf8.RuneCountInString(trimmed); n > config.MaxGoalLength {
		return "", fmt.Errorf("%w: %d > %d characters", ErrTextTooLong, n, config.MaxGoalLength)
	}
	return trimmed, nil
}
