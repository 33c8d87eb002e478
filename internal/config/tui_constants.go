package config

// Layout constants.
const (
	// HeaderHeight is the number of lines rendered above the first goal row.
	HeaderHeight = 4

	// MinRowWidth is the narrowest a goal row is rendered.
	MinRowWidth = 20

	// PromptWidth is the width of the goal input field.
	PromptWidth = 40
)

// Display limits.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxGoalLength is the maximum goal text length in runes.
	MaxGoalLength = 120
)

// Prompt copy.
const (
	PromptPlaceholder = "Your course goal!"
	PromptConfirm     = "Add goal"
	PromptCancel      = "Cancel"
)
