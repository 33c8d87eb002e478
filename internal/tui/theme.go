package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Border        lipgloss.Color
	Header        lipgloss.Style
	Goal          lipgloss.Style
	SelectedGoal  lipgloss.Style
	AddButton     lipgloss.Style
	Prompt        lipgloss.Style
	Input         lipgloss.Style
	ConfirmButton lipgloss.Style
	CancelButton  lipgloss.Style
	IdleButton    lipgloss.Style
	Error         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Border:        lipgloss.Color("#5e0acc"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("#b180f0")).Bold(true),
		Goal:          lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#5e0acc")).Padding(0, 1),
		SelectedGoal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#8a3ff0")).Bold(true).Padding(0, 1),
		AddButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#a065ec")).Bold(true).Padding(0, 1),
		Prompt:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5e0acc")).Background(lipgloss.Color("#311b6b")).Padding(1, 2),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#cccccc")).Foreground(lipgloss.Color("#120438")).Background(lipgloss.Color("#e4d0ff")).Padding(0, 1),
		ConfirmButton: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#5e0acc")).Bold(true).Padding(0, 2),
		CancelButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#f31282")).Bold(true).Padding(0, 2),
		IdleButton:    lipgloss.NewStyle().Foreground(lipgloss.Color("#cccccc")).Padding(0, 2),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("#f31282")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e4d0ff")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:          "Dracula",
		Border:        lipgloss.Color("62"),                                           // Purple
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Goal:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Padding(0, 1),
		SelectedGoal:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Background(lipgloss.Color("239")).Bold(true).Padding(0, 1), // Pink
		AddButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")).Bold(true).Padding(0, 1),
		Prompt:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		ConfirmButton: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("120")).Bold(true).Padding(0, 2), // Green
		CancelButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("210")).Bold(true).Padding(0, 2), // Red/Pink
		IdleButton:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 2),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// CurrentTheme holds the currently active theme.
var (
	CurrentTheme     = Themes["default"]
	currentThemeName = "default"
)

// SetTheme switches the active theme, reporting false for unknown names.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentTheme = t
	currentThemeName = name
	return true
}

// CurrentThemeName is the key of the active theme in Themes.
func CurrentThemeName() string {
	return currentThemeName
}

// ThemeNames lists the theme keys in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the theme key after current, wrapping around.
func NextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
