package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/akyairhashvil/goalpad/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerHeight is the blank, status and help lines under the rows.
const footerHeight = 3

func (m MainModel) View() string {
	if m.prompt.Visible() {
		box := m.prompt.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderRows())
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader emits exactly config.HeaderHeight lines; mouse hit testing
// depends on it.
func (m MainModel) renderHeader() string {
	n := len(m.goals)
	title := fmt.Sprintf("%s | %d %s", config.AppName, n, util.Plural(n, "goal", "goals"))
	lines := []string{
		CurrentTheme.Header.Render(title),
		CurrentTheme.AddButton.Render("+ Add new goal"),
		"",
		CurrentTheme.Dim.Render("Select a goal and press d, or click it, to remove it"),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MainModel) renderRows() string {
	if len(m.goals) == 0 {
		return CurrentTheme.Dim.Render("  No goals yet. Press a to add one.") + "\n"
	}
	var b strings.Builder
	end := m.offset + m.visibleRows()
	if end > len(m.goals) {
		end = len(m.goals)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}
	return b.String()
}

func (m MainModel) rowWidth() int {
	if m.width-2 < config.MinRowWidth {
		return config.MinRowWidth
	}
	return m.width - 2
}

func (m MainModel) renderRow(i int) string {
	g := m.goals[i]
	width := m.rowWidth()
	text := ansi.Truncate(g.Text, width-4, config.TruncationSuffix)
	if i == m.cursor {
		return "> " + CurrentTheme.SelectedGoal.Width(width-2).Render(text)
	}
	return "  " + CurrentTheme.Goal.Width(width-2).Render(text)
}

func (m MainModel) renderFooter() string {
	status := ""
	if m.status != "" {
		if m.statusIsError {
			status = CurrentTheme.Error.Render(m.status)
		} else {
			status = CurrentTheme.Focused.Render(m.status)
		}
	}
	help := m.keys.Help()
	if m.width > 0 {
		help = ansi.Truncate(help, m.width, config.TruncationSuffix)
	}
	return "\n" + status + "\n" + CurrentTheme.Dim.Render(help)
}
