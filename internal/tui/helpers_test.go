package tui

import (
	"testing"

	"github.com/akyairhashvil/goalpad/internal/goals"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTestModel(t *testing.T, texts ...string) (MainModel, *goals.Store) {
	t.Helper()
	store := goals.NewStore(goals.WithIDFunc(goals.NewCounterIDs()))
	for _, text := range texts {
		store.Add(text)
	}
	m := NewMainModel(store, Options{ReportsDir: t.TempDir()})
	return m, store
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, key := range keys {
		var model tea.Model
		model, cmd = m.Update(keyMsg(key))
		m = model.(MainModel)
	}
	return m, cmd
}

func click(t *testing.T, m MainModel, y int) MainModel {
	t.Helper()
	model, _ := m.Update(tea.MouseMsg{X: 4, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return model.(MainModel)
}

func resize(t *testing.T, m MainModel, width, height int) MainModel {
	t.Helper()
	model, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return model.(MainModel)
}

func goalTexts(m MainModel) []string {
	out := make([]string, 0, len(m.goals))
	for _, g := range m.goals {
		out = append(out, g.Text)
	}
	return out
}
