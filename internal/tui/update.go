package tui

import (
	"fmt"

	"github.com/akyairhashvil/goalpad/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// addButtonLine is the screen line of the "Add new goal" button.
const addButtonLine = 1

type reportExportedMsg struct {
	path string
	err  error
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.RegisterAliases([]string{"a", "n"}, "add", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		cmd := m.openPrompt()
		return m, cmd, true
	})
	r.RegisterAliases([]string{"up", "k"}, "up", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.moveCursor(-1)
		return m, nil, true
	})
	r.RegisterAliases([]string{"down", "j"}, "down", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.moveCursor(1)
		return m, nil, true
	})
	r.RegisterAliases([]string{"home", "g"}, "", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.moveCursor(-len(m.goals))
		return m, nil, true
	})
	r.RegisterAliases([]string{"end", "G"}, "", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.moveCursor(len(m.goals))
		return m, nil, true
	})
	r.RegisterAliases([]string{"d", "x", "enter", "backspace", "delete"}, "delete", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.deleteSelected()
		return m, nil, true
	})
	r.RegisterAliases([]string{"t"}, "theme", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.cycleTheme()
		return m, nil, true
	})
	r.RegisterAliases([]string{"p"}, "pdf", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		cmd := m.exportReport()
		return m, cmd, true
	})
	r.RegisterAliases([]string{"q"}, "quit", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	})
	return r
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil
	case reportExportedMsg:
		m.exporting = false
		if msg.err != nil {
			util.LogError("export report", msg.err)
			m.setStatusError(fmt.Sprintf("Error exporting report: %v", msg.err))
		} else {
			util.Logf("report exported path=%s", msg.path)
			m.setStatus("Report saved to " + msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.prompt.Visible() {
			return m.updatePrompt(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case tea.MouseMsg:
		if m.prompt.Visible() {
			return m, nil
		}
		return m.handleMouse(msg)
	}

	// Cursor blink and other input messages.
	if m.prompt.Visible() {
		return m.updatePrompt(msg)
	}
	return m, nil
}

func (m MainModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		action promptAction
		cmd    tea.Cmd
	)
	m.prompt, action, cmd = m.prompt.Update(msg)
	switch action {
	case promptConfirm:
		m.confirmPrompt()
	case promptCancel:
		m.cancelPrompt()
	}
	return m, cmd
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	case tea.MouseButtonLeft:
		if msg.Y == addButtonLine {
			cmd := m.openPrompt()
			return m, cmd
		}
		if g, ok := m.goalAtLine(msg.Y); ok {
			m.deleteGoal(g.ID)
		}
	}
	return m, nil
}

// exportReport writes the PDF off the update loop and reports back with a
// reportExportedMsg.
func (m *MainModel) exportReport() tea.Cmd {
	if m.exporting {
		return nil
	}
	goals := m.store.List()
	if len(goals) == 0 {
		m.setStatusError("Nothing to export yet")
		return nil
	}
	m.exporting = true
	m.setStatus("Exporting report...")
	dir, now := m.reportsDir, m.now()
	return func() tea.Msg {
		path, err := GeneratePDFReport(goals, dir, now)
		return reportExportedMsg{path: path, err: err}
	}
}
