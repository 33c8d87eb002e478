package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/akyairhashvil/goalpad/internal/goals"
	"github.com/akyairhashvil/goalpad/internal/models"
	"github.com/akyairhashvil/goalpad/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the root screen.
type Options struct {
	ReportsDir string
	Mouse      bool
	Now        func() time.Time
}

// MainModel is the root bubbletea model: the goal list plus the input prompt.
type MainModel struct {
	store  GoalStore
	goals  []models.Goal // snapshot of store.List(), refreshed after each mutation
	prompt PromptModel
	keys   *HandlerRegistry

	cursor int
	offset int
	width  int
	height int

	status        string
	statusIsError bool
	exporting     bool

	reportsDir string
	now        func() time.Time
}

func NewMainModel(store GoalStore, opts Options) MainModel {
	m := MainModel{
		store:      store,
		prompt:     NewPromptModel(),
		keys:       defaultBindings(),
		reportsDir: opts.ReportsDir,
		now:        opts.Now,
	}
	if m.reportsDir == "" {
		m.reportsDir = util.ReportsDir(config.AppName)
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.refresh()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return nil
}

// PromptVisible reports whether the input prompt is shown.
func (m MainModel) PromptVisible() bool {
	return m.prompt.Visible()
}

// Goals returns the goals as currently rendered.
func (m MainModel) Goals() []models.Goal {
	return m.goals
}

func (m *MainModel) refresh() {
	m.goals = m.store.List()
	if len(m.goals) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, len(m.goals)-1)
	m.ensureCursorVisible()
}

func (m *MainModel) setStatus(msg string) {
	m.status = msg
	m.statusIsError = false
}

func (m *MainModel) setStatusError(msg string) {
	m.status = msg
	m.statusIsError = true
}

// openPrompt handles the "Add new goal" gesture.
func (m *MainModel) openPrompt() tea.Cmd {
	m.status = ""
	return m.prompt.Open()
}

// confirmPrompt adds the draft as a goal and hides the prompt. A blank or
// oversized draft keeps the prompt open with the validation error.
func (m *MainModel) confirmPrompt() bool {
	text, err := goals.ValidateText(m.prompt.Draft())
	if err != nil {
		m.prompt.SetError(err)
		return false
	}
	g := m.store.Add(text)
	util.Logf("goal added id=%s", g.ID)
	m.prompt.Close()
	m.refresh()
	m.cursor = len(m.goals) - 1
	m.ensureCursorVisible()
	m.setStatus(fmt.Sprintf("Added %q", g.Text))
	return true
}

// cancelPrompt hides the prompt and discards the draft.
func (m *MainModel) cancelPrompt() {
	m.prompt.Close()
	util.Logf("goal entry cancelled")
}

// deleteGoal removes the goal with the given id. Unknown ids are ignored.
func (m *MainModel) deleteGoal(id string) {
	if !m.store.Remove(id) {
		return
	}
	util.Logf("goal removed id=%s", id)
	m.refresh()
	m.setStatus(fmt.Sprintf("Removed goal, %d %s left", len(m.goals), util.Plural(len(m.goals), "goal", "goals")))
}

func (m *MainModel) deleteSelected() {
	if g, ok := m.selectedGoal(); ok {
		m.deleteGoal(g.ID)
	}
}

func (m MainModel) selectedGoal() (models.Goal, bool) {
	if m.cursor < 0 || m.cursor >= len(m.goals) {
		return models.Goal{}, false
	}
	return m.goals[m.cursor], true
}

func (m *MainModel) moveCursor(delta int) {
	if len(m.goals) == 0 {
		return
	}
	m.cursor = util.Clamp(m.cursor+delta, 0, len(m.goals)-1)
	m.ensureCursorVisible()
}

func (m *MainModel) cycleTheme() {
	next := NextTheme(CurrentThemeName())
	SetTheme(next)
	util.Logf("theme changed to %s", next)
	m.setStatus("Theme: " + CurrentTheme.Name)
}

// visibleRows is how many goal rows fit between header and footer.
func (m MainModel) visibleRows() int {
	if m.height <= 0 {
		return len(m.goals)
	}
	rows := m.height - config.HeaderHeight - footerHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *MainModel) ensureCursorVisible() {
	rows := m.visibleRows()
	if rows <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	maxOffset := len(m.goals) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.offset = util.Clamp(m.offset, 0, maxOffset)
}

// goalAtLine maps a screen line to the goal rendered there.
func (m MainModel) goalAtLine(y int) (models.Goal, bool) {
	row := y - config.HeaderHeight
	if row < 0 || row >= m.visibleRows() {
		return models.Goal{}, false
	}
	idx := m.offset + row
	if idx >= len(m.goals) {
		return models.Goal{}, false
	}
	return m.goals[idx], true
}
