package tui

import (
	"strings"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptButton int

const (
	buttonConfirm promptButton = iota
	buttonCancel
)

type promptAction int

const (
	promptNone promptAction = iota
	promptConfirm
	promptCancel
)

// PromptModel is the modal goal entry. It is either hidden or visible; the
// draft lives in the text input.
type PromptModel struct {
	visible bool
	input   textinput.Model
	focus   promptButton
	err     error
}

func NewPromptModel() PromptModel {
	ti := textinput.New()
	ti.Placeholder = config.PromptPlaceholder
	ti.CharLimit = config.MaxGoalLength
	ti.Width = config.PromptWidth
	ti.Prompt = ""
	return PromptModel{input: ti}
}

func (p PromptModel) Visible() bool { return p.visible }

func (p PromptModel) Draft() string { return p.input.Value() }

func (p PromptModel) Err() error { return p.err }

func (p *PromptModel) SetDraft(text string) { p.input.SetValue(text) }

func (p *PromptModel) SetError(err error) { p.err = err }

// Open shows the prompt and focuses the text field.
func (p *PromptModel) Open() tea.Cmd {
	p.visible = true
	p.focus = buttonConfirm
	p.err = nil
	return p.input.Focus()
}

// Close hides the prompt and clears the draft.
func (p *PromptModel) Close() {
	p.visible = false
	p.focus = buttonConfirm
	p.err = nil
	p.input.Blur()
	p.input.Reset()
}

// Update feeds a message to the visible prompt and reports whether the user
// chose to confirm or cancel. The caller performs the transition.
func (p PromptModel) Update(msg tea.Msg) (PromptModel, promptAction, tea.Cmd) {
	if !p.visible {
		return p, promptNone, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return p, promptCancel, nil
		case "enter":
			if p.focus == buttonCancel {
				return p, promptCancel, nil
			}
			return p, promptConfirm, nil
		case "tab", "shift+tab":
			if p.focus == buttonConfirm {
				p.focus = buttonCancel
			} else {
				p.focus = buttonConfirm
			}
			return p, promptNone, nil
		}
		p.err = nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, promptNone, cmd
}

func (p PromptModel) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render("New goal") + "\n\n")
	b.WriteString(CurrentTheme.Input.Render(p.input.View()) + "\n")
	if p.err != nil {
		b.WriteString(CurrentTheme.Error.Render(p.err.Error()))
	}
	b.WriteString("\n")

	confirm := CurrentTheme.IdleButton.Render(config.PromptConfirm)
	cancel := CurrentTheme.IdleButton.Render(config.PromptCancel)
	if p.focus == buttonConfirm {
		confirm = CurrentTheme.ConfirmButton.Render(config.PromptConfirm)
	} else {
		cancel = CurrentTheme.CancelButton.Render(config.PromptCancel)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel) + "\n\n")
	b.WriteString(CurrentTheme.Dim.Render("[enter]select|[tab]switch|[esc]cancel"))
	return CurrentTheme.Prompt.Render(b.String())
}
