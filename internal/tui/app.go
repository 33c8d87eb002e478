package tui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the goal list program and blocks until the user quits.
func Run(store GoalStore, opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(NewMainModel(store, opts), programOpts...).Run()
	return err
}
