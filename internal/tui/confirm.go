package tui

// confirmModel asks before leaving the main loop while work is in flight.
type confirmModel struct {
	message string
	logout  bool
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
