package tui

// SelectedName returns the name of the selected entry, for tests.
func (m *Model) SelectedName() string {
	if e := m.selectedEntry(); e != nil {
		return e.Name
	}
	return ""
}

// Term exposes the output pane terminal, for tests.
func (m *Model) Term() *Vterm {
	return m.term
}
