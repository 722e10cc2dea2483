package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/ui/style"
)

const nameColumnWidth = 40

// View renders the UI.
func (m *Model) View() string {
	if m.height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		m.entryList(),
		m.outputPane(),
		m.footer(),
	)
}

func (m *Model) header() string {
	title := titleStyle.Render("cachet")
	status := m.statusBadge()

	var dirty string
	if m.ctrl.Dirty() {
		dirty = entryStagedStyle.Render(" [staged edits]")
	}

	line := fmt.Sprintf("%s %s %s%s", title, m.ctrl.CachePath(), status, dirty)
	return line + "\n"
}

func (m *Model) statusBadge() string {
	switch m.state {
	case domain.StateRunning:
		return statusRunningStyle.Render(fmt.Sprintf("%s pass %d running", style.Dot, m.pass))
	case domain.StateConverged:
		return statusConvergedStyle.Render(style.Check + " converged")
	case domain.StateNeedsAnotherPass:
		return statusRunningStyle.Render(style.Warning + " needs another pass")
	case domain.StateFailed:
		return statusFailedStyle.Render(style.Cross + " failed")
	default:
		return statusIdleStyle.Render(style.Circle + " idle")
	}
}

func (m *Model) entryList() string {
	if len(m.entries) == 0 {
		return helpStyle.Render("  cache is empty, press c to run the first configure pass")
	}

	var s strings.Builder

	end := m.listOffset + m.listHeight
	if end > len(m.entries) {
		end = len(m.entries)
	}
	start := m.listOffset
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderEntryRow(i, m.entries[i]))
		if i < end-1 {
			s.WriteByte('\n')
		}
	}

	return s.String()
}

func (m *Model) renderEntryRow(index int, e *domain.CacheEntry) string {
	cursor := "  "
	if index == m.selectedIdx {
		cursor = selectedStyle.Render("> ")
	}

	marker := " "
	rowStyle := entryNameStyle
	switch {
	case e.Origin == domain.OriginNewThisPass:
		marker = style.Star
		rowStyle = entryNewStyle
	case e.Origin == domain.OriginStagedEdit:
		marker = "+"
		rowStyle = entryStagedStyle
	case m.diff.IsChanged(e.Name):
		rowStyle = entryChangedStyle
	case e.Advanced:
		rowStyle = entryAdvancedStyle
	}

	name := e.Name
	if len(name) > nameColumnWidth {
		name = name[:nameColumnWidth-1] + "…"
	}

	value := e.Value
	if index == m.selectedIdx && m.mode == modeEdit {
		value = m.input.View()
	} else if e.Kind == domain.KindEnum {
		value = fmt.Sprintf("%s  (%s)", value, strings.Join(e.Choices, "/"))
	}

	row := fmt.Sprintf("%s %-*s %s", marker, nameColumnWidth, name, entryValueStyle.Render(value))
	if index == m.selectedIdx {
		return cursor + selectedStyle.Render(fmt.Sprintf("%s %-*s", marker, nameColumnWidth, name)) + " " + value
	}
	return cursor + rowStyle.Render(row)
}

func (m *Model) outputPane() string {
	title := "OUTPUT"
	if m.focusOutput {
		title += " (focused, tab to leave)"
	}
	return outputTitleStyle.Render(title) + "\n" + m.term.View()
}

func (m *Model) footer() string {
	var lines [3]string

	switch m.mode {
	case modeEdit:
		lines[0] = "New value (enter to commit, esc to discard)"
	case modeSearch:
		lines[0] = m.input.View()
	default:
		if e := m.selectedEntry(); e != nil && e.Help != "" {
			lines[0] = helpStyle.Render(e.Help)
		}
	}

	if m.statusMsg != "" {
		lines[1] = errorStyle.Render(m.statusMsg)
	}

	lines[2] = helpStyle.Render(m.keyHints())

	return strings.Join(lines[:], "\n")
}

func (m *Model) keyHints() string {
	if m.running {
		return "ctrl+c cancel · tab output focus"
	}
	hints := "space cycle · enter edit · t advanced · / search · c configure · q quit"
	if m.state == domain.StateConverged {
		hints = "g generate · " + hints
	}
	return hints
}
