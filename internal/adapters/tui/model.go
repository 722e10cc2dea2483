package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/engine/configure"
)

const (
	headerHeight  = 2
	footerHeight  = 3
	minListHeight = 3
	minPaneHeight = 4
)

type viewMode int

const (
	modeBrowse viewMode = iota
	modeEdit
	modeSearch
)

// Model is the Bubble Tea model for the interactive cache editor. It renders
// the entry table on top and the captured configure output below, and drives
// all mutations through the Controller.
type Model struct {
	ctrl Controller
	ctx  context.Context

	entries      []*domain.CacheEntry
	showAdvanced bool
	selectedIdx  int
	listOffset   int
	listHeight   int
	width        int
	height       int

	mode    viewMode
	input   textinput.Model
	session *configure.EditSession

	searchQuery string
	focusOutput bool

	state     domain.ConfigureState
	pass      int
	diff      domain.DiffResult
	running   bool
	statusMsg string

	term *Vterm
}

// MsgCommandFinished reports the outcome of an operator command that was
// rejected before a pass could start, e.g. generate before convergence.
type MsgCommandFinished struct {
	Err error
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case MsgPassStart:
		m.running = true
		m.pass = msg.Pass
		m.state = domain.StateRunning
		m.statusMsg = ""
		m.term.Reset()
		m.focusOutput = true

	case MsgProcessOutput:
		_, _ = m.term.Write(msg.Data)

	case MsgPassComplete:
		m.running = false
		m.state = msg.State
		m.diff = msg.Diff
		m.focusOutput = false
		if msg.Err != nil {
			m.statusMsg = msg.Err.Error()
		}
		m.refresh()

	case MsgCacheReload:
		m.refresh()

	case MsgCommandFinished:
		if msg.Err != nil {
			m.statusMsg = msg.Err.Error()
		}
	}

	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the output pane has focus its scrollback owns the motion keys.
	if m.focusOutput {
		switch msg.String() {
		case "q", "ctrl+c", "esc", "tab":
			return m.updateBrowseCommand(msg)
		default:
			_, _ = m.term.Update(msg)
			return m, nil
		}
	}

	switch msg.String() {
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "pgup":
		m.moveSelection(-m.listHeight)
	case "pgdown":
		m.moveSelection(m.listHeight)
	case "home":
		m.moveSelectionTo(0)
	case "end":
		m.moveSelectionTo(len(m.entries) - 1)
	case "t":
		m.showAdvanced = !m.showAdvanced
		m.refresh()
	case " ":
		m.cycleSelected()
	case "enter":
		return m, m.beginEdit()
	case "/":
		m.mode = modeSearch
		m.input.SetValue("")
		m.input.Prompt = "/"
		m.input.Focus()
	case "n":
		m.nextMatch()
	case "c":
		return m, m.startPass()
	case "g":
		return m, m.startGenerate()
	case "R":
		if err := m.ctrl.Reload(); err != nil {
			m.statusMsg = err.Error()
		}
	default:
		return m.updateBrowseCommand(msg)
	}
	return m, nil
}

// updateBrowseCommand handles the keys that stay live even while a pass runs.
func (m *Model) updateBrowseCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.running {
			m.statusMsg = "a pass is running, cancel it first (ctrl+c)"
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+c":
		if m.running {
			m.ctrl.Cancel()
			return m, nil
		}
		return m, tea.Quit
	case "esc":
		m.statusMsg = ""
	case "tab":
		m.focusOutput = !m.focusOutput
	}
	return m, nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.session.Commit(m.input.Value()); err != nil {
			// The lease survives a validation failure so the operator can
			// correct the value in place.
			m.statusMsg = err.Error()
			return m, nil
		}
		m.closeEdit()
		m.refresh()
	case "esc":
		_ = m.session.Discard()
		m.closeEdit()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) closeEdit() {
	m.session = nil
	m.mode = modeBrowse
	m.input.Blur()
	m.statusMsg = ""
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchQuery = m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		m.nextMatch()
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refresh rebuilds the entry table from the controller and clamps the
// selection.
func (m *Model) refresh() {
	m.entries = m.ctrl.VisibleEntries(m.showAdvanced)
	m.state = m.ctrl.State()
	m.diff = m.ctrl.LastDiff()

	if m.selectedIdx >= len(m.entries) {
		m.selectedIdx = len(m.entries) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
	m.ensureVisible()
}

func (m *Model) moveSelection(delta int) {
	m.moveSelectionTo(m.selectedIdx + delta)
}

func (m *Model) moveSelectionTo(idx int) {
	if len(m.entries) == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.entries) {
		idx = len(m.entries) - 1
	}
	if idx == m.selectedIdx {
		return
	}

	// Leaving an entry counts as having reviewed it.
	if e := m.selectedEntry(); e != nil && e.Origin == domain.OriginNewThisPass {
		_ = m.ctrl.Acknowledge(e.Name)
		e.Origin = domain.OriginPersisted
	}

	m.selectedIdx = idx
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.listHeight <= 0 {
		return
	}
	if m.selectedIdx < m.listOffset {
		m.listOffset = m.selectedIdx
	} else if m.selectedIdx >= m.listOffset+m.listHeight {
		m.listOffset = m.selectedIdx - m.listHeight + 1
	}
}

func (m *Model) selectedEntry() *domain.CacheEntry {
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.entries) {
		return m.entries[m.selectedIdx]
	}
	return nil
}

// cycleSelected advances a bool or enum entry to its next value via an
// open-commit round trip.
func (m *Model) cycleSelected() {
	e := m.selectedEntry()
	if e == nil {
		return
	}

	var next string
	switch e.Kind {
	case domain.KindBool:
		next = domain.NextBoolValue(e.Value)
	case domain.KindEnum:
		next = e.NextChoice()
	default:
		return
	}
	m.commitValue(e.Name, next)
}

func (m *Model) commitValue(name, value string) {
	s, err := m.ctrl.OpenEdit(name)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	if err := s.Commit(value); err != nil {
		_ = s.Discard()
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = ""
	m.refresh()
}

// beginEdit opens the value editor for the selected entry. Bools and enums
// cycle instead: they have no free-form values.
func (m *Model) beginEdit() tea.Cmd {
	e := m.selectedEntry()
	if e == nil {
		return nil
	}

	if e.Kind == domain.KindBool {
		m.cycleSelected()
		return nil
	}

	s, err := m.ctrl.OpenEdit(e.Name)
	if err != nil {
		m.statusMsg = err.Error()
		return nil
	}

	m.session = s
	m.mode = modeEdit
	m.statusMsg = ""
	m.input.Prompt = ""
	m.input.SetValue(e.Value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) nextMatch() {
	if m.searchQuery == "" || len(m.entries) == 0 {
		return
	}

	query := strings.ToLower(m.searchQuery)
	for i := 1; i <= len(m.entries); i++ {
		idx := (m.selectedIdx + i) % len(m.entries)
		if strings.Contains(strings.ToLower(m.entries[idx].Name), query) {
			m.moveSelectionTo(idx)
			return
		}
	}
	m.statusMsg = "no entry matches " + m.searchQuery
}

func (m *Model) startPass() tea.Cmd {
	if m.running {
		m.statusMsg = "a pass is already running"
		return nil
	}

	ctrl := m.ctrl
	ctx := m.ctx
	return func() tea.Msg {
		// Outcomes of a started pass arrive through the renderer events;
		// this error only matters when the pass was refused up front.
		return MsgCommandFinished{Err: ctrl.RunPass(ctx)}
	}
}

func (m *Model) startGenerate() tea.Cmd {
	if m.running {
		m.statusMsg = "a pass is already running"
		return nil
	}

	ctrl := m.ctrl
	ctx := m.ctx
	return func() tea.Msg {
		return MsgCommandFinished{Err: ctrl.Generate(ctx)}
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	paneHeight := height / 3
	if paneHeight < minPaneHeight {
		paneHeight = minPaneHeight
	}

	m.listHeight = height - headerHeight - footerHeight - paneHeight - 1
	if m.listHeight < minListHeight {
		m.listHeight = minListHeight
	}

	m.term.SetWidth(width)
	m.term.SetHeight(paneHeight)
	m.input.Width = width - 4
	m.ensureVisible()
}
