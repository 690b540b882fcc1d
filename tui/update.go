package tui

import (
	"sumcoach/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick refreshes the snapshot from the engine
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.Snap = m.Engine.Snapshot()
	m.syncEditor()
	return m, tickCmd()
}

// handleKeyPress processes keyboard input per step
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.Snap.Step {
	case types.StepSummaryOne, types.StepSummaryThree:
		return m.handleEditorKey(msg)
	default:
		return m.handleScreenKey(msg)
	}
}

// handleScreenKey handles keys on the non-editing screens
func (m Model) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		if m.Snap.Step == types.StepIntro || m.Snap.Step == types.StepFeedback {
			_ = m.Engine.Start()
		}
	case "enter":
		switch m.Snap.Step {
		case types.StepIntro, types.StepFeedback:
			_ = m.Engine.Start()
		case types.StepReading:
			_ = m.Engine.AdvanceToSummaryOne()
		}
	case "r":
		_ = m.Engine.Retry()
	}

	m.Snap = m.Engine.Snapshot()
	m.syncEditor()
	return m, nil
}

// handleEditorKey handles keys on the two summary editor screens. Everything
// except the control keys goes into the textarea, and the new text is pushed
// straight back into the engine.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		_ = m.Engine.GoBack()
		m.Snap = m.Engine.Snapshot()
		m.syncEditor()
		return m, nil
	case "ctrl+d":
		if m.Snap.Step == types.StepSummaryOne {
			_ = m.Engine.AdvanceToSummaryThree()
		} else {
			_ = m.Engine.Submit()
		}
		m.Snap = m.Engine.Snapshot()
		m.syncEditor()
		return m, nil
	case "ctrl+r":
		_ = m.Engine.Retry()
		m.Snap = m.Engine.Snapshot()
		return m, nil
	}

	var cmd tea.Cmd
	m.Editor, cmd = m.Editor.Update(msg)
	if m.Snap.Step == types.StepSummaryOne {
		m.Engine.EditOneSentence(m.Editor.Value())
	} else {
		m.Engine.EditThreeLines(m.Editor.Value())
	}
	m.Snap = m.Engine.Snapshot()
	return m, cmd
}
