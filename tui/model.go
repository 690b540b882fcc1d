package tui

import (
	"sumcoach/session"
	"sumcoach/types"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Model renders the in-process training engine. The engine owns all session
// state; the model only keeps the latest snapshot plus the draft editor
// widget, and forwards every edit back into the engine so validity flags
// always reflect engine state.
type Model struct {
	Engine *session.Engine

	// Latest engine snapshot (synced on every tick)
	Snap types.Snapshot

	// Draft editor, re-seeded whenever the step changes
	Editor     textarea.Model
	editorStep types.Step
}

// NewModel creates a new TUI model around the given engine
func NewModel(engine *session.Engine) Model {
	editor := textarea.New()
	editor.Placeholder = "여기에 요약을 입력하세요..."
	editor.SetWidth(64)
	editor.SetHeight(5)
	editor.CharLimit = 0

	return Model{
		Engine: engine,
		Snap:   engine.Snapshot(),
		Editor: editor,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textarea.Blink)
}

// inEditorStep reports whether the current step shows the draft editor
func (m Model) inEditorStep() bool {
	return m.Snap.Step == types.StepSummaryOne || m.Snap.Step == types.StepSummaryThree
}

// syncEditor re-seeds the editor with the engine's draft when the step
// changes, so going back shows the previously typed text.
func (m *Model) syncEditor() {
	if !m.inEditorStep() {
		m.editorStep = ""
		return
	}
	if m.editorStep == m.Snap.Step {
		return
	}
	m.editorStep = m.Snap.Step
	if m.Snap.Step == types.StepSummaryOne {
		m.Editor.SetValue(m.Snap.OneSentence)
	} else {
		m.Editor.SetValue(m.Snap.ThreeLines)
	}
	m.Editor.Focus()
}
