package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd creates a command that ticks every 250ms to poll the engine.
// The countdown and both async completions surface through snapshots, so a
// short poll interval keeps the screen honest without flooding the program.
func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
