package tui

import "time"

// Messages for the tea program (polling-based)

// TickMsg is sent periodically to trigger a snapshot refresh
type TickMsg struct {
	Time time.Time
}
