package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the fixed-interval refresh loop.
type tickMsg time.Time

// repoChangedMsg reports filesystem activity under the repository git dir.
type repoChangedMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
