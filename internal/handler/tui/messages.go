package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"QuoteBoard/internal/usecase"
)

// stateUpdatedMsg is sent whenever the engine mutates its ViewState.
type stateUpdatedMsg struct{}

// waitForUpdate blocks on the engine's update channel and converts the
// notification into a message. The command is re-issued after every
// stateUpdatedMsg so the subscription stays alive.
func waitForUpdate(e *usecase.Engine) tea.Cmd {
	return func() tea.Msg {
		<-e.Updates()
		return stateUpdatedMsg{}
	}
}
