package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

// handleMouseClick submits the input when the Send button is clicked.
// Screen coordinates are shifted past the header into chat-panel space.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}

	ctx := ui.GetViewContext()
	x, y := msg.X, msg.Y-ctx.HeaderHeight
	if !m.chat.SendButtonHit(x, y) {
		return nil
	}

	ctx.Log("Send button clicked", "x", msg.X, "y", msg.Y)
	return m.submitInput()
}
