package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/bot"
	"github.com/oashamkll/Myapp-02/internal/conversation"
	"github.com/oashamkll/Myapp-02/internal/logger"
)

// NotificationResultMsg reports the outcome of a desktop notification
type NotificationResultMsg struct {
	Err error
}

// Submit runs one exchange: the trimmed text is appended as a user message,
// the input is cleared, the bot's reply is appended and the message list
// scrolls to the end. Blank input is ignored. Reports whether anything was
// appended.
func (m *Model) Submit(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	m.setState(StateSubmitting)
	defer m.setState(StateIdle)

	m.store.Append(conversation.NewMessage(trimmed, conversation.AuthorUser))
	m.chat.ClearInput()
	m.footer.SetDraft("")

	reply := bot.Resolve(trimmed)
	m.store.Append(conversation.NewMessage(reply, conversation.AuthorBot))

	m.syncConversation()
	m.chat.ScrollToEnd()

	logger.WithComponent("app").Debug("exchange appended", "input_len", len(trimmed), "reply", reply, "messages", m.store.Len())
	return true
}

// submitInput submits whatever is in the input box, used by both Enter and
// the Send button.
func (m *Model) submitInput() tea.Cmd {
	if !m.Submit(m.chat.Input()) {
		return nil
	}
	return m.notifyReplyCmd()
}

// syncConversation pushes the current conversation to the view components
func (m *Model) syncConversation() {
	m.chat.SetMessages(m.store.Messages())
	m.header.SetMessageCount(m.store.Len())
}

// notifyReplyCmd returns a command that raises a desktop notification for the
// newest bot reply, or nil when notifications are off or the window has focus.
func (m *Model) notifyReplyCmd() tea.Cmd {
	if !m.config.GetNotificationsEnabled() || m.windowFocused {
		return nil
	}
	last, ok := m.store.Last(conversation.AuthorBot)
	if !ok {
		return nil
	}

	notify := m.notifyBot
	botName := m.config.GetBotName()
	return func() tea.Msg {
		return NotificationResultMsg{Err: notify(botName, last.Text)}
	}
}
