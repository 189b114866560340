package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/conversation"
	"github.com/oashamkll/Myapp-02/internal/keys"
	"github.com/oashamkll/Myapp-02/internal/logger"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+y")
	Description string                              // Human-readable description
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// ShortcutRegistry is the central registry of keyboard shortcuts. Keys not
// listed here fall through to the input box.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.CtrlY,
		Description: "Copy the last reply",
		Handler:     shortcutCopyReply,
	},
	{
		Key:         keys.CtrlT,
		Description: "Cycle theme",
		Handler:     shortcutCycleTheme,
	},
	{
		Key:         keys.CtrlN,
		Description: "Toggle desktop notifications",
		Handler:     shortcutToggleNotifications,
	},
	{
		Key:         keys.Escape,
		Description: "Quit",
		Handler:     shortcutQuit,
	},
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Handler:     shortcutQuit,
	},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.WithComponent("app").Debug("shortcut condition failed", "key", key)
			return m, nil, false
		}
		logger.WithComponent("app").Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func shortcutCopyReply(m *Model) (tea.Model, tea.Cmd) {
	last, ok := m.store.Last(conversation.AuthorBot)
	if !ok {
		return m, m.ShowFlashWarning("No reply to copy yet")
	}
	if err := m.copyText(last.Text); err != nil {
		logger.WithComponent("app").Warn("copy failed", "error", err)
		return m, m.ShowFlashError("Failed to copy to clipboard")
	}
	return m, m.ShowFlashSuccess("Copied last reply")
}

func shortcutCycleTheme(m *Model) (tea.Model, tea.Cmd) {
	name := ui.CycleTheme()
	m.config.SetTheme(string(name))
	m.chat.Refresh()

	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return m, cmd
	}
	return m, m.ShowFlashInfo("Theme: " + ui.CurrentTheme().Name)
}

func shortcutToggleNotifications(m *Model) (tea.Model, tea.Cmd) {
	enabled := !m.config.GetNotificationsEnabled()
	m.config.SetNotificationsEnabled(enabled)

	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return m, cmd
	}
	if enabled {
		return m, m.ShowFlashInfo("Notifications on")
	}
	return m, m.ShowFlashInfo("Notifications off")
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
