// Package app wires the conversation, the canned-reply bot and the UI
// components into a single Bubble Tea model.
package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/clipboard"
	"github.com/oashamkll/Myapp-02/internal/config"
	"github.com/oashamkll/Myapp-02/internal/conversation"
	"github.com/oashamkll/Myapp-02/internal/keys"
	"github.com/oashamkll/Myapp-02/internal/logger"
	"github.com/oashamkll/Myapp-02/internal/notification"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

// AppState represents the current state of the submission flow
type AppState int

const (
	StateIdle       AppState = iota // Ready for user input
	StateSubmitting                 // Appending a user message and its reply
)

// String returns a human-readable name for the state
func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.Chat

	store *conversation.Store

	width  int
	height int

	// windowFocused tracks terminal focus reports; notifications only fire
	// while the window is in the background.
	windowFocused bool
	kittyKeyboard bool

	// State machine
	state AppState

	// Desktop side effects, replaced in tests
	copyText  func(text string) error
	notifyBot func(botName, reply string) error
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		chat:          ui.NewChat(),
		store:         conversation.NewStore(),
		windowFocused: true,
		state:         StateIdle,
		copyText:      clipboard.WriteText,
		notifyBot:     notification.BotReplied,
	}

	m.header.SetBotName(cfg.GetBotName())
	m.chat.SetNames(cfg.GetUserName(), cfg.GetBotName())
	m.chat.SetShowTimestamps(cfg.GetShowTimestamps())
	m.chat.SetFocused(true)

	return m
}

// State returns the current state of the submission flow
func (m *Model) State() AppState {
	return m.state
}

// Messages returns a snapshot of the conversation
func (m *Model) Messages() []conversation.Message {
	return m.store.Messages()
}

// setState transitions to a new state with logging
func (m *Model) setState(newState AppState) {
	if m.state != newState {
		logger.WithComponent("app").Debug("state transition", "from", m.state.String(), "to", newState.String())
		m.state = newState
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	logger.WithComponent("app").Info("starting", "version", m.version, "theme", string(ui.CurrentThemeName()))
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		return m, nil

	case tea.KeyboardEnhancementsMsg:
		m.kittyKeyboard = msg.SupportsKeyDisambiguation()
		m.footer.SetKittyKeyboard(m.kittyKeyboard)
		return m, nil

	case ui.FlashTickMsg:
		// Flash cleared, no need to continue ticking
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case NotificationResultMsg:
		if msg.Err != nil {
			return m, m.ShowFlashWarning("Desktop notification failed")
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)
	}

	// Mouse wheel, paste and cursor blinks belong to the chat panel
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	m.footer.SetDraft(m.chat.Input())
	return m, cmd
}

// handleKeyPress routes a key press to a shortcut, the submission flow or the
// input box, in that order.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	switch key {
	case keys.Enter:
		return m, m.submitInput()
	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		m.footer.SetDraft(m.chat.Input())
		return m, nil
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	m.footer.SetDraft(m.chat.Input())
	return m, cmd
}
