package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/oashamkll/Myapp-02/internal/conversation"
	"github.com/oashamkll/Myapp-02/internal/keys"
)

// sendButtonLabel is the text drawn inside the Send button
const sendButtonLabel = "Send"

// Chat is the conversation panel: message list, input box and Send button
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	messages []conversation.Message

	userName       string
	botName        string
	showTimestamps bool
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport:       vp,
		input:          ti,
		userName:       "You",
		botName:        "Bot",
		showTimestamps: true,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	messagePanelHeight := height - InputTotalHeight
	viewportHeight := ctx.InnerHeight(messagePanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	// Input box shares the row with the Send button and has its own border and padding
	inputWidth := ctx.InnerWidth(c.inputBoxWidth()) - InputPaddingWidth
	if inputWidth < 1 {
		inputWidth = 1
	}
	c.input.SetWidth(inputWidth)

	ctx.Log("Chat.SetSize", "width", width, "height", height, "viewportHeight", viewportHeight, "inputWidth", inputWidth)

	// Re-wrap bubbles for the new width
	wasAtBottom := c.viewport.AtBottom()
	c.updateContent()
	if wasAtBottom {
		c.viewport.GotoBottom()
	}
}

// inputBoxWidth returns the outer width of the input box
func (c *Chat) inputBoxWidth() int {
	w := c.width - SendButtonWidth
	if w < 0 {
		return 0
	}
	return w
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetNames sets the bubble labels for each author
func (c *Chat) SetNames(userName, botName string) {
	c.userName = userName
	c.botName = botName
	c.updateContent()
}

// SetShowTimestamps toggles the HH:MM shown beside bubble labels
func (c *Chat) SetShowTimestamps(show bool) {
	c.showTimestamps = show
	c.updateContent()
}

// SetMessages replaces the rendered conversation. The scroll position is
// left alone; call ScrollToEnd to follow the newest message.
func (c *Chat) SetMessages(messages []conversation.Message) {
	c.messages = messages
	c.updateContent()
}

// MessageCount returns the number of rendered messages
func (c *Chat) MessageCount() int {
	return len(c.messages)
}

// Input returns the raw text in the input box
func (c *Chat) Input() string {
	return c.input.Value()
}

// SetInput replaces the text in the input box
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ClearInput clears the input box
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// InsertNewline adds a line break at the cursor
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// ScrollToEnd moves the message list to the newest message
func (c *Chat) ScrollToEnd() {
	c.viewport.GotoBottom()
}

// AtBottom reports whether the newest message is in view
func (c *Chat) AtBottom() bool {
	return c.viewport.AtBottom()
}

// Refresh re-renders the conversation, e.g. after a theme change
func (c *Chat) Refresh() {
	c.updateContent()
}

// SendButtonHit reports whether the panel-relative cell (x, y) is on the
// Send button.
func (c *Chat) SendButtonHit(x, y int) bool {
	top := c.height - InputTotalHeight
	left := c.width - SendButtonWidth
	return x >= left && x < c.width && y >= top && y < c.height
}

// updateContent re-renders all bubbles into the viewport
func (c *Chat) updateContent() {
	content := renderConversation(c.messages, renderOptions{
		width:          c.viewport.Width(),
		userName:       c.userName,
		botName:        c.botName,
		showTimestamps: c.showTimestamps,
	})
	c.viewport.SetContent(content)
}

// Update handles messages for the chat panel. Enter is left to the caller,
// which owns the submission flow.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		if !c.focused {
			return c, nil
		}

		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, keys.CtrlU, keys.CtrlD:
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		case keys.Home:
			c.viewport.GotoTop()
			return c, nil
		case keys.End:
			c.viewport.GotoBottom()
			return c, nil
		case keys.CtrlUp:
			c.viewport.ScrollUp(1)
			return c, nil
		case keys.CtrlDown:
			c.viewport.ScrollDown(1)
			return c, nil
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	// Paste and cursor blinks go to the input; mouse wheel to the viewport
	var cmds []tea.Cmd
	if c.focused {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	messagePanelHeight := c.height - InputTotalHeight
	messagePanel := panelStyle.Width(c.width).Height(messagePanelHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputBox := inputStyle.Width(c.inputBoxWidth()).Render(c.input.View())

	buttonStyle := SendButtonStyle
	if strings.TrimSpace(c.input.Value()) == "" {
		buttonStyle = SendButtonDisabledStyle
	}
	button := buttonStyle.Width(SendButtonWidth).Height(InputTotalHeight).Render(sendButtonLabel)

	inputRow := lipgloss.JoinHorizontal(lipgloss.Top, inputBox, button)

	return lipgloss.JoinVertical(lipgloss.Left, messagePanel, inputRow)
}
