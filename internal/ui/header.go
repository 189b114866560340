package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " chatmock"

// Header represents the top header bar
type Header struct {
	width        int
	botName      string
	messageCount int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetBotName sets the name shown on the right of the header
func (h *Header) SetBotName(name string) {
	h.botName = name
}

// SetMessageCount sets the number of messages in the conversation
func (h *Header) SetMessageCount(n int) {
	h.messageCount = n
}

// statusText returns the right-hand side of the header, e.g. "Bot · 3 messages "
func (h *Header) statusText() string {
	if h.botName == "" {
		return ""
	}
	noun := "messages"
	if h.messageCount == 1 {
		noun = "message"
	}
	return fmt.Sprintf("%s · %d %s ", h.botName, h.messageCount, noun)
}

// View renders the header
func (h *Header) View() string {
	rightText := h.statusText()

	// Drop the status before the title when the bar is too narrow for both
	avail := h.width - runewidth.StringWidth(headerTitle) - 1
	if avail < runewidth.StringWidth(rightText) {
		if avail > 1 {
			rightText = runewidth.Truncate(rightText, avail, "…")
		} else {
			rightText = ""
		}
	}

	paddingLen := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := headerTitle + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, len([]rune(headerTitle)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background fading from the theme's
// primary color to its background color. The first boldLen runes are bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
