package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width         int
	bindings      []KeyBinding
	draft         string
	kittyKeyboard bool // Terminal can tell shift+enter apart from enter
	flashMessage  *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+y", Desc: "copy reply"},
			{Key: "ctrl+t", Desc: "theme"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "esc", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetDraft sets the current input text, used for the character counter
func (f *Footer) SetDraft(text string) {
	f.draft = text
}

// SetKittyKeyboard records whether the terminal reports modified enter keys
func (f *Footer) SetKittyKeyboard(enabled bool) {
	f.kittyKeyboard = enabled
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// charCount returns the number of user-perceived characters in the draft
func (f *Footer) charCount() int {
	return uniseg.GraphemeClusterCount(f.draft)
}

// View renders the footer on a single line. Hints that don't fit are dropped
// from the right; the draft counter only shows when there is room left.
func (f *Footer) View() string {
	// Footer padding takes one column on each side
	avail := f.width - 2

	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.fit(f.renderFlash(), avail))
	}

	newline := KeyBinding{Key: "alt+enter", Desc: "newline"}
	if f.kittyKeyboard {
		newline.Key = "shift+enter"
	}

	bindings := make([]KeyBinding, 0, len(f.bindings)+1)
	for i, b := range f.bindings {
		bindings = append(bindings, b)
		if i == 0 {
			bindings = append(bindings, newline)
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "

	content := strings.Join(parts, sep)
	if f.width > 0 {
		for n := len(parts) - 1; n > 0 && lipgloss.Width(content) > avail; n-- {
			content = strings.Join(parts[:n], sep)
		}
		content = f.fit(content, avail)
	}

	if f.draft != "" {
		n := f.charCount()
		noun := "chars"
		if n == 1 {
			noun = "char"
		}
		counter := FooterCounterStyle.Render(fmt.Sprintf("%d %s", n, noun))
		gap := avail - lipgloss.Width(content) - lipgloss.Width(counter)
		if gap >= 2 {
			content += strings.Repeat(" ", gap) + counter
		}
	}

	return FooterStyle.Width(f.width).Render(content)
}

// fit truncates s to width columns. A zero footer width means the size is
// not known yet, so nothing is cut.
func (f *Footer) fit(s string, width int) string {
	if f.width <= 0 {
		return s
	}
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// renderFlash renders the flash icon and text in the flash type's color
func (f *Footer) renderFlash() string {
	icon, color := "ℹ", ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + f.flashMessage.Text)
}
