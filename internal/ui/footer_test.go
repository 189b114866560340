package ui

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if len(footer.bindings) == 0 {
		t.Error("Expected default bindings to be set")
	}
	if footer.flashMessage != nil {
		t.Error("Expected no flash message initially")
	}
}

func TestFooter_View_DefaultBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)

	view := stripANSI(footer.View())
	for _, want := range []string{"send", "copy reply", "theme", "scroll", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer should contain %q, got %q", want, view)
		}
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test error message", FlashError)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Test error message" {
		t.Errorf("Expected text 'Test error message', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashError {
		t.Errorf("Expected type FlashError, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_SetFlashWithDuration(t *testing.T) {
	footer := NewFooter()
	customDuration := 10 * time.Second

	footer.SetFlashWithDuration("Custom duration", FlashInfo, customDuration)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Duration != customDuration {
		t.Errorf("Expected duration %v, got %v", customDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test message", FlashInfo)
	if !footer.HasFlash() {
		t.Error("Expected HasFlash() to return true")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	msg := &FlashMessage{
		Text:      "Test",
		Type:      FlashInfo,
		CreatedAt: time.Now(),
		Duration:  5 * time.Second,
	}
	if msg.IsExpired() {
		t.Error("New message should not be expired")
	}

	expiredMsg := &FlashMessage{
		Text:      "Test",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  5 * time.Second,
	}
	if !expiredMsg.IsExpired() {
		t.Error("Old message should be expired")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Not expired", FlashInfo)
	if footer.ClearIfExpired() {
		t.Error("Should not clear non-expired message")
	}
	if !footer.HasFlash() {
		t.Error("Flash should still be present")
	}

	footer.flashMessage = &FlashMessage{
		Text:      "Expired",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  5 * time.Second,
	}
	if !footer.ClearIfExpired() {
		t.Error("Should clear expired message")
	}
	if footer.HasFlash() {
		t.Error("Flash should be cleared")
	}
}

func TestFooter_View_WithFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)

	viewWithoutFlash := footer.View()
	if strings.Contains(viewWithoutFlash, "Test error") {
		t.Error("Should not contain flash message text when no flash is set")
	}

	footer.SetFlash("Test error message", FlashError)
	viewWithFlash := stripANSI(footer.View())

	if !strings.Contains(viewWithFlash, "Test error message") {
		t.Error("Flash message should be visible in view")
	}
	if !strings.Contains(viewWithFlash, "✕") {
		t.Error("Error flash should contain error icon")
	}
	if strings.Contains(viewWithFlash, "copy reply") {
		t.Error("Flash should replace the key hints")
	}
}

func TestFooter_FlashTypes(t *testing.T) {
	tests := []struct {
		name         string
		flashType    FlashType
		expectedIcon string
	}{
		{"Error", FlashError, "✕"},
		{"Warning", FlashWarning, "⚠"},
		{"Info", FlashInfo, "ℹ"},
		{"Success", FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(80)
			footer.SetFlash("Test message", tt.flashType)

			view := footer.View()
			if !strings.Contains(view, tt.expectedIcon) {
				t.Errorf("Expected %s flash to contain icon %q", tt.name, tt.expectedIcon)
			}
		})
	}
}

func TestFlashTick(t *testing.T) {
	if cmd := FlashTick(); cmd == nil {
		t.Error("FlashTick() should return a command")
	}
}

func TestFooter_NewlineShortcutDisplay(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "alt+enter") {
		t.Error("Without kitty keyboard, should show alt+enter")
	}
	if strings.Contains(view, "shift+enter") {
		t.Error("Without kitty keyboard, should not show shift+enter")
	}

	footer.SetKittyKeyboard(true)
	view = stripANSI(footer.View())
	if !strings.Contains(view, "shift+enter") {
		t.Error("With kitty keyboard, should show shift+enter")
	}
	if strings.Contains(view, "alt+enter") {
		t.Error("With kitty keyboard, should not show alt+enter")
	}
}

func TestFooter_CharCounter(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  string
	}{
		{"ascii", "hello", "5 chars"},
		{"accented", "héllo", "5 chars"},
		{"emoji with modifier", "hi 👋🏽", "4 chars"},
		{"flag", "🇯🇵", "1 char"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(160)
			footer.SetDraft(tt.draft)

			view := stripANSI(footer.View())
			if !strings.Contains(view, tt.want) {
				t.Errorf("footer = %q, want counter %q", view, tt.want)
			}
		})
	}
}

func TestFooter_CharCounter_HiddenWhenEmpty(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)

	if strings.Contains(stripANSI(footer.View()), "chars") {
		t.Error("counter should be hidden for an empty draft")
	}
}

func TestFooter_View_SingleLine(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Footer)
	}{
		{"hints", func(f *Footer) {}},
		{"kitty hints", func(f *Footer) { f.SetKittyKeyboard(true) }},
		{"hints with draft", func(f *Footer) { f.SetDraft("a long draft message") }},
		{"flash", func(f *Footer) { f.SetFlash(strings.Repeat("very long flash ", 10), FlashError) }},
	}

	for _, tt := range tests {
		for _, width := range []int{10, 40, 80, 100, 160} {
			footer := NewFooter()
			footer.SetWidth(width)
			tt.setup(footer)

			view := footer.View()
			if h := lipgloss.Height(view); h != 1 {
				t.Errorf("%s at width %d: height = %d, want 1\n%s", tt.name, width, h, stripANSI(view))
			}
			if w := lipgloss.Width(view); w != width {
				t.Errorf("%s at width %d: rendered width = %d", tt.name, width, w)
			}
		}
	}
}

func TestFooter_View_DropsHintsFromTheRight(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(40)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "enter: send") {
		t.Errorf("first hint should survive, got %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Errorf("last hint should be dropped at width 40, got %q", view)
	}
}
