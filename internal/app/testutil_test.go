package app

import (
	"path/filepath"
	"regexp"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/config"
	"github.com/oashamkll/Myapp-02/internal/keys"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

// testConfig creates a config that saves into a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.New(filepath.Join(t.TempDir(), "config.json"))
}

// testModel creates a test Model with the given config. Desktop side effects
// are stubbed out and the theme is restored when the test ends.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	m := New(cfg, "0.0.0-test")
	m.copyText = func(string) error { return nil }
	m.notifyBot = func(string, string) error { return nil }
	return m
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, cfg *config.Config, width, height int) *Model {
	t.Helper()
	m := testModel(t, cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+c", "pgup"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.AltEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlN:
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len([]rune(key)) == 1 {
			r := []rune(key)[0]
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// clickSend clicks the centre of the Send button for a model sized width x height.
func clickSend(m *Model, width, height int) tea.Cmd {
	ctx := ui.GetViewContext()
	x := width - ui.SendButtonWidth/2
	y := ctx.HeaderHeight + ctx.ContentHeight - ui.InputTotalHeight/2 - 1
	_, cmd := m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
	return cmd
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

// stripANSI removes SGR escape sequences so views can be matched as text.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
