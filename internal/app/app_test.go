package app

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/bot"
	"github.com/oashamkll/Myapp-02/internal/conversation"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

func TestAppState_String(t *testing.T) {
	tests := []struct {
		state    AppState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateSubmitting, "Submitting"},
		{AppState(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("AppState(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	m := testModel(t, testConfig(t))

	if m.State() != StateIdle {
		t.Errorf("initial state = %v, want Idle", m.State())
	}
	if len(m.Messages()) != 0 {
		t.Errorf("new model has %d messages", len(m.Messages()))
	}
	if !m.chat.IsFocused() {
		t.Error("input should be focused on start")
	}
	if m.Init() != nil {
		t.Error("Init() should not schedule work")
	}
}

func TestNew_AppliesSavedTheme(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetTheme("nord")
	testModel(t, cfg)

	if ui.CurrentThemeName() != ui.ThemeNord {
		t.Errorf("theme = %q, want nord", ui.CurrentThemeName())
	}
}

func TestSubmit_AppendsExchange(t *testing.T) {
	tests := []struct {
		input string
		reply string
	}{
		{"Hello world", "Hi there!"},
		{"how ARE you?", "I'm doing well, thanks!"},
		{"bye now", "Goodbye!"},
		{"xyz", "I didn't understand that."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := testModelWithSize(t, testConfig(t), 80, 30)

			if !m.Submit(tt.input) {
				t.Fatal("Submit() = false, want true")
			}

			msgs := m.Messages()
			if len(msgs) != 2 {
				t.Fatalf("len(messages) = %d, want 2", len(msgs))
			}
			if msgs[0].Text != tt.input || msgs[0].Author != conversation.AuthorUser {
				t.Errorf("first message = %+v, want user %q", msgs[0], tt.input)
			}
			if msgs[1].Text != tt.reply || msgs[1].Author != conversation.AuthorBot {
				t.Errorf("second message = %+v, want bot %q", msgs[1], tt.reply)
			}
			if m.State() != StateIdle {
				t.Errorf("state after submit = %v, want Idle", m.State())
			}
		})
	}
}

func TestSubmit_TrimsInput(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	m.Submit("  hello  \n")

	msgs := m.Messages()
	if len(msgs) != 2 || msgs[0].Text != "hello" {
		t.Fatalf("messages = %+v, want trimmed user text", msgs)
	}
}

func TestSubmit_BlankIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n  "} {
		m := testModelWithSize(t, testConfig(t), 80, 30)

		if m.Submit(input) {
			t.Errorf("Submit(%q) = true, want false", input)
		}
		if n := len(m.Messages()); n != 0 {
			t.Errorf("Submit(%q) appended %d messages", input, n)
		}
		if m.State() != StateIdle {
			t.Errorf("Submit(%q) left state %v", input, m.State())
		}
	}
}

func TestSubmit_LengthNeverShrinks(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)
	inputs := []string{"hello", "", "how are you", "   ", "bye", "???"}

	prev := 0
	for _, in := range inputs {
		m.Submit(in)
		n := len(m.Messages())
		if n < prev {
			t.Fatalf("store shrank from %d to %d after %q", prev, n, in)
		}
		prev = n
	}
	if prev != 8 {
		t.Errorf("final length = %d, want 8", prev)
	}

	// Each bot reply is the resolver's answer for the user message before it
	msgs := m.Messages()
	for i := 0; i < len(msgs); i += 2 {
		if got, want := msgs[i+1].Text, bot.Resolve(msgs[i].Text); got != want {
			t.Errorf("reply to %q = %q, want %q", msgs[i].Text, got, want)
		}
	}
}

func TestEnter_SubmitsAndClearsInput(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	m = typeText(m, "hello bot")
	if m.chat.Input() != "hello bot" {
		t.Fatalf("input = %q, want typed text", m.chat.Input())
	}

	m = sendKey(m, "enter")

	if m.chat.Input() != "" {
		t.Errorf("input after enter = %q, want empty", m.chat.Input())
	}
	msgs := m.Messages()
	if len(msgs) != 2 || msgs[0].Text != "hello bot" || msgs[1].Text != "Hi there!" {
		t.Errorf("messages = %+v", msgs)
	}
	if !m.chat.AtBottom() {
		t.Error("message list should be scrolled to the end")
	}
}

func TestEnter_WhitespaceKeepsInput(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	m = typeText(m, "   ")
	m = sendKey(m, "enter")

	if len(m.Messages()) != 0 {
		t.Errorf("whitespace submission appended %d messages", len(m.Messages()))
	}
	if m.footer.HasFlash() {
		t.Error("blank input should not be reported")
	}
}

func TestNewlineKeys_DoNotSubmit(t *testing.T) {
	for _, key := range []string{"shift+enter", "alt+enter"} {
		t.Run(key, func(t *testing.T) {
			m := testModelWithSize(t, testConfig(t), 80, 30)

			m = typeText(m, "one")
			m = sendKey(m, key)
			m = typeText(m, "two")

			if m.chat.Input() != "one\ntwo" {
				t.Errorf("input = %q, want %q", m.chat.Input(), "one\ntwo")
			}
			if len(m.Messages()) != 0 {
				t.Error("newline key should not submit")
			}
		})
	}
}

func TestSendButton_SubmitsLikeEnter(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	m = typeText(m, "how are you")
	clickSend(m, 80, 30)

	msgs := m.Messages()
	if len(msgs) != 2 || msgs[1].Text != "I'm doing well, thanks!" {
		t.Fatalf("messages = %+v", msgs)
	}
	if m.chat.Input() != "" {
		t.Errorf("input after click = %q, want empty", m.chat.Input())
	}
	if !m.chat.AtBottom() {
		t.Error("message list should be scrolled to the end")
	}
}

func TestSendButton_IgnoresOtherClicks(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)
	m = typeText(m, "hello")

	// Right click on the button, then a left click in the message list
	ctx := ui.GetViewContext()
	m.Update(tea.MouseClickMsg{X: 75, Y: ctx.HeaderHeight + ctx.ContentHeight - 2, Button: tea.MouseRight})
	m.Update(tea.MouseClickMsg{X: 10, Y: 3, Button: tea.MouseLeft})

	if len(m.Messages()) != 0 {
		t.Errorf("stray clicks appended %d messages", len(m.Messages()))
	}
	if m.chat.Input() != "hello" {
		t.Errorf("input = %q, want it untouched", m.chat.Input())
	}
}

func TestSubmit_ScrollsToEndAfterScrollingUp(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 20)
	for i := 0; i < 15; i++ {
		m.Submit("hello")
	}

	m = sendKey(m, "pgup")
	m = sendKey(m, "pgup")
	if m.chat.AtBottom() {
		t.Fatal("pgup should scroll away from the newest message")
	}

	m.Submit("bye")
	if !m.chat.AtBottom() {
		t.Error("a new exchange should scroll to the end")
	}
}

func TestView_ShowsConversation(t *testing.T) {
	cfg := testConfig(t)
	cfg.UserName = "Ada"
	cfg.BotName = "Echo"
	m := testModelWithSize(t, cfg, 100, 30)

	m.Submit("hello")
	view := stripANSI(m.RenderToString())

	for _, want := range []string{"chatmock", "Echo · 2 messages", "Ada", "hello", "Hi there!", "Send"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_Dimensions(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)
	m.Submit("hello")

	lines := strings.Split(m.RenderToString(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := testModel(t, testConfig(t))
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() = %q, want Loading...", got)
	}

	v := m.View()
	if !v.AltScreen || !v.ReportFocus {
		t.Error("view should use the alt screen and report focus")
	}
}

func TestFooterCounter_TracksDraft(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 160, 30)

	m = typeText(m, "héllo")
	if view := stripANSI(m.footer.View()); !strings.Contains(view, "5 chars") {
		t.Errorf("footer = %q, want 5 chars", view)
	}

	m = sendKey(m, "enter")
	if view := stripANSI(m.footer.View()); strings.Contains(view, "chars") {
		t.Errorf("counter should clear after submit, footer = %q", view)
	}
}

func TestKeyboardEnhancements_UpdatesFooter(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 160, 30)

	m.Update(tea.KeyboardEnhancementsMsg{Flags: 1})
	if !m.kittyKeyboard {
		t.Fatal("key disambiguation should be recorded")
	}
	if view := stripANSI(m.footer.View()); !strings.Contains(view, "shift+enter") {
		t.Errorf("footer = %q, want shift+enter hint", view)
	}
}

func TestNotification_OnlyWhenBlurredAndEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		blurred bool
		want    bool
	}{
		{"disabled and focused", false, false, false},
		{"disabled and blurred", false, true, false},
		{"enabled and focused", true, false, false},
		{"enabled and blurred", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.SetNotificationsEnabled(tt.enabled)
			m := testModelWithSize(t, cfg, 80, 30)

			var gotBot, gotReply string
			m.notifyBot = func(botName, reply string) error {
				gotBot, gotReply = botName, reply
				return nil
			}
			if tt.blurred {
				m.Update(tea.BlurMsg{})
			}

			m = typeText(m, "hello")
			cmd := sendKeyCmd(m, "enter")

			if (cmd != nil) != tt.want {
				t.Fatalf("notification cmd present = %v, want %v", cmd != nil, tt.want)
			}
			if cmd == nil {
				return
			}
			msg := cmd()
			if res, ok := msg.(NotificationResultMsg); !ok || res.Err != nil {
				t.Errorf("cmd() = %#v, want successful NotificationResultMsg", msg)
			}
			if gotBot != "Bot" || gotReply != "Hi there!" {
				t.Errorf("notified %q/%q, want Bot/Hi there!", gotBot, gotReply)
			}
		})
	}
}

func TestNotification_RefocusStopsNotifying(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetNotificationsEnabled(true)
	m := testModelWithSize(t, cfg, 80, 30)

	m.Update(tea.BlurMsg{})
	m.Update(tea.FocusMsg{})

	m = typeText(m, "hello")
	if cmd := sendKeyCmd(m, "enter"); cmd != nil {
		t.Error("focused window should not get a notification")
	}
}

func TestNotification_FailureFlashes(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	_, cmd := m.Update(NotificationResultMsg{Err: errors.New("no dbus")})
	if cmd == nil {
		t.Error("expected flash tick command")
	}
	if !m.footer.HasFlash() {
		t.Error("failed notification should flash a warning")
	}
}

func TestFlashTick_ClearsExpired(t *testing.T) {
	m := testModelWithSize(t, testConfig(t), 80, 30)

	m.footer.SetFlashWithDuration("gone", ui.FlashInfo, 0)
	_, cmd := m.Update(ui.FlashTickMsg{})
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
	if cmd != nil {
		t.Error("no more ticks needed once the flash is gone")
	}

	m.ShowFlashInfo("still here")
	_, cmd = m.Update(ui.FlashTickMsg{})
	if cmd == nil || !m.footer.HasFlash() {
		t.Error("live flash should keep ticking")
	}
}
