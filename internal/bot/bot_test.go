package bot

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hello", "Hello world", "Hi there!"},
		{"how are you mixed case", "how ARE you?", "I'm doing well, thanks!"},
		{"bye", "bye now", "Goodbye!"},
		{"no match", "xyz", Fallback},
		{"empty", "", Fallback},
		{"keyword inside word", "othello", "Hi there!"},
		{"bye inside word", "goodbye friend", "Goodbye!"},
		{"hello beats how are you", "how are you? hello!", "Hi there!"},
		{"hello beats bye", "BYE and HELLO", "Hi there!"},
		{"how are you beats bye", "bye, how are you", "I'm doing well, thanks!"},
		{"partial phrase", "how are u", Fallback},
		{"upper case", "HELLO", "Hi there!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.input); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	inputs := []string{"Hello world", "how ARE you?", "bye now", "xyz", "  "}
	for _, in := range inputs {
		first := Resolve(in)
		for i := 0; i < 5; i++ {
			if got := Resolve(in); got != first {
				t.Fatalf("Resolve(%q) changed between calls: %q then %q", in, first, got)
			}
		}
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{"hello", "how are you", "bye"}
	if len(rules) != len(want) {
		t.Fatalf("len(rules) = %d, want %d", len(rules), len(want))
	}
	for i, kw := range want {
		if rules[i].keyword != kw {
			t.Errorf("rules[%d].keyword = %q, want %q", i, rules[i].keyword, kw)
		}
	}
}
