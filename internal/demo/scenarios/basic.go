// Package scenarios contains built-in demo scenarios for chatmock.
package scenarios

import (
	"time"

	"github.com/oashamkll/Myapp-02/internal/demo"
	"github.com/oashamkll/Myapp-02/internal/ui"
)

// Basic walks through every canned reply, submitting with both Enter and the
// Send button.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Greet the bot, ask how it is, confuse it, say goodbye",
	Width:       100,
	Height:      30,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Annotate("An empty conversation"),
		demo.Wait(1 * time.Second),

		demo.TypeWithDesc("Hello there", "Greeting matches the first rule"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		demo.Type("How are you today?"),
		demo.Annotate("The Send button submits exactly like Enter"),
		demo.ClickSend(),
		demo.Wait(800 * time.Millisecond),

		demo.Type("What's the weather like?"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		demo.Annotate("Blank input is ignored"),
		demo.Type("   "),
		demo.Key("enter"),
		demo.Key("backspace"),
		demo.Key("backspace"),
		demo.Key("backspace"),
		demo.Wait(500 * time.Millisecond),

		demo.Type("ok bye"),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),
		demo.Capture(),
	},
}

// Code shows a multi-line message with a fenced code block, entered with
// alt+enter so it works on any terminal.
var Code = &demo.Scenario{
	Name:        "code",
	Description: "Send a multi-line message with a highlighted code block",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		UserName: "Ada",
		BotName:  "Echo",
		Theme:    ui.ThemeTokyoNight,
	},
	Steps: []demo.Step{
		demo.Type("Does this say hello?"),
		demo.Key("alt+enter"),
		demo.Type("```go"),
		demo.Key("alt+enter"),
		demo.Type(`fmt.Println("hello")`),
		demo.Key("alt+enter"),
		demo.Type("```"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Annotate("Fenced code is highlighted inside the bubble"),
		demo.Wait(2 * time.Second),
	},
}

// Themes cycles through every built-in theme with ctrl+t.
var Themes = &demo.Scenario{
	Name:        "themes",
	Description: "Cycle through the built-in themes",
	Width:       100,
	Height:      30,
	Setup:       demo.DefaultSetup(),
	Steps:       themeSteps(),
}

func themeSteps() []demo.Step {
	steps := []demo.Step{
		demo.Type("hello"),
		demo.Key("enter"),
		demo.Type("how are you"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),
	}
	for range ui.ThemeNames() {
		steps = append(steps,
			demo.Key("ctrl+t"),
			demo.Wait(1200*time.Millisecond),
		)
	}
	return steps
}

// Scroll fills the message list and pages back through it.
var Scroll = &demo.Scenario{
	Name:        "scroll",
	Description: "Fill the window, page up through history, jump back to the end",
	Width:       80,
	Height:      24,
	Setup:       demo.DefaultSetup(),
	Steps:       scrollSteps(),
}

func scrollSteps() []demo.Step {
	var steps []demo.Step
	for _, text := range []string{"hello", "how are you", "tell me a joke", "bye", "hello again", "how are you now"} {
		steps = append(steps, demo.Type(text), demo.Key("enter"))
	}
	steps = append(steps,
		demo.Wait(800*time.Millisecond),
		demo.Annotate("PgUp scrolls back through the conversation"),
		demo.Key("pgup"),
		demo.Wait(800*time.Millisecond),
		demo.Key("home"),
		demo.Wait(800*time.Millisecond),
		demo.Annotate("A narrower window rewraps every bubble"),
		demo.Resize(60, 24),
		demo.Wait(800*time.Millisecond),
		demo.Key("end"),
		demo.Wait(1*time.Second),
	)
	return steps
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Code,
		Themes,
		Scroll,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
