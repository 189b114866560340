// Package bot picks the canned reply for a user message.
package bot

import "strings"

// Fallback is the reply when no keyword matches.
const Fallback = "I didn't understand that."

// rule maps a lowercase keyword to its reply.
type rule struct {
	keyword string
	reply   string
}

// rules are checked in order; the first keyword found wins.
var rules = []rule{
	{keyword: "hello", reply: "Hi there!"},
	{keyword: "how are you", reply: "I'm doing well, thanks!"},
	{keyword: "bye", reply: "Goodbye!"},
}

// Resolve returns the reply for input. Matching is a case-insensitive
// substring search over rules in priority order.
func Resolve(input string) string {
	lower := strings.ToLower(input)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return Fallback
}
