// Package conversation holds the chat transcript: an append-only, ordered
// list of messages shown top-to-bottom in the chat panel.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

// Author identifies who wrote a message.
type Author int

const (
	AuthorUser Author = iota
	AuthorBot
)

func (a Author) String() string {
	switch a {
	case AuthorUser:
		return "user"
	case AuthorBot:
		return "bot"
	default:
		return "unknown"
	}
}

// Message is one chat line. Messages are values; once appended to a Store
// they are never modified.
type Message struct {
	ID        string
	Text      string
	Author    Author
	CreatedAt time.Time
}

// NewMessage creates a message stamped with a fresh ID and the current time.
func NewMessage(text string, author Author) Message {
	return Message{
		ID:        uuid.New().String(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
}

// IsUser reports whether the message was written by the user.
func (m Message) IsUser() bool {
	return m.Author == AuthorUser
}

// Store is the ordered transcript. Insertion order is display order and the
// length only grows; there is no way to remove or reorder messages.
//
// Store is owned by the UI event loop and is not safe for concurrent use.
type Store struct {
	messages []Message
}

// NewStore returns an empty transcript.
func NewStore() *Store {
	return &Store{messages: []Message{}}
}

// Append adds msg to the end of the transcript.
func (s *Store) Append(msg Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns a snapshot of the transcript for rendering. Mutating the
// returned slice does not affect the store.
func (s *Store) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// Last returns the newest message written by author.
func (s *Store) Last(author Author) (Message, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Author == author {
			return s.messages[i], true
		}
	}
	return Message{}, false
}
