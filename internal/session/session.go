// Package session keeps per-browser state on the server, keyed by an opaque
// cookie id.
package session

import (
	"github.com/sahil8669/airaware/internal/chatbot"
	"github.com/sahil8669/airaware/internal/i18n"
)

// ChatEntry is one line of the chatbot transcript.
type ChatEntry struct {
	Role chatbot.Role
	Text string
}

// Session is the state held for one client.
type Session struct {
	ID   string
	User string
	Chat []ChatEntry
	Lang string
}

// LoggedIn reports whether a user has authenticated in this session.
func (s *Session) LoggedIn() bool {
	return s.User != ""
}

// Language returns the selected language code, defaulting to English. The
// code is returned verbatim even when no label set exists for it.
func (s *Session) Language() string {
	if s.Lang == "" {
		return i18n.Default
	}
	return s.Lang
}

// AppendExchange records a question and its reply. When limit is positive
// and the transcript holds more than limit exchanges, the oldest exchanges
// are dropped.
func (s *Session) AppendExchange(question, reply string, limit int) {
	s.Chat = append(s.Chat,
		ChatEntry{Role: chatbot.RoleUser, Text: question},
		ChatEntry{Role: chatbot.RoleBot, Text: reply},
	)
	if limit > 0 && len(s.Chat) > 2*limit {
		s.Chat = append([]ChatEntry(nil), s.Chat[len(s.Chat)-2*limit:]...)
	}
}

// Clear drops every field except the id.
func (s *Session) Clear() {
	s.User = ""
	s.Chat = nil
	s.Lang = ""
}

func (s *Session) clone() *Session {
	c := *s
	if s.Chat != nil {
		c.Chat = append([]ChatEntry(nil), s.Chat...)
	}
	return &c
}
