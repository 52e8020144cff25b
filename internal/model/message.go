// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	// RoleStatus marks transient status lines, such as the catalog-refresh
	// progress message. Status messages are the only messages whose text
	// may be rewritten after they are appended.
	RoleStatus Role = "status"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "Vos"
	case RoleAssistant:
		return "Sommelier"
	case RoleStatus:
		return "Sistema"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the conversation transcript.
//
// User and assistant messages are immutable once appended. Sources carries
// the document names the server grounded its answer on; it is always empty
// for user messages.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Sources   []string  `json:"sources,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewUserMessage creates a message for text the user submitted.
func NewUserMessage(text string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage creates a message for a server answer. A nil sources
// slice is normalized to empty so rendering never distinguishes the two.
func NewAssistantMessage(text string, sources []string) *Message {
	if sources == nil {
		sources = []string{}
	}
	return &Message{
		ID:        generateID(),
		Role:      RoleAssistant,
		Text:      text,
		Sources:   sources,
		Timestamp: time.Now(),
	}
}

// NewStatusMessage creates a transient status message.
func NewStatusMessage(text string) *Message {
	return &Message{
		ID:        generateID(),
		Role:      RoleStatus,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// IsUser reports whether the message was authored by the user.
func (m *Message) IsUser() bool {
	return m.Role == RoleUser
}

// HasSources reports whether the message carries at least one source tag.
func (m *Message) HasSources() bool {
	return len(m.Sources) > 0
}

// Preview returns a truncated, rune-safe preview of the message text.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Text)
	if len(runes) <= maxLen {
		return m.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// generateID creates a unique message ID.
func generateID() string {
	return "msg_" + uuid.NewString()
}
