// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered conversation history.
//
// The history is append-only: messages are never removed or reordered, and
// user/assistant messages are never edited. The single sanctioned mutation
// is RewriteStatus, which updates the text of a status message in place
// (the refresh flow reports progress and outcome through one line rather
// than appending a second message).
type Transcript struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		ID:        "conv_" + generateID(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the transcript.
func (t *Transcript) Append(msg *Message) {
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
}

// AppendUser creates and appends a user message, returning it.
func (t *Transcript) AppendUser(text string) *Message {
	msg := NewUserMessage(text)
	t.Append(msg)
	return msg
}

// AppendAssistant creates and appends an assistant message, returning it.
func (t *Transcript) AppendAssistant(text string, sources []string) *Message {
	msg := NewAssistantMessage(text, sources)
	t.Append(msg)
	return msg
}

// AppendStatus creates and appends a status message, returning it.
func (t *Transcript) AppendStatus(text string) *Message {
	msg := NewStatusMessage(text)
	t.Append(msg)
	return msg
}

// RewriteStatus replaces the text of the status message with the given ID.
// It reports false when no such status message exists. User and assistant
// messages cannot be rewritten through this or any other method.
func (t *Transcript) RewriteStatus(id, text string) bool {
	for _, msg := range t.Messages {
		if msg.ID == id && msg.Role == RoleStatus {
			msg.Text = text
			t.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Last returns the most recent message, or nil when the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.Messages) == 0 {
		return nil
	}
	return t.Messages[len(t.Messages)-1]
}

// LastAssistant returns the most recent assistant message, or nil.
func (t *Transcript) LastAssistant() *Message {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].Role == RoleAssistant {
			return t.Messages[i]
		}
	}
	return nil
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// IsEmpty reports whether the transcript has no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.Messages) == 0
}

// History returns the messages in order for rendering.
func (t *Transcript) History() []*Message {
	return t.Messages
}
