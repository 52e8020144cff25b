// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewAssistantMessage_NormalizesNilSources(t *testing.T) {
	msg := NewAssistantMessage("hola", nil)
	if msg.Sources == nil {
		t.Fatal("NewAssistantMessage(nil sources) should normalize to empty slice")
	}
	if msg.HasSources() {
		t.Error("empty sources should report HasSources() == false")
	}
}

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("¿Qué malbec me recomendás?")
	if !msg.IsUser() {
		t.Error("user message should report IsUser() == true")
	}
	if msg.HasSources() {
		t.Error("user messages never carry sources")
	}
	if msg.ID == "" {
		t.Error("message ID should be generated")
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hola", 10, "hola"},
		{"long text truncated", "un malbec con mucha fruta", 10, "un malb..."},
		{"accents are single runes", "añada", 5, "añada"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.text)
			if got := msg.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	tr := NewTranscript()
	tr.AppendUser("primera")
	tr.AppendAssistant("segunda", nil)
	tr.AppendUser("tercera")

	if tr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tr.Len())
	}
	texts := []string{"primera", "segunda", "tercera"}
	for i, want := range texts {
		if tr.Messages[i].Text != want {
			t.Errorf("Messages[%d].Text = %q, want %q", i, tr.Messages[i].Text, want)
		}
	}
}

func TestTranscript_RewriteStatus(t *testing.T) {
	tr := NewTranscript()
	status := tr.AppendStatus("Recargando catálogo...")

	if !tr.RewriteStatus(status.ID, "Catálogo actualizado: 42 fichas") {
		t.Fatal("RewriteStatus should succeed for a status message")
	}
	if tr.Len() != 1 {
		t.Errorf("RewriteStatus must not append, Len() = %d", tr.Len())
	}
	if status.Text != "Catálogo actualizado: 42 fichas" {
		t.Errorf("status text = %q", status.Text)
	}
}

func TestTranscript_RewriteStatus_RejectsNonStatus(t *testing.T) {
	tr := NewTranscript()
	user := tr.AppendUser("hola")

	if tr.RewriteStatus(user.ID, "reescrito") {
		t.Error("RewriteStatus must refuse to touch user messages")
	}
	if user.Text != "hola" {
		t.Errorf("user text mutated to %q", user.Text)
	}
}

func TestTranscript_LastAssistant(t *testing.T) {
	tr := NewTranscript()
	if tr.LastAssistant() != nil {
		t.Error("empty transcript should have no last assistant message")
	}

	tr.AppendAssistant("una", nil)
	tr.AppendUser("pregunta")
	last := tr.LastAssistant()
	if last == nil || last.Text != "una" {
		t.Errorf("LastAssistant() = %+v", last)
	}
}
