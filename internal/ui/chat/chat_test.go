// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/model"
	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(styles.NewTheme(), api.NewClient())
	m, _ = m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func submitted(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// settle delivers an ask settlement carrying the currently held token.
func settle(m Model, resp *api.AskResponse, err error) (Model, tea.Cmd) {
	return m.handleAskResult(AskResultMsg{Token: m.askToken, Response: resp, Err: err})
}

// =============================================================================
// SUBMIT TESTS
// =============================================================================

func TestSubmitAppendsUserMessageAndIssuesCall(t *testing.T) {
	m := testModel(t)

	m, cmd := submitted(t, m, "¿Qué malbec recomendás?")

	if m.transcript.Len() != 1 {
		t.Fatalf("transcript length = %d, want 1", m.transcript.Len())
	}
	last := m.transcript.Last()
	if !last.IsUser() || last.Text != "¿Qué malbec recomendás?" {
		t.Errorf("last message = %+v", last)
	}
	if m.input.Value() != "" {
		t.Error("composer should be cleared")
	}
	if m.state != StatePending {
		t.Error("state should be Pending")
	}
	if !m.typing {
		t.Error("typing placeholder should be visible")
	}
	if cmd == nil {
		t.Error("submit should issue the ask command")
	}
}

func TestSubmitEmptyIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		m := testModel(t)
		m, cmd := submitted(t, m, input)

		if m.transcript.Len() != 0 {
			t.Errorf("submit(%q) changed transcript length to %d", input, m.transcript.Len())
		}
		if m.state != StateIdle {
			t.Errorf("submit(%q) changed state", input)
		}
		if cmd != nil {
			t.Errorf("submit(%q) issued a command", input)
		}
	}
}

func TestSubmitWhilePendingIsRejected(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "primera pregunta")
	token := m.askToken

	m, cmd := submitted(t, m, "segunda pregunta")

	if m.transcript.Len() != 1 {
		t.Errorf("transcript length = %d, want 1", m.transcript.Len())
	}
	if cmd != nil {
		t.Error("second submit should not issue a command")
	}
	if m.askToken != token {
		t.Error("held token should be unchanged")
	}
}

// =============================================================================
// SETTLEMENT TESTS
// =============================================================================

func TestSettlementBranches(t *testing.T) {
	tests := []struct {
		name     string
		resp     *api.AskResponse
		err      error
		wantText string
	}{
		{
			name:     "answer with sources",
			resp:     &api.AskResponse{Answer: "Hello", Sources: []string{"doc1.pdf"}},
			wantText: "Hello",
		},
		{
			name:     "application error",
			resp:     &api.AskResponse{Error: "sin stock"},
			wantText: appErrorTextPfx + "sin stock",
		},
		{
			name:     "empty payload falls back",
			resp:     &api.AskResponse{},
			wantText: fallbackText,
		},
		{
			name:     "transport failure",
			err:      errors.New("connection refused"),
			wantText: networkTextPfx + "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			m, _ = submitted(t, m, "hola")

			m, _ = settle(m, tt.resp, tt.err)

			if m.transcript.Len() != 2 {
				t.Fatalf("transcript length = %d, want exactly one assistant message", m.transcript.Len())
			}
			last := m.transcript.Last()
			if last.Role != model.RoleAssistant {
				t.Errorf("last role = %v", last.Role)
			}
			if last.Text != tt.wantText {
				t.Errorf("text = %q, want %q", last.Text, tt.wantText)
			}
			if m.typing {
				t.Error("typing placeholder should be removed at settlement")
			}
			if m.state != StateIdle {
				t.Error("state should return to Idle")
			}
			if m.askToken != "" {
				t.Error("held token should be cleared")
			}
		})
	}
}

func TestSettlementCarriesSources(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "hola")
	m, _ = settle(m, &api.AskResponse{Answer: "Hello", Sources: []string{"doc1.pdf"}}, nil)

	last := m.transcript.Last()
	if len(last.Sources) != 1 || last.Sources[0] != "doc1.pdf" {
		t.Errorf("Sources = %v", last.Sources)
	}
}

func TestStaleSettlementIsDropped(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "hola")

	m, _ = m.handleAskResult(AskResultMsg{
		Token:    "stale-token",
		Response: &api.AskResponse{Answer: "tarde"},
	})

	if m.transcript.Len() != 1 {
		t.Errorf("stale result appended a message, length = %d", m.transcript.Len())
	}
	if m.state != StatePending {
		t.Error("stale result should not clear Pending")
	}
	if !m.typing {
		t.Error("stale result should not remove the typing placeholder")
	}
}

func TestSubmitWorksAgainAfterSettlement(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "primera")
	m, _ = settle(m, &api.AskResponse{Answer: "ok"}, nil)

	m, cmd := submitted(t, m, "segunda")
	if cmd == nil {
		t.Error("submit after settlement should issue a command")
	}
	if m.transcript.Len() != 3 {
		t.Errorf("transcript length = %d, want 3", m.transcript.Len())
	}
}

func TestRateLimitedSettlementUsesDistinctMessage(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "primera")
	m, _ = settle(m, &api.AskResponse{Answer: "ok"}, nil)
	m, _ = submitted(t, m, "segunda")

	m, _ = settle(m, nil, api.ErrRateLimited)

	last := m.transcript.Last()
	if last.Role != model.RoleAssistant {
		t.Fatalf("last role = %v", last.Role)
	}
	if last.Text != rateLimitText {
		t.Errorf("text = %q, want %q", last.Text, rateLimitText)
	}
	if strings.HasPrefix(last.Text, networkTextPfx) {
		t.Error("throttling must not be presented as a network error")
	}
	if m.state != StateIdle {
		t.Error("state should return to Idle")
	}
}

func TestKeystrokesWhilePendingDoNotReachComposer(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "hola")

	for _, r := range "uva" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if got := m.input.Value(); got != "" {
		t.Errorf("composer value = %q, want empty while pending", got)
	}

	m, _ = settle(m, &api.AskResponse{Answer: "ok"}, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if got := m.input.Value(); got != "x" {
		t.Errorf("composer value after settlement = %q, want %q", got, "x")
	}
}

// =============================================================================
// REFRESH TESTS
// =============================================================================

func TestRefreshRewritesStatusInPlace(t *testing.T) {
	m := testModel(t)

	m, cmd := m.refresh(false)
	if cmd == nil {
		t.Fatal("refresh should issue a command")
	}
	if m.transcript.Len() != 1 {
		t.Fatalf("transcript length = %d, want 1", m.transcript.Len())
	}
	last := m.transcript.Last()
	if last.Role != model.RoleStatus || last.Text != refreshingText {
		t.Errorf("status message = %+v", last)
	}

	m, _ = m.handleRefreshResult(RefreshResultMsg{
		StatusID: m.refreshStatusID,
		Message:  "Se cargaron 12 fichas.",
	})

	if m.transcript.Len() != 1 {
		t.Errorf("settlement appended instead of rewriting, length = %d", m.transcript.Len())
	}
	last = m.transcript.Last()
	if last.Text != "Se cargaron 12 fichas." {
		t.Errorf("status text = %q", last.Text)
	}
	if m.refreshing {
		t.Error("refreshing should be cleared at settlement")
	}
}

func TestRefreshFailureUsesFixedString(t *testing.T) {
	m := testModel(t)
	m, _ = m.refresh(false)
	statusID := m.refreshStatusID

	m, _ = m.handleRefreshResult(RefreshResultMsg{StatusID: statusID, Err: errors.New("boom")})

	last := m.transcript.Last()
	if last.Text != refreshFailText {
		t.Errorf("status text = %q, want %q", last.Text, refreshFailText)
	}
}

func TestRefreshWhileRefreshingIsRejected(t *testing.T) {
	m := testModel(t)
	m, _ = m.refresh(false)

	m, cmd := m.refresh(false)
	if cmd != nil {
		t.Error("second refresh should not issue a command")
	}
	if m.transcript.Len() != 1 {
		t.Errorf("transcript length = %d, want 1", m.transcript.Len())
	}
}

func TestRefreshDoesNotBlockAsk(t *testing.T) {
	m := testModel(t)
	m, _ = m.refresh(false)

	m, cmd := submitted(t, m, "hola")
	if cmd == nil {
		t.Error("ask should still work during a refresh")
	}
}

// =============================================================================
// WEATHER SHORTCUT TESTS
// =============================================================================

func TestWeatherShortcutSubmitsCannedQuery(t *testing.T) {
	m := testModel(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	if cmd == nil {
		t.Fatal("shortcut should issue the ask command")
	}
	last := m.transcript.Last()
	if !last.IsUser() || last.Text != weatherQueryText {
		t.Errorf("last message = %+v", last)
	}
}

// =============================================================================
// RENDERING TESTS
// =============================================================================

func TestRenderInline(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hola", "hola"},
		{"newlines preserved", "uno\ndos", "uno\ndos"},
		{"unpaired marker literal", "a**b", "a**b"},
		{"strips escape sequences", "a\x1b[31mrojo\x1b[0mb", "arojob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderInline(tt.input, bold)
			if got != tt.want {
				t.Errorf("RenderInline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderInlineBoldSpan(t *testing.T) {
	bold := lipgloss.NewStyle().Bold(true)
	got := RenderInline("un **Malbec** joven", bold)

	if !strings.Contains(got, "Malbec") {
		t.Errorf("bold span content missing: %q", got)
	}
	if strings.Contains(got, "**") {
		t.Errorf("markers should be consumed: %q", got)
	}
}

func TestViewShowsTypingOnlyWhilePending(t *testing.T) {
	m := testModel(t)
	m, _ = submitted(t, m, "hola")

	if !strings.Contains(m.renderMessages(), typingText) {
		t.Error("typing indicator should render while pending")
	}

	m, _ = settle(m, &api.AskResponse{Answer: "ok"}, nil)
	if strings.Contains(m.renderMessages(), typingText) {
		t.Error("typing indicator should be gone after settlement")
	}
}
