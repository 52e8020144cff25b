// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Rendering for the chat view: the transcript, the typing
// indicator, the composer, and the status bar.

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/model"
	"github.com/LegalHubArg/bot-analitica/internal/ui/components"
	"github.com/LegalHubArg/bot-analitica/internal/util"
)

// chromeHeight is the fixed number of lines around the viewport:
// composer (2, with its top border) and status bar (1).
const chromeHeight = 3

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the chat view.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.renderInput(),
		m.renderStatusBar(),
	)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderMessages renders the transcript plus the typing indicator.
func (m *Model) renderMessages() string {
	if m.transcript.IsEmpty() && !m.typing {
		return m.renderEmptyState()
	}

	var sections []string
	for _, msg := range m.transcript.History() {
		sections = append(sections, m.renderMessage(msg))
	}

	if m.typing {
		sections = append(sections, m.renderTyping())
	}

	return strings.Join(sections, "\n\n")
}

// renderMessage dispatches on the message role.
func (m *Model) renderMessage(msg *model.Message) string {
	switch msg.Role {
	case model.RoleUser:
		return m.renderUserMessage(msg)
	case model.RoleStatus:
		return m.renderStatusMessage(msg)
	default:
		return m.renderAssistantMessage(msg)
	}
}

// renderUserMessage renders the user's text right-aligned in a neutral
// bubble.
func (m *Model) renderUserMessage(msg *model.Message) string {
	label := m.theme.SenderLabel.Render(msg.Role.DisplayName())
	if m.showTimestamps {
		label += " " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
	}

	bubble := m.theme.UserBubble.
		MaxWidth(m.bubbleWidth()).
		Render(util.StripANSI(msg.Text))

	block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, block)
}

// renderAssistantMessage renders the assistant reply with its minimal
// markdown honored and sources listed beneath.
func (m *Model) renderAssistantMessage(msg *model.Message) string {
	label := m.theme.SenderLabel.Render(msg.Role.DisplayName())
	if m.showTimestamps {
		label += " " + m.theme.Timestamp.Render(msg.Timestamp.Format("15:04"))
	}

	text := RenderInline(msg.Text, m.theme.BoldText)
	bubble := m.theme.AssistantBubble.
		MaxWidth(m.bubbleWidth()).
		Render(text)

	parts := []string{label, bubble}
	if m.showSources && msg.HasSources() {
		parts = append(parts, m.renderSources(msg.Sources))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusMessage renders a centered status line.
func (m *Model) renderStatusMessage(msg *model.Message) string {
	bubble := m.theme.StatusBubble.Render(util.StripANSI(msg.Text))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bubble)
}

// renderSources renders the source tags beneath an assistant reply.
func (m *Model) renderSources(sources []string) string {
	tags := make([]string, 0, len(sources))
	for _, s := range sources {
		s = strings.TrimSpace(util.StripANSI(s))
		if s == "" {
			continue
		}
		tags = append(tags, "["+util.TruncateWidth(s, 30)+"]")
	}
	if len(tags) == 0 {
		return ""
	}
	return m.theme.SourceList.Render("Fuentes: " + strings.Join(tags, " "))
}

// renderTyping renders the transient typing indicator.
func (m *Model) renderTyping() string {
	return m.spinner.View() + " " + m.theme.ThinkingText.Render(typingText)
}

// renderEmptyState renders the welcome hint shown before any exchange.
func (m *Model) renderEmptyState() string {
	hint := m.theme.Placeholder.Render(
		"Bienvenido a la vinoteca.\n" +
			"Preguntale al sommelier por un vino, una bodega o un maridaje.")
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, hint)
}

// =============================================================================
// COMPOSER AND STATUS BAR
// =============================================================================

// renderInput renders the composer. While a request is pending the
// composer is shown disabled.
func (m Model) renderInput() string {
	if m.state == StatePending {
		return m.theme.InputContainer.Width(m.width).Render(
			m.theme.InputPlaceholder.Render("Esperando al sommelier..."))
	}
	return m.theme.InputContainer.Width(m.width).Render(m.input.View())
}

// renderStatusBar renders the shortcut hints, and the busy spinner while
// a refresh is running.
func (m Model) renderStatusBar() string {
	var left string
	if m.refreshing {
		left = m.spinner.View() + " " + m.theme.ThinkingText.Render("recargando")
	} else {
		left = components.RenderShortcuts(m.theme, []components.Shortcut{
			{Key: "Enter", Desc: "enviar"},
			{Key: "C-r", Desc: "recargar"},
			{Key: "C-t", Desc: "clima"},
			{Key: "Tab", Desc: "catálogo"},
		})
	}
	return m.theme.StatusBar.Width(m.width).Render(left)
}

// bubbleWidth bounds message bubbles to most of the view width.
func (m Model) bubbleWidth() int {
	w := m.width * 3 / 4
	if w < 20 {
		w = 20
	}
	return w
}
