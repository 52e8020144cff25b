// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides shared visual components for the vinoteca TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Tab identifies one of the top-level views.
type Tab int

const (
	TabChat Tab = iota
	TabCatalog
)

// String returns the display label for the tab.
func (t Tab) String() string {
	switch t {
	case TabChat:
		return "Sommelier"
	case TabCatalog:
		return "Catálogo"
	default:
		return "?"
	}
}

// Header is the title bar with the view tabs.
type Header struct {
	Title  string
	Active Tab
	Width  int
	theme  *styles.Theme
}

// NewHeader creates a header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "vinoteca",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetActive updates the highlighted tab.
func (h *Header) SetActive(tab Tab) {
	h.Active = tab
}

// View renders the header line.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	title := h.theme.HeaderTitle.Render("🍷 " + h.Title)

	tabs := make([]string, 0, 2)
	for _, tab := range []Tab{TabChat, TabCatalog} {
		if tab == h.Active {
			tabs = append(tabs, h.theme.TabActive.Render(tab.String()))
		} else {
			tabs = append(tabs, h.theme.TabInactive.Render(tab.String()))
		}
	}
	right := strings.Join(tabs, " ")

	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return h.theme.Header.Width(width).Render(
		title + strings.Repeat(" ", gap) + right)
}
