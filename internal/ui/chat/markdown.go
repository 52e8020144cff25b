// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/util"
)

// =============================================================================
// INLINE MARKDOWN
// =============================================================================

// RenderInline renders the minimal markdown subset the assistant emits:
// double-asterisk spans become bold and newlines are preserved as line
// breaks. Nothing else is interpreted. The text is server-provided, so
// any escape sequences it carries are stripped before styling; the only
// ANSI in the output is what the bold style itself adds.
func RenderInline(text string, bold lipgloss.Style) string {
	text = util.StripANSI(text)

	var b strings.Builder
	parts := strings.Split(text, "**")
	for i, part := range parts {
		// Odd segments sit between a pair of markers. A trailing
		// unpaired marker is rendered literally.
		if i%2 == 1 && i < len(parts)-1 {
			b.WriteString(bold.Render(part))
		} else if i%2 == 1 {
			b.WriteString("**")
			b.WriteString(part)
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}
