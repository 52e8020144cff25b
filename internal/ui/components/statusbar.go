// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// Shortcut is one key hint in a status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// RenderShortcuts renders a row of key hints in the shared hint style.
func RenderShortcuts(theme *styles.Theme, shortcuts []Shortcut) string {
	parts := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		parts = append(parts, theme.ShortcutKey.Render(s.Key)+theme.ShortcutDesc.Render(" "+s.Desc))
	}
	return strings.Join(parts, "  ")
}
