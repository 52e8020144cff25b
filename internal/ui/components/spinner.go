// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// NewSpinner returns the dot spinner both views use, in the theme style.
func NewSpinner(theme *styles.Theme) spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner
	return sp
}
