// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style for interactive input
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Malbec).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Gold).
			Bold(true)

	// Info style for secondary text
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Command style for slash commands in help text
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Olive)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Section header style for status output
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.TextPrimary)

	// Label style for field names
	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(16)

	// Value styles
	valueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	valueGoodStyle = lipgloss.NewStyle().
			Foreground(styles.Olive)

	valueBadStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)
