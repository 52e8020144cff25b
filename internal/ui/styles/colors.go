// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the vinoteca TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Malbec - Primary accent, assistant messages, selections
var Malbec = lipgloss.AdaptiveColor{Light: "#7F1D3A", Dark: "#C0526F"}

// MalbecDeep - Darker wine tone for backgrounds
var MalbecDeep = lipgloss.AdaptiveColor{Light: "#5C142B", Dark: "#461222"}

// Gold - Brand color, highlights, vintage tags
var Gold = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// GoldDeep - Darker gold for backgrounds
var GoldDeep = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#78350F"}

// Olive - Success states, region tags
var Olive = lipgloss.AdaptiveColor{Light: "#4D7C0F", Dark: "#A3E635"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, failed requests
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - Darker rose for backgrounds
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#881337"}

// Amber - Warnings, pending states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFBF5", Dark: "#1C1917"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F0E8", Dark: "#161311"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E7E0D4", Dark: "#3B342E"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#292524", Dark: "#E7E5E4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#78716C", Dark: "#A8A29E"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#57534E"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFBF5", Dark: "#1C1917"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Warm neutral tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#EFE9DE", Dark: "#33302B"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#44403C", Dark: "#E7E5E4"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#57534E"}

// Assistant message bubble - Wine tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#FBF1F4", Dark: "#3A2530"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#6B2139", Dark: "#F2DDE4"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#C0526F", Dark: "#C0526F"}

// Status message bubble - Amber tones
var StatusBubbleBg = lipgloss.AdaptiveColor{Light: "#FEF3C7", Dark: "#78350F"}
var StatusBubbleFg = lipgloss.AdaptiveColor{Light: "#92400E", Dark: "#FEF3C7"}
var StatusBubbleBorder = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
