// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// messages.go - Bubble Tea message types for the chat view: settlement of
// /api/ask and /api/refresh requests.

package chat

import "github.com/LegalHubArg/bot-analitica/internal/api"

// =============================================================================
// ASK MESSAGES
// =============================================================================

// AskResultMsg delivers the settlement of an ask request. Exactly one of
// Response or Err is set: Err covers transport failures, Response carries
// everything the backend said, including application-level errors.
type AskResultMsg struct {
	// Token identifies the in-flight request that produced this result.
	// Results whose token no longer matches the held one are stale and
	// must be dropped.
	Token    string
	Response *api.AskResponse
	Err      error
}

// =============================================================================
// REFRESH MESSAGES
// =============================================================================

// RefreshResultMsg delivers the settlement of a refresh request.
type RefreshResultMsg struct {
	// StatusID is the transcript status message to rewrite in place.
	StatusID string
	Message  string
	Err      error
}
