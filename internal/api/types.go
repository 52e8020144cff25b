// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// REQUEST TYPES
// =============================================================================

// AskRequest is the body for POST /api/ask.
type AskRequest struct {
	Query string `json:"query"`
}

// RefreshRequest is the body for POST /api/refresh.
type RefreshRequest struct {
	Force bool `json:"force,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// AskResponse is the payload for POST /api/ask. Exactly one of Answer or
// Error is set on a well-formed response; both may be empty when the
// backend returns a malformed success.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
	Error   string   `json:"error"`
}

// HasAnswer reports whether the response carries a usable answer.
func (r *AskResponse) HasAnswer() bool {
	return r.Answer != ""
}

// HasError reports whether the backend signaled an application-level error.
func (r *AskResponse) HasError() bool {
	return r.Error != ""
}

// RefreshResponse is the payload for POST /api/refresh.
type RefreshResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// DebugInfo is the payload for GET /api/debug/db. Field presence depends
// on how far backend initialization got.
type DebugInfo struct {
	Status              string   `json:"status"`
	Version             string   `json:"version"`
	DriveInitialized    bool     `json:"drive_initialized"`
	AnalyzerInitialized bool     `json:"analyzer_initialized"`
	Message             string   `json:"message,omitempty"`
	InitError           string   `json:"init_error,omitempty"`
	Tables              []string `json:"tables,omitempty"`
	DatabaseURLMasked   string   `json:"database_url_masked,omitempty"`
	EngineDialect       string   `json:"engine_dialect,omitempty"`
}

// IsOK reports whether the backend considers itself fully initialized.
func (d *DebugInfo) IsOK() bool {
	return d.Status == "ok"
}
