// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the catalog backend.
//
// The backend exposes a small JSON surface: questions go to POST
// /api/ask, index reloads to POST /api/refresh, the wine list comes
// from GET /api/wines, and GET /api/debug/db reports initialization
// state for diagnostics.
//
// # Key Types
//
//   - Client: HTTP client for backend communication
//   - AskResponse: assistant reply with optional sources or error
//   - RefreshResponse: reload confirmation message
//   - ClientError: typed error with transport-level categories
//
// # Error Model
//
// Methods return an error only for transport-level failures: the call
// did not complete, timed out, or the body could not be decoded.
// Application-level failures are data, delivered in the response Error
// field, so callers can render them differently from a dead network.
//
// # Usage
//
//	client := api.NewClient()
//	resp, err := client.Ask(ctx, "¿Qué malbec recomendás?")
//	if err != nil {
//	    // transport failure
//	}
//	if resp.HasError() {
//	    // backend reported a failure
//	}
package api
