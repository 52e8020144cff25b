// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/LegalHubArg/bot-analitica/internal/catalog"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:5000)
	BaseURL string

	// Timeout for catalog and refresh requests (default: 30s)
	Timeout time.Duration

	// AskTimeout for /api/ask, which runs a retrieval pipeline server-side
	// and is much slower than the other endpoints (default: 120s)
	AskTimeout time.Duration

	// AskRate limits how many ask requests per second the client will
	// issue; a burst of one question is always allowed (default: 0.5)
	AskRate float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:    "http://127.0.0.1:5000",
		Timeout:    30 * time.Second,
		AskTimeout: 120 * time.Second,
		AskRate:    0.5,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the catalog backend.
// It provides methods for asking questions, reloading the index, and
// fetching the wine list.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	resp, err := client.Ask(ctx, "¿Qué malbec recomendás?")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	askClient  *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.AskTimeout == 0 {
		config.AskTimeout = 120 * time.Second
	}
	if config.AskRate == 0 {
		config.AskRate = 0.5
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		askClient: &http.Client{
			Timeout: config.AskTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(config.AskRate), 1),
	}
}

// =============================================================================
// ASK
// =============================================================================

// Ask sends a question to the assistant and returns its decoded response.
//
// A returned error is always transport-level: the call did not complete or
// the body could not be decoded. Application-level failures arrive as a
// non-nil AskResponse with the Error field set, including on non-2xx
// statuses whose body carries an error payload. A response with neither
// Answer nor Error set is the malformed-success case and is the caller's
// to handle.
func (c *Client) Ask(ctx context.Context, query string) (*AskResponse, error) {
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	body, err := json.Marshal(AskRequest{Query: query})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/ask", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.askClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var result AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: "ask request failed: " + resp.Status,
			}
		}
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK && result.Error == "" {
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "ask request failed: " + resp.Status,
		}
	}

	return &result, nil
}

// =============================================================================
// REFRESH
// =============================================================================

// Refresh asks the backend to reload its document index. With force set,
// the backend drops the stored chunks first and rebuilds from scratch.
func (c *Client) Refresh(ctx context.Context, force bool) (*RefreshResponse, error) {
	var reqBody []byte
	if force {
		var err error
		reqBody, err = json.Marshal(RefreshRequest{Force: true})
		if err != nil {
			return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/refresh", bytes.NewReader(reqBody))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var result RefreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK && result.Error == "" {
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "refresh request failed: " + resp.Status,
		}
	}

	return &result, nil
}

// =============================================================================
// CATALOG
// =============================================================================

// Wines fetches the full wine list.
func (c *Client) Wines(ctx context.Context) ([]catalog.Wine, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/wines", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Try to read error message
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: apiErr.Error,
			}
		}
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "wines request failed: " + resp.Status,
		}
	}

	var wines []catalog.Wine
	if err := json.NewDecoder(resp.Body).Decode(&wines); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return wines, nil
}

// =============================================================================
// DEBUG
// =============================================================================

// Debug fetches the backend initialization report.
func (c *Client) Debug(ctx context.Context) (*DebugInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/debug/db", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	var result DebugInfo
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return &result, nil
}

// =============================================================================
// UTILITY METHODS
// =============================================================================

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// transportError maps an http.Client failure onto the error taxonomy.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return &ClientError{Type: ErrTypeUnreachable, Message: "backend is not reachable", Cause: err}
}
