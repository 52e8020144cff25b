// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testClient(srv *httptest.Server) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.AskRate = 1000 // tests fire requests back to back
	return NewClientWithConfig(cfg)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// =============================================================================
// ASK TESTS
// =============================================================================

func TestAskSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ask" {
			t.Errorf("path = %q, want /api/ask", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}

		var req AskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Query != "¿Qué malbec recomendás?" {
			t.Errorf("query = %q", req.Query)
		}

		jsonHandler(http.StatusOK, `{"answer": "**Malbec Reserva** de Zuccardi.", "sources": ["Malbec Reserva"]}`)(w, r)
	}))
	defer srv.Close()

	resp, err := testClient(srv).Ask(context.Background(), "¿Qué malbec recomendás?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if !resp.HasAnswer() {
		t.Error("HasAnswer should be true")
	}
	if resp.HasError() {
		t.Error("HasError should be false")
	}
	if len(resp.Sources) != 1 || resp.Sources[0] != "Malbec Reserva" {
		t.Errorf("Sources = %v", resp.Sources)
	}
}

func TestAskApplicationError(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusInternalServerError, `{"error": "Database not initialized"}`))
	defer srv.Close()

	resp, err := testClient(srv).Ask(context.Background(), "hola")
	if err != nil {
		t.Fatalf("application errors should not surface as transport errors, got %v", err)
	}
	if !resp.HasError() {
		t.Fatal("HasError should be true")
	}
	if resp.Error != "Database not initialized" {
		t.Errorf("Error = %q", resp.Error)
	}
}

func TestAskEmptyBody(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{}`))
	defer srv.Close()

	resp, err := testClient(srv).Ask(context.Background(), "hola")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if resp.HasAnswer() || resp.HasError() {
		t.Errorf("empty payload should carry neither answer nor error: %+v", resp)
	}
}

func TestAskTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := testClient(srv).Ask(context.Background(), "hola")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if !IsUnreachable(err) {
		t.Errorf("expected unreachable error, got %v", err)
	}
}

func TestAskRateLimited(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{"answer": "ok"}`))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.AskRate = 0.001
	client := NewClientWithConfig(cfg)

	if _, err := client.Ask(context.Background(), "primera"); err != nil {
		t.Fatalf("first ask failed: %v", err)
	}
	_, err := client.Ask(context.Background(), "segunda")
	if !IsRateLimited(err) {
		t.Errorf("expected rate-limited error, got %v", err)
	}
}

// =============================================================================
// REFRESH TESTS
// =============================================================================

func TestRefresh(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/refresh" {
			t.Errorf("path = %q, want /api/refresh", r.URL.Path)
		}
		gotBody = make([]byte, r.ContentLength)
		r.Body.Read(gotBody)
		jsonHandler(http.StatusOK, `{"message": "Se cargaron 12 fichas."}`)(w, r)
	}))
	defer srv.Close()

	resp, err := testClient(srv).Refresh(context.Background(), false)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if resp.Message != "Se cargaron 12 fichas." {
		t.Errorf("Message = %q", resp.Message)
	}
	if len(gotBody) != 0 {
		t.Errorf("plain refresh should send an empty body, got %q", gotBody)
	}
}

func TestRefreshForce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if !req.Force {
			t.Error("force flag should be set")
		}
		jsonHandler(http.StatusOK, `{"message": "Forced refresh: 40 chunks cleared. Se cargaron 12 fichas."}`)(w, r)
	}))
	defer srv.Close()

	if _, err := testClient(srv).Refresh(context.Background(), true); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
}

// =============================================================================
// WINES TESTS
// =============================================================================

func TestWines(t *testing.T) {
	body := `[
		{"metadata": {"identificacion": {"nombre": "Malbec Reserva", "bodega": "Zuccardi"}, "origen": {"region": "Mendoza"}}},
		{"metadata": {"identificacion": {"nombre": "Chardonnay", "bodega": "Catena"}, "origen": {"region": "Mendoza"}}}
	]`
	srv := httptest.NewServer(jsonHandler(http.StatusOK, body))
	defer srv.Close()

	wines, err := testClient(srv).Wines(context.Background())
	if err != nil {
		t.Fatalf("Wines failed: %v", err)
	}
	if len(wines) != 2 {
		t.Fatalf("got %d wines, want 2", len(wines))
	}
	if wines[0].Bodega() != "Zuccardi" {
		t.Errorf("Bodega = %q", wines[0].Bodega())
	}
}

func TestWinesBackendError(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusInternalServerError, `{"error": "Database not initialized"}`))
	defer srv.Close()

	_, err := testClient(srv).Wines(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var clientErr *ClientError
	if !errors.As(err, &clientErr) || clientErr.Message != "Database not initialized" {
		t.Errorf("err = %v", err)
	}
}

// =============================================================================
// DEBUG TESTS
// =============================================================================

func TestDebug(t *testing.T) {
	body := `{
		"status": "ok",
		"version": "1.3.0-intelligent-extraction",
		"drive_initialized": true,
		"analyzer_initialized": true,
		"tables": ["wine_chunks"],
		"engine_dialect": "postgresql"
	}`
	srv := httptest.NewServer(jsonHandler(http.StatusOK, body))
	defer srv.Close()

	info, err := testClient(srv).Debug(context.Background())
	if err != nil {
		t.Fatalf("Debug failed: %v", err)
	}
	if !info.IsOK() {
		t.Error("IsOK should be true")
	}
	if info.Version != "1.3.0-intelligent-extraction" {
		t.Errorf("Version = %q", info.Version)
	}
}

// =============================================================================
// ERROR HELPER TESTS
// =============================================================================

func TestErrorHelpers(t *testing.T) {
	if !IsTimeout(ErrTimeout) {
		t.Error("IsTimeout(ErrTimeout) should be true")
	}
	if !IsUnreachable(ErrUnreachable) {
		t.Error("IsUnreachable(ErrUnreachable) should be true")
	}
	if IsTimeout(ErrUnreachable) {
		t.Error("IsTimeout(ErrUnreachable) should be false")
	}

	wrapped := &ClientError{Type: ErrTypeTimeout, Message: "slow backend"}
	if !IsTimeout(wrapped) {
		t.Error("IsTimeout should match by type")
	}
}
