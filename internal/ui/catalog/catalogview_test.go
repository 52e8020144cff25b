// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalogview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/catalog"
	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testWine(nombre, bodega, region string) catalog.Wine {
	var w catalog.Wine
	w.Metadata.Identificacion.Nombre = nombre
	w.Metadata.Identificacion.Bodega = bodega
	w.Metadata.Origen.Region = region
	return w
}

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(styles.NewTheme(), api.NewClient())
	m, _ = m.handleResize(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t)
	m, _ = m.handleLoaded(LoadedMsg{Items: []catalog.Wine{
		testWine("Malbec Reserva", "Zuccardi", "Mendoza"),
		testWine("Chardonnay", "Catena", "Mendoza"),
		testWine("Pinot Noir", "Chacra", "Río Negro"),
	}})
	return m
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestHandleLoadedReplacesStore(t *testing.T) {
	m := loadedModel(t)

	if len(m.Visible()) != 3 {
		t.Errorf("visible = %d, want 3", len(m.Visible()))
	}
	if m.loadErr != nil {
		t.Errorf("loadErr = %v", m.loadErr)
	}
}

func TestLoadFailureKeepsLastGoodItems(t *testing.T) {
	m := loadedModel(t)

	m, _ = m.handleLoaded(LoadedMsg{Err: errors.New("connection refused")})

	if m.store.Len() != 3 {
		t.Errorf("failed reload cleared the store, len = %d", m.store.Len())
	}
	grid := m.renderGrid()
	if !strings.Contains(grid, "No se pudo cargar") {
		t.Error("grid should show the error placeholder")
	}
	if strings.Contains(grid, "Malbec Reserva") {
		t.Error("error placeholder should replace the grid, not sit beside it")
	}
}

func TestReloadAfterFailureRestoresGrid(t *testing.T) {
	m := loadedModel(t)
	m, _ = m.handleLoaded(LoadedMsg{Err: errors.New("boom")})

	m, _ = m.handleLoaded(LoadedMsg{Items: []catalog.Wine{
		testWine("Torrontés", "Colomé", "Salta"),
	}})

	grid := m.renderGrid()
	if !strings.Contains(grid, "Torrontés") {
		t.Error("grid should render the fresh items")
	}
	if m.store.Len() != 1 {
		t.Errorf("store len = %d, want 1", m.store.Len())
	}
}

// =============================================================================
// FILTER INTERACTION TESTS
// =============================================================================

func TestCycleBodegaAdvancesFilter(t *testing.T) {
	m := loadedModel(t)

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.filter.Bodega != "Catena" {
		t.Errorf("Bodega = %q, want first sorted value", m.filter.Bodega)
	}

	// Cycling past the end wraps back to the sentinel
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.filter.Bodega != catalog.FacetAll {
		t.Errorf("Bodega = %q, want %q after full cycle", m.filter.Bodega, catalog.FacetAll)
	}
}

func TestClearFilterResetsEverything(t *testing.T) {
	m := loadedModel(t)
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m.filter.Search = "malbec"

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if !m.filter.IsNeutral() {
		t.Errorf("filter = %+v, want neutral", m.filter)
	}
	if len(m.Visible()) != 3 {
		t.Errorf("visible = %d, want full set", len(m.Visible()))
	}
}

func TestSearchTyping(t *testing.T) {
	m := loadedModel(t)

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.searching {
		t.Fatal("search should be focused")
	}

	for _, r := range "malbec" {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.filter.Search != "malbec" {
		t.Errorf("Search = %q", m.filter.Search)
	}
	if len(m.Visible()) != 1 {
		t.Errorf("visible = %d, want 1", len(m.Visible()))
	}

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Error("esc should leave search mode")
	}
	if m.filter.Search != "malbec" {
		t.Error("leaving search mode should keep the term")
	}
}

func TestFacetCursorSurvivesReload(t *testing.T) {
	m := loadedModel(t)
	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}) // Catena

	m, _ = m.handleLoaded(LoadedMsg{Items: []catalog.Wine{
		testWine("Chardonnay", "Catena", "Mendoza"),
		testWine("Torrontés", "Colomé", "Salta"),
	}})

	if m.filter.Bodega != "Catena" {
		t.Errorf("Bodega = %q, selection should survive when still present", m.filter.Bodega)
	}

	// A selection that disappeared resets to the sentinel
	m, _ = m.handleLoaded(LoadedMsg{Items: []catalog.Wine{
		testWine("Pinot Noir", "Chacra", "Río Negro"),
	}})
	if m.filter.Bodega != catalog.FacetAll {
		t.Errorf("Bodega = %q, want %q after selection vanished", m.filter.Bodega, catalog.FacetAll)
	}
}

// =============================================================================
// RENDER TESTS
// =============================================================================

func TestRenderCardFallbacks(t *testing.T) {
	m := loadedModel(t)
	card := m.renderCard(testWine("", "", ""))

	if !strings.Contains(card, unnamedWine) {
		t.Errorf("card should use the unnamed fallback: %q", card)
	}
	if !strings.Contains(card, unknownWinery) {
		t.Errorf("card should use the unknown winery fallback: %q", card)
	}
}

func TestRenderCardFields(t *testing.T) {
	w := testWine("Malbec Reserva", "Zuccardi", "Mendoza")
	w.Metadata.Identificacion.Anada = "2021"
	w.Metadata.Enologia.Varietales = []catalog.Varietal{{Cepa: "Malbec"}}
	w.EmbeddingTextPreview = "Un malbec de altura con taninos firmes"

	m := loadedModel(t)
	card := m.renderCard(w)

	for _, want := range []string{"Malbec Reserva", "Zuccardi", "#Mendoza", "2021", "taninos"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestRenderGridNoResultsPlaceholder(t *testing.T) {
	m := loadedModel(t)
	m.filter.Search = "inexistente"

	grid := m.renderGrid()
	if !strings.Contains(grid, "Sin resultados") {
		t.Errorf("grid = %q, want the no-results placeholder", grid)
	}
}
