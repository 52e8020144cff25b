// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalogview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LegalHubArg/bot-analitica/internal/catalog"
	"github.com/LegalHubArg/bot-analitica/internal/ui/components"
	"github.com/LegalHubArg/bot-analitica/internal/util"
)

// Card fallback literals for sheets with missing fields.
const (
	unnamedWine   = "Sin nombre"
	unknownWinery = "Bodega desconocida"
)

// chromeHeight is the fixed number of lines around the viewport: the
// facet bar, the search line, and the status bar.
const chromeHeight = 3

// =============================================================================
// MAIN RENDER
// =============================================================================

// View renders the catalog view.
func (m Model) View() string {
	if !m.ready {
		return "Cargando..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderFacetBar(),
		m.renderSearchBar(),
		m.viewport.View(),
		m.renderStatusBar(),
	)
}

// renderGrid renders the visible cards, or a single placeholder when
// there is nothing to show.
func (m *Model) renderGrid() string {
	if m.loading && !m.store.Loaded() {
		return m.theme.Placeholder.Render(m.spinner.View() + " Cargando catálogo...")
	}

	if m.loadErr != nil {
		return m.renderLoadError()
	}

	visible := m.store.Visible(m.filter)
	if len(visible) == 0 {
		if m.store.Len() == 0 {
			return m.theme.Placeholder.Render("El catálogo está vacío.")
		}
		return m.theme.Placeholder.Render("Sin resultados para el filtro actual.")
	}

	cards := make([]string, 0, len(visible))
	for _, wine := range visible {
		cards = append(cards, m.renderCard(wine))
	}
	return strings.Join(cards, "\n")
}

// renderLoadError renders the error placeholder. The last good item set
// stays in the store, but the grid shows only the error until a reload
// succeeds.
func (m *Model) renderLoadError() string {
	title := m.theme.ErrorTitle.Render("No se pudo cargar el catálogo")
	detail := m.theme.ErrorMessage.Render(m.loadErr.Error())
	hint := m.theme.ShortcutDesc.Render("Presioná r para reintentar.")
	return m.theme.ErrorBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, detail, hint))
}

// =============================================================================
// CARDS
// =============================================================================

// renderCard renders one wine sheet.
func (m *Model) renderCard(wine catalog.Wine) string {
	name := util.NonEmpty(util.StripANSI(wine.Nombre()), unnamedWine)
	winery := util.NonEmpty(util.StripANSI(wine.Bodega()), unknownWinery)

	header := m.theme.CardTitle.Render(name) + "  " + m.theme.CardWinery.Render(winery)

	var tags []string
	if region := wine.Region(); region != "" {
		tags = append(tags, m.theme.CardTag.Render("#"+util.StripANSI(region)))
	}
	if varietales := wine.VarietalesJoined(); varietales != "" {
		tags = append(tags, m.theme.CardWinery.Render(util.StripANSI(varietales)))
	}
	if anada := wine.Anada(); anada != "" {
		tags = append(tags, m.theme.CardVintage.Render(util.StripANSI(anada)))
	}

	lines := []string{header}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, "  "))
	}
	if preview := strings.TrimSpace(wine.EmbeddingTextPreview); preview != "" {
		preview = util.TruncateRunes(util.StripANSI(preview), m.previewChars)
		lines = append(lines, m.theme.CardPreview.Render(preview))
	}

	return m.theme.Card.Width(m.cardWidth()).Render(strings.Join(lines, "\n"))
}

// cardWidth bounds cards to the viewport width.
func (m *Model) cardWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// =============================================================================
// BARS
// =============================================================================

// renderFacetBar renders the current facet selections.
func (m Model) renderFacetBar() string {
	bodega := m.filter.Bodega
	if bodega == "" {
		bodega = catalog.FacetAll
	}
	region := m.filter.Region
	if region == "" {
		region = catalog.FacetAll
	}

	return m.theme.StatusBar.Width(m.width).Render(
		m.theme.FacetLabel.Render("Bodega: ") + m.theme.FacetValue.Render(bodega) +
			m.theme.FacetLabel.Render("   Región: ") + m.theme.FacetValue.Render(region),
	)
}

// renderSearchBar renders the search input line.
func (m Model) renderSearchBar() string {
	if m.searching {
		return m.search.View()
	}
	if m.filter.Search != "" {
		return m.theme.SearchPrompt.Render("/ ") + m.filter.Search
	}
	return m.theme.ShortcutDesc.Render("/ para buscar")
}

// renderStatusBar renders counters and shortcut hints.
func (m Model) renderStatusBar() string {
	if m.loading {
		return m.theme.StatusBar.Width(m.width).Render(
			m.spinner.View() + " " + m.theme.ThinkingText.Render("cargando"))
	}

	count := strconv.Itoa(len(m.store.Visible(m.filter))) + "/" + strconv.Itoa(m.store.Len()) + " vinos"

	hints := components.RenderShortcuts(m.theme, []components.Shortcut{
		{Key: "b", Desc: "bodega"},
		{Key: "g", Desc: "región"},
		{Key: "x", Desc: "limpiar"},
		{Key: "r", Desc: "recargar"},
		{Key: "Tab", Desc: "chat"},
	})

	return m.theme.StatusBar.Width(m.width).Render(count + "   " + hints)
}
