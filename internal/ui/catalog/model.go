// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalogview provides the catalog browsing view for the TUI.
package catalogview

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/catalog"
	"github.com/LegalHubArg/bot-analitica/internal/logging"
	"github.com/LegalHubArg/bot-analitica/internal/ui/components"
	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LoadedMsg delivers the settlement of a wines fetch.
type LoadedMsg struct {
	Items []catalog.Wine
	Err   error
}

// =============================================================================
// KEY MAP
// =============================================================================

// KeyMap defines the keyboard bindings for the catalog view.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Reload      key.Binding
	CycleBodega key.Binding
	CycleRegion key.Binding
	ClearFilter key.Binding
	FocusSearch key.Binding
	LeaveSearch key.Binding
}

// DefaultKeyMap returns the default catalog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recargar"),
		),
		CycleBodega: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bodega"),
		),
		CycleRegion: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "región"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "limpiar filtros"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "buscar"),
		),
		LeaveSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("Esc", "salir de búsqueda"),
		),
	}
}

// =============================================================================
// CATALOG MODEL
// =============================================================================

// Model is the Bubble Tea model for the catalog view.
type Model struct {
	// Data. The store keeps the last good item set; a failed reload
	// leaves it untouched and only flips the error display.
	store  *catalog.Store
	filter catalog.Filter

	// Load state
	loading bool
	loadErr error

	// Facet cursors index into the store's facet lists.
	bodegaIdx int
	regionIdx int

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Backend client
	client *api.Client

	// UI components
	viewport  viewport.Model
	search    textinput.Model
	spinner   spinner.Model
	searching bool

	keyMap KeyMap

	previewChars int
	ready        bool
}

// New creates a catalog model with the given theme and backend client.
func New(theme *styles.Theme, client *api.Client) Model {
	search := textinput.New()
	search.Placeholder = "nombre o bodega..."
	search.Prompt = "/ "
	search.CharLimit = 100

	return Model{
		store:        catalog.NewStore(),
		filter:       catalog.NewFilter(),
		theme:        theme,
		client:       client,
		search:       search,
		spinner:      components.NewSpinner(theme),
		keyMap:       DefaultKeyMap(),
		previewChars: 100,
	}
}

// SetPreviewChars bounds the sheet preview length on each card.
func (m *Model) SetPreviewChars(n int) {
	if n > 0 {
		m.previewChars = n
	}
}

// Init starts the initial catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Visible returns the items retained by the current filter.
func (m Model) Visible() []catalog.Wine {
	return m.store.Visible(m.filter)
}

// Filter returns the current filter state.
func (m Model) Filter() catalog.Filter {
	return m.filter
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the catalog view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case LoadedMsg:
		return m.handleLoaded(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleResize recalculates the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	viewportHeight := msg.Height - chromeHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = viewportHeight
	}

	m.search.Width = msg.Width - 6
	m.refreshViewport()
	return m, nil
}

// handleKey routes key presses. While the search box is focused, all
// printable input belongs to it.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		if key.Matches(msg, m.keyMap.LeaveSearch) {
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.filter.Search = m.search.Value()
		m.refreshViewport()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keyMap.FocusSearch):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keyMap.Reload):
		return m.load()

	case key.Matches(msg, m.keyMap.CycleBodega):
		m.bodegaIdx = cycle(m.bodegaIdx, len(m.store.Facets().Bodegas))
		m.filter.Bodega = m.store.Facets().Bodegas[m.bodegaIdx]
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.CycleRegion):
		m.regionIdx = cycle(m.regionIdx, len(m.store.Facets().Regiones))
		m.filter.Region = m.store.Facets().Regiones[m.regionIdx]
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.ClearFilter):
		m.filter = catalog.NewFilter()
		m.bodegaIdx = 0
		m.regionIdx = 0
		m.search.Reset()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	return m, nil
}

// =============================================================================
// LOAD FLOW
// =============================================================================

// load starts a catalog fetch.
func (m Model) load() (Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	m.loadErr = nil
	m.refreshViewport()
	return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// loadCmd issues the wines request off the UI loop.
func (m Model) loadCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.Wines(context.Background())
		return LoadedMsg{Items: items, Err: err}
	}
}

// handleLoaded applies a fetch settlement. On failure the stored items
// survive so the grid can come back after a transient error.
func (m Model) handleLoaded(msg LoadedMsg) (Model, tea.Cmd) {
	m.loading = false

	if msg.Err != nil {
		logging.L().Warn("catalog load failed", zap.Error(msg.Err))
		m.loadErr = msg.Err
		m.refreshViewport()
		return m, nil
	}

	m.loadErr = nil
	m.store.Replace(msg.Items)
	m.resetFacetCursors()
	logging.L().Info("catalog loaded", zap.Int("items", m.store.Len()))
	m.refreshViewport()
	return m, nil
}

// resetFacetCursors re-anchors the facet selections after facets are
// rederived, preserving selections that still exist.
func (m *Model) resetFacetCursors() {
	m.bodegaIdx = indexOf(m.store.Facets().Bodegas, m.filter.Bodega)
	m.regionIdx = indexOf(m.store.Facets().Regiones, m.filter.Region)
	m.filter.Bodega = m.store.Facets().Bodegas[m.bodegaIdx]
	m.filter.Region = m.store.Facets().Regiones[m.regionIdx]
}

// =============================================================================
// HELPERS
// =============================================================================

// refreshViewport re-renders the grid into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderGrid())
}

// cycle advances an index through a list of n options, wrapping.
func cycle(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i + 1) % n
}

// indexOf finds v in list, defaulting to 0 (the "all" sentinel).
func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return 0
}
