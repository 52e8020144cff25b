// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/logging"
	"github.com/LegalHubArg/bot-analitica/internal/model"
	"github.com/LegalHubArg/bot-analitica/internal/ui/components"
	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateIdle    State = iota // Ready for input
	StatePending              // An ask request is in flight
)

// Display strings shown in the transcript.
const (
	typingText       = "Pensando..."
	fallbackText     = "No recibí respuesta del sommelier. Probá de nuevo en un momento."
	networkTextPfx   = "Error de red: "
	rateLimitText    = "Demasiadas consultas seguidas. Esperá un momento."
	appErrorTextPfx  = "El sommelier reportó un problema: "
	refreshingText   = "Recargando catálogo..."
	refreshFailText  = "No se pudo recargar el catálogo."
	weatherQueryText = "¿Qué vino me recomendás para el clima de hoy en Buenos Aires?"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Single-flight guard for ask requests. Only the settlement message
	// carrying this token may clear the Pending state; anything else is
	// a stale result from an earlier exchange.
	askToken string

	// Typing placeholder, shown while an ask request is in flight. It is
	// view state, not a transcript Message, so settlement can drop it
	// without touching the append-only transcript.
	typing bool

	// Refresh state
	refreshing      bool
	refreshStatusID string

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation
	transcript *model.Transcript

	// Backend client
	client *api.Client

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Behavior toggles
	showSources    bool
	showTimestamps bool

	ready bool
}

// New creates a chat model with the given theme and backend client.
func New(theme *styles.Theme, client *api.Client) Model {
	input := textinput.New()
	input.Placeholder = "Preguntale al sommelier..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	return Model{
		state:       StateIdle,
		theme:       theme,
		transcript:  model.NewTranscript(),
		client:      client,
		input:       input,
		spinner:     components.NewSpinner(theme),
		keyMap:      DefaultKeyMap(),
		showSources: true,
	}
}

// Transcript exposes the conversation for the surrounding program.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// State returns the current request state.
func (m Model) State() State {
	return m.state
}

// Init returns the command that starts the composer cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetShowSources toggles the source list under assistant replies. The
// transcript is re-rendered so the change applies to messages already on
// screen.
func (m *Model) SetShowSources(show bool) {
	m.showSources = show
	m.refreshViewport()
}

// SetShowTimestamps toggles message timestamps.
func (m *Model) SetShowTimestamps(show bool) {
	m.showTimestamps = show
	m.refreshViewport()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case AskResultMsg:
		return m.handleAskResult(msg)

	case RefreshResultMsg:
		return m.handleRefreshResult(msg)

	case spinner.TickMsg:
		if m.state != StatePending && !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
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

	m.input.Width = msg.Width - 6
	m.refreshViewport()
	return m, nil
}

// handleKey routes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submit(m.input.Value())

	case key.Matches(msg, m.keyMap.Refresh):
		return m.refresh(false)

	case key.Matches(msg, m.keyMap.ForceRefresh):
		return m.refresh(true)

	case key.Matches(msg, m.keyMap.Weather):
		return m.submit(weatherQueryText)

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

	// The composer is shown disabled while a question is in flight, so
	// keystrokes must not leak into it either.
	if m.state == StatePending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMIT FLOW
// =============================================================================

// submit runs the synchronous half of the ask flow: append the user
// message, clear the composer, enter Pending, show the typing
// placeholder, then issue the request. Steps happen in that order so the
// user's own text is visible before the network is ever touched.
func (m Model) submit(rawText string) (Model, tea.Cmd) {
	if strings.TrimSpace(rawText) == "" {
		return m, nil
	}
	if m.state == StatePending {
		return m, nil
	}

	m.transcript.AppendUser(rawText)
	m.input.Reset()
	m.state = StatePending
	m.askToken = uuid.NewString()
	m.typing = true
	m.refreshViewport()
	m.viewport.GotoBottom()

	logging.L().Info("ask issued", zap.Int("query_len", len(rawText)))

	return m, tea.Batch(
		askCmd(m.client, rawText, m.askToken),
		m.spinner.Tick,
	)
}

// askCmd issues the ask request off the UI loop and returns its
// settlement as a message.
func askCmd(client *api.Client, query, token string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Ask(context.Background(), query)
		return AskResultMsg{Token: token, Response: resp, Err: err}
	}
}

// handleAskResult applies the settlement half of the ask flow. The
// typing placeholder is dropped before any message is appended, and the
// view always returns to Idle.
func (m Model) handleAskResult(msg AskResultMsg) (Model, tea.Cmd) {
	if msg.Token != m.askToken {
		return m, nil
	}

	m.typing = false

	switch {
	case api.IsRateLimited(msg.Err):
		logging.L().Warn("ask rate limited")
		m.transcript.AppendAssistant(rateLimitText, nil)

	case msg.Err != nil:
		logging.L().Warn("ask failed", zap.Error(msg.Err))
		m.transcript.AppendAssistant(networkTextPfx+msg.Err.Error(), nil)

	case msg.Response.HasAnswer():
		m.transcript.AppendAssistant(msg.Response.Answer, msg.Response.Sources)

	case msg.Response.HasError():
		logging.L().Warn("ask returned error", zap.String("error", msg.Response.Error))
		m.transcript.AppendAssistant(appErrorTextPfx+msg.Response.Error, nil)

	default:
		m.transcript.AppendAssistant(fallbackText, nil)
	}

	m.state = StateIdle
	m.askToken = ""
	m.input.Focus()
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// REFRESH FLOW
// =============================================================================

// refresh appends a status message and asks the backend to reload its
// index. The status message is rewritten in place at settlement rather
// than appended again.
func (m Model) refresh(force bool) (Model, tea.Cmd) {
	if m.refreshing {
		return m, nil
	}

	status := m.transcript.AppendStatus(refreshingText)
	m.refreshing = true
	m.refreshStatusID = status.ID
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		refreshCmd(m.client, force, status.ID),
		m.spinner.Tick,
	)
}

// refreshCmd issues the refresh request off the UI loop.
func refreshCmd(client *api.Client, force bool, statusID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Refresh(context.Background(), force)
		if err != nil {
			return RefreshResultMsg{StatusID: statusID, Err: err}
		}
		if resp.Error != "" {
			return RefreshResultMsg{StatusID: statusID, Message: refreshFailText + " " + resp.Error}
		}
		return RefreshResultMsg{StatusID: statusID, Message: resp.Message}
	}
}

// handleRefreshResult rewrites the status message with the outcome.
func (m Model) handleRefreshResult(msg RefreshResultMsg) (Model, tea.Cmd) {
	text := msg.Message
	if msg.Err != nil {
		logging.L().Warn("refresh failed", zap.Error(msg.Err))
		text = refreshFailText
	}
	m.transcript.RewriteStatus(msg.StatusID, text)

	m.refreshing = false
	m.refreshStatusID = ""
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// VIEWPORT
// =============================================================================

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
}
