// vinoteca - a terminal client for a wine-catalog Q&A service.
//
// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/cli"
	"github.com/LegalHubArg/bot-analitica/internal/config"
	"github.com/LegalHubArg/bot-analitica/internal/logging"
	catalogview "github.com/LegalHubArg/bot-analitica/internal/ui/catalog"
	"github.com/LegalHubArg/bot-analitica/internal/ui/chat"
	"github.com/LegalHubArg/bot-analitica/internal/ui/components"
	"github.com/LegalHubArg/bot-analitica/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdRefresh:
		cli.HandleRefresh(args)
	case cli.CmdWines:
		cli.HandleWines(args)
	case cli.CmdStatus:
		cli.HandleStatus(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// =============================================================================
// TUI ENTRY POINT
// =============================================================================

func runTUI(args cli.Args) {
	cfg := config.Global()

	flush, err := logging.Init(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}
	if flush != nil {
		defer flush()
	}

	logging.L().Info("starting vinoteca",
		zap.String("version", Version),
		zap.String("server", cfg.Server.BaseURL))

	baseURL := cfg.Server.BaseURL
	if args.Server != "" {
		baseURL = args.Server
	}

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:    baseURL,
		Timeout:    time.Duration(cfg.Server.TimeoutSecs) * time.Second,
		AskTimeout: time.Duration(cfg.Server.AskTimeoutSecs) * time.Second,
		AskRate:    cfg.Server.AskRate,
	})

	theme := styles.NewTheme()
	m := newApp(theme, client, cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Reload configuration on file changes while the TUI runs. The new
	// settings are handed to the running program so both views pick up
	// the UI changes without a restart.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher, werr := config.NewWatcher(func(updated *config.Config) {
		config.SetGlobal(updated)
		logging.L().Info("configuration reloaded")
		p.Send(configReloadedMsg{cfg: updated})
	}); werr == nil {
		go watcher.Run(ctx)
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running vinoteca: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// headerHeight is the number of terminal rows the header occupies.
const headerHeight = 1

// configReloadedMsg is sent by the config watcher when the file on disk
// changes. It carries the freshly loaded settings.
type configReloadedMsg struct {
	cfg *config.Config
}

// appModel is the top-level Bubble Tea model. It owns the header and the
// two views, and forwards messages to whichever view owns them.
type appModel struct {
	header      *components.Header
	chatView    chat.Model
	catalogView catalogview.Model
	active      components.Tab

	width  int
	height int
}

// newApp creates the top-level model with both views wired to the client.
func newApp(theme *styles.Theme, client *api.Client, cfg *config.Config) appModel {
	chatView := chat.New(theme, client)
	chatView.SetShowSources(cfg.UI.ShowSources)
	chatView.SetShowTimestamps(cfg.UI.ShowTimestamps)

	catalogView := catalogview.New(theme, client)
	catalogView.SetPreviewChars(cfg.UI.PreviewChars)

	return appModel{
		header:      components.NewHeader(theme),
		chatView:    chatView,
		catalogView: catalogView,
		active:      components.TabChat,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.chatView.Init(), m.catalogView.Init())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Settlement messages go to the view that issued the request, even
	// when the user has switched tabs in the meantime.
	case chat.AskResultMsg, chat.RefreshResultMsg:
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd

	case catalogview.LoadedMsg:
		var cmd tea.Cmd
		m.catalogView, cmd = m.catalogView.Update(msg)
		return m, cmd

	case configReloadedMsg:
		m.chatView.SetShowSources(msg.cfg.UI.ShowSources)
		m.chatView.SetShowTimestamps(msg.cfg.UI.ShowTimestamps)
		m.catalogView.SetPreviewChars(msg.cfg.UI.PreviewChars)
		return m, nil
	}

	// Everything else (spinner ticks, blink) goes to both views; each
	// spinner ignores ticks that are not its own.
	return m.updateBoth(msg)
}

func (m appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.header.SetWidth(msg.Width)

	inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - headerHeight}
	return m.updateBoth(inner)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		logging.L().Info("shutting down")
		return m, tea.Quit

	case "tab", "shift+tab":
		if m.active == components.TabChat {
			m.active = components.TabCatalog
		} else {
			m.active = components.TabChat
		}
		m.header.SetActive(m.active)
		return m, nil
	}

	// Remaining keys belong to the active view only.
	var cmd tea.Cmd
	if m.active == components.TabChat {
		m.chatView, cmd = m.chatView.Update(msg)
	} else {
		m.catalogView, cmd = m.catalogView.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateBoth(msg tea.Msg) (tea.Model, tea.Cmd) {
	var chatCmd, catalogCmd tea.Cmd
	m.chatView, chatCmd = m.chatView.Update(msg)
	m.catalogView, catalogCmd = m.catalogView.Update(msg)
	return m, tea.Batch(chatCmd, catalogCmd)
}

func (m appModel) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	var body string
	if m.active == components.TabChat {
		body = m.chatView.View()
	} else {
		body = m.catalogView.View()
	}

	return m.header.View() + "\n" + body
}
