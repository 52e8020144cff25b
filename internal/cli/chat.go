// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command for the vinoteca CLI.
//
// Handles "vinoteca chat", a line-based REPL against the sommelier
// backend with input history.
//
// Interactive commands (during chat):
//   /help, /h        Show available commands
//   /refresh         Re-index the catalog
//   /force           Force a full catalog re-index
//   /clima           Ask for a recommendation for today's weather
//   /status, /s      Show session statistics
//   /quit, /q        Exit chat
//   Ctrl+C           Cancel current input
//   Ctrl+D           Exit chat
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/config"
)

// weatherQuery is the canned question behind the /clima shortcut.
const weatherQuery = "¿Qué vino me recomendás para el clima de hoy en Buenos Aires?"

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatInput provides input history and line editing for interactive chat.
type ChatInput struct {
	line        *liner.State
	historyFile string
}

// NewChatInput creates a ChatInput with history loaded from the config dir.
func NewChatInput() *ChatInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	in := &ChatInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	in.loadHistory()
	return in
}

func (c *ChatInput) loadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (c *ChatInput) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}

	return input, nil
}

// saveHistory persists command history with owner-only permissions.
func (c *ChatInput) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and releases the terminal.
func (c *ChatInput) Close() {
	c.saveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// chatSession holds the state for an interactive chat session.
type chatSession struct {
	client    *api.Client
	input     *ChatInput
	startTime time.Time
	queries   int
	errors    int
	quiet     bool
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChatCommand implements "vinoteca chat".
func HandleChatCommand(args Args) error {
	if !IsTTY() {
		return NewUsageError("chat requiere una terminal interactiva; usá \"vinoteca ask\" para consultas por pipe")
	}

	session := &chatSession{
		client:    newClient(args),
		input:     NewChatInput(),
		startTime: time.Now(),
		quiet:     args.Quiet,
	}
	defer session.input.Close()

	if !args.Quiet {
		printChatWelcome(session)
	}

	for {
		input, err := session.input.ReadInput(promptStyle.Render("vos> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				// Ctrl+C on an empty prompt: keep the session alive
				fmt.Println(infoStyle.Render("(Ctrl+D o /quit para salir)"))
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("error de lectura: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			quit := handleSlashCommand(input, session)
			if quit {
				break
			}
			continue
		}

		askOnce(session, input)
	}

	if !args.Quiet {
		printExitSummary(session)
	}
	return nil
}

// askOnce sends one question and prints the outcome without ending the REPL.
func askOnce(session *chatSession, query string) {
	session.queries++

	resp, err := session.client.Ask(context.Background(), query)
	if err != nil {
		session.errors++
		switch {
		case api.IsTimeout(err):
			fmt.Println(warningStyle.Render("El sommelier tardó demasiado en responder."))
		case api.IsRateLimited(err):
			fmt.Println(warningStyle.Render("Demasiadas consultas seguidas. Esperá un momento."))
		default:
			fmt.Println(warningStyle.Render("Error de red: " + err.Error()))
		}
		return
	}

	if resp.HasError() {
		session.errors++
		fmt.Println(warningStyle.Render("El sommelier reportó un problema: " + resp.Error))
		return
	}

	if !resp.HasAnswer() {
		fmt.Println(infoStyle.Render("No recibí respuesta del sommelier. Probá de nuevo en un momento."))
		return
	}

	displayAnswer(resp.Answer)
	if len(resp.Sources) > 0 && !session.quiet {
		fmt.Println(infoStyle.Render("Fuentes: " + strings.Join(resp.Sources, ", ")))
	}
	fmt.Println()
}

// handleSlashCommand executes a /command. Returns true when the session
// should end.
func handleSlashCommand(cmd string, session *chatSession) bool {
	switch strings.ToLower(strings.Fields(cmd)[0]) {
	case "/quit", "/q", "/exit", "/salir":
		return true

	case "/help", "/h", "/ayuda":
		printChatHelp()

	case "/refresh":
		refreshOnce(session, false)

	case "/force":
		refreshOnce(session, true)

	case "/clima", "/weather":
		fmt.Println(infoStyle.Render("> " + weatherQuery))
		askOnce(session, weatherQuery)

	case "/status", "/s":
		printSessionStatus(session)

	default:
		fmt.Println(warningStyle.Render("Comando desconocido: " + cmd + " (/help para ver comandos)"))
	}
	return false
}

// refreshOnce triggers a catalog re-index from inside the REPL.
func refreshOnce(session *chatSession, force bool) {
	fmt.Println(infoStyle.Render("Recargando catálogo..."))

	resp, err := session.client.Refresh(context.Background(), force)
	if err != nil {
		fmt.Println(warningStyle.Render("No se pudo recargar el catálogo: " + err.Error()))
		return
	}
	if resp.Error != "" {
		fmt.Println(warningStyle.Render("No se pudo recargar el catálogo. " + resp.Error))
		return
	}
	fmt.Println(valueGoodStyle.Render(resp.Message))
}

// =============================================================================
// DISPLAY
// =============================================================================

func printChatWelcome(session *chatSession) {
	fmt.Println(welcomeStyle.Render("🍷 vinoteca " + Version))
	fmt.Println(infoStyle.Render("Servidor: " + session.client.BaseURL()))
	fmt.Println(infoStyle.Render("Preguntale al sommelier. /help para comandos, Ctrl+D para salir."))
	fmt.Println()
}

func printChatHelp() {
	fmt.Println(sectionStyle.Render("Comandos:"))
	fmt.Println("  " + commandStyle.Render("/help, /h") + "      Mostrar esta ayuda")
	fmt.Println("  " + commandStyle.Render("/refresh") + "       Recargar el catálogo")
	fmt.Println("  " + commandStyle.Render("/force") + "         Recargar el catálogo desde cero")
	fmt.Println("  " + commandStyle.Render("/clima") + "         Recomendación para el clima de hoy")
	fmt.Println("  " + commandStyle.Render("/status, /s") + "    Estadísticas de la sesión")
	fmt.Println("  " + commandStyle.Render("/quit, /q") + "      Salir")
	fmt.Println()
}

func printSessionStatus(session *chatSession) {
	elapsed := time.Since(session.startTime).Round(time.Second)
	fmt.Println(sectionStyle.Render("Sesión:"))
	fmt.Printf("  %s%s\n", labelStyle.Render("Duración"), valueStyle.Render(elapsed.String()))
	fmt.Printf("  %s%s\n", labelStyle.Render("Consultas"), valueStyle.Render(fmt.Sprintf("%d", session.queries)))
	fmt.Printf("  %s%s\n", labelStyle.Render("Errores"), valueStyle.Render(fmt.Sprintf("%d", session.errors)))
	fmt.Println()
}

func printExitSummary(session *chatSession) {
	elapsed := time.Since(session.startTime).Round(time.Second)
	fmt.Println()
	fmt.Println(infoStyle.Render(fmt.Sprintf("Hasta luego. %d consultas en %s.", session.queries, elapsed)))
}
