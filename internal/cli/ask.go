// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command for the vinoteca CLI.
//
// Handles "vinoteca ask" which sends a single question to the sommelier
// backend and prints the answer to stdout.
//
// Examples:
//   vinoteca ask "¿Qué malbec me recomendás con un asado?"
//   vinoteca ask --json "¿Tenés torrontés de Salta?"
//   echo "¿Qué espumante tienen?" | vinoteca ask
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for markdown output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayAnswer prints an answer with markdown rendering when appropriate.
// Only renders markdown when stdout is a TTY to avoid corrupting piped output.
func displayAnswer(answer string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(answer))
	} else {
		fmt.Println(answer)
	}
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAskCommand implements "vinoteca ask".
func HandleAskCommand(args Args) error {
	query := strings.TrimSpace(args.Query)

	// No query on the command line: read it from stdin when piped
	if query == "" && !IsTTY() {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		query = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	if query == "" {
		return NewUsageError("usage: vinoteca ask \"pregunta\"")
	}

	client := newClient(args)

	if !args.Quiet && !args.JSON {
		fmt.Fprintln(os.Stderr, infoStyle.Render("Consultando al sommelier..."))
	}

	resp, err := client.Ask(context.Background(), query)
	if err != nil {
		return fmt.Errorf("no se pudo consultar al sommelier: %w", err)
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.HasError() {
		return &BackendError{Operation: "ask", Message: resp.Error}
	}

	if !resp.HasAnswer() {
		fmt.Println("El sommelier no devolvió respuesta. Probá de nuevo en un momento.")
		return nil
	}

	displayAnswer(resp.Answer)

	if len(resp.Sources) > 0 && !args.Quiet {
		fmt.Println()
		fmt.Println(infoStyle.Render("Fuentes: " + strings.Join(resp.Sources, ", ")))
	}

	return nil
}
