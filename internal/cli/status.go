// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend status command for the vinoteca CLI.
//
// Handles "vinoteca status" which probes the backend's debug endpoint
// and prints a readable health report.
//
// Status Sections:
//   Servidor:       Base URL, backend version, overall status
//   Base de datos:  Dialect, masked URL, tables
//   Componentes:    Drive loader and analyzer initialization
//
// Examples:
//   vinoteca status               Show backend status
//   vinoteca s                    Show status (short alias)
//   vinoteca status --json        Raw debug payload as JSON
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LegalHubArg/bot-analitica/internal/api"
)

// HandleStatusCommand implements "vinoteca status".
func HandleStatusCommand(args Args) error {
	client := newClient(args)

	info, err := client.Debug(context.Background())
	if err != nil {
		return fmt.Errorf("no se pudo consultar el estado del servidor: %w", err)
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	printStatusReport(client.BaseURL(), info)
	return nil
}

func printStatusReport(baseURL string, info *api.DebugInfo) {
	fmt.Println(sectionStyle.Render("Servidor"))
	printField("URL", valueStyle.Render(baseURL))
	printField("Versión", valueStyle.Render(info.Version))
	if info.IsOK() {
		printField("Estado", valueGoodStyle.Render("ok"))
	} else {
		printField("Estado", valueBadStyle.Render(info.Status))
	}
	if info.Message != "" {
		printField("Mensaje", infoStyle.Render(info.Message))
	}
	if info.InitError != "" {
		printField("Error", valueBadStyle.Render(info.InitError))
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Base de datos"))
	if info.EngineDialect != "" {
		printField("Motor", valueStyle.Render(info.EngineDialect))
	}
	if info.DatabaseURLMasked != "" {
		printField("URL", infoStyle.Render(info.DatabaseURLMasked))
	}
	if len(info.Tables) > 0 {
		printField("Tablas", valueStyle.Render(strings.Join(info.Tables, ", ")))
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Componentes"))
	printField("Drive", renderInitState(info.DriveInitialized))
	printField("Analizador", renderInitState(info.AnalyzerInitialized))
}

func printField(label, value string) {
	fmt.Printf("  %s%s\n", labelStyle.Render(label), value)
}

func renderInitState(ok bool) string {
	if ok {
		return valueGoodStyle.Render("inicializado")
	}
	return valueBadStyle.Render("no inicializado")
}
