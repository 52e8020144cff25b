// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration command for the vinoteca CLI.
//
// Handles "vinoteca config" with show/get/set/path subcommands.
//
// Examples:
//   vinoteca config                    Show current configuration
//   vinoteca config get server.base_url
//   vinoteca config set server.base_url http://localhost:5000
//   vinoteca config set ui.theme dark
//   vinoteca config path               Show config file location
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/LegalHubArg/bot-analitica/internal/config"
)

// HandleConfigCommand implements "vinoteca config".
func HandleConfigCommand(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)

	case "get":
		return handleConfigGet(args.ConfigKey)

	case "set":
		return handleConfigSet(args.ConfigKey, args.ConfigVal)

	case "path":
		return handleConfigPath()

	default:
		return NewUsageError("unknown config subcommand: %s", args.Subcommand)
	}
}

func handleConfigShow(args Args) error {
	cfg := config.Global()

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	fmt.Println(sectionStyle.Render("Servidor"))
	printField("base_url", valueStyle.Render(cfg.Server.BaseURL))
	printField("timeout_secs", valueStyle.Render(strconv.Itoa(cfg.Server.TimeoutSecs)))
	printField("ask_timeout_secs", valueStyle.Render(strconv.Itoa(cfg.Server.AskTimeoutSecs)))
	printField("ask_rate", valueStyle.Render(strconv.FormatFloat(cfg.Server.AskRate, 'g', -1, 64)))

	fmt.Println()
	fmt.Println(sectionStyle.Render("Interfaz"))
	printField("show_sources", valueStyle.Render(strconv.FormatBool(cfg.UI.ShowSources)))
	printField("show_timestamps", valueStyle.Render(strconv.FormatBool(cfg.UI.ShowTimestamps)))
	printField("preview_chars", valueStyle.Render(strconv.Itoa(cfg.UI.PreviewChars)))
	printField("theme", valueStyle.Render(cfg.UI.Theme))

	fmt.Println()
	fmt.Println(sectionStyle.Render("Logs"))
	printField("level", valueStyle.Render(cfg.Logging.Level))
	if cfg.Logging.File != "" {
		printField("file", valueStyle.Render(cfg.Logging.File))
	}

	return nil
}

func handleConfigGet(key string) error {
	if key == "" {
		return NewUsageError("usage: vinoteca config get <clave>")
	}

	cfg := config.Global()
	value, ok := configValue(cfg, key)
	if !ok {
		return NewUsageError("clave desconocida: %s", key)
	}

	fmt.Println(value)
	return nil
}

func handleConfigSet(key, value string) error {
	if key == "" || value == "" {
		return NewUsageError("usage: vinoteca config set <clave> <valor>")
	}

	cfg := config.Global()
	if err := setConfigValue(cfg, key, value); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return &ConfigError{Err: err}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("no se pudo guardar la configuración: %w", err)
	}

	path, _ := config.ConfigPathTOML()
	fmt.Printf("%s = %s\n", key, value)
	fmt.Println(infoStyle.Render("Guardado en " + path))
	return nil
}

func handleConfigPath() error {
	path, err := config.ConfigPathTOML()
	if err != nil {
		return fmt.Errorf("no se pudo determinar el directorio de configuración: %w", err)
	}

	fmt.Println(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println(infoStyle.Render("(el archivo todavía no existe; se usan los valores por defecto)"))
	}
	return nil
}

// configValue resolves a dotted key against the configuration.
func configValue(cfg *config.Config, key string) (string, bool) {
	switch key {
	case "server.base_url":
		return cfg.Server.BaseURL, true
	case "server.timeout_secs":
		return strconv.Itoa(cfg.Server.TimeoutSecs), true
	case "server.ask_timeout_secs":
		return strconv.Itoa(cfg.Server.AskTimeoutSecs), true
	case "server.ask_rate":
		return strconv.FormatFloat(cfg.Server.AskRate, 'g', -1, 64), true
	case "ui.show_sources":
		return strconv.FormatBool(cfg.UI.ShowSources), true
	case "ui.show_timestamps":
		return strconv.FormatBool(cfg.UI.ShowTimestamps), true
	case "ui.preview_chars":
		return strconv.Itoa(cfg.UI.PreviewChars), true
	case "ui.theme":
		return cfg.UI.Theme, true
	case "logging.level":
		return cfg.Logging.Level, true
	case "logging.file":
		return cfg.Logging.File, true
	}
	return "", false
}

// setConfigValue writes a dotted key into the configuration.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "server.base_url":
		cfg.Server.BaseURL = value
	case "server.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return NewUsageError("%s debe ser un número entero", key)
		}
		cfg.Server.TimeoutSecs = n
	case "server.ask_timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return NewUsageError("%s debe ser un número entero", key)
		}
		cfg.Server.AskTimeoutSecs = n
	case "server.ask_rate":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return NewUsageError("%s debe ser un número", key)
		}
		cfg.Server.AskRate = f
	case "ui.show_sources":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return NewUsageError("%s debe ser true o false", key)
		}
		cfg.UI.ShowSources = b
	case "ui.show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return NewUsageError("%s debe ser true o false", key)
		}
		cfg.UI.ShowTimestamps = b
	case "ui.preview_chars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return NewUsageError("%s debe ser un número entero", key)
		}
		cfg.UI.PreviewChars = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "logging.level":
		cfg.Logging.Level = value
	case "logging.file":
		cfg.Logging.File = value
	default:
		return NewUsageError("clave desconocida: %s", key)
	}
	return nil
}
