// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing and dispatch for vinoteca.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdRefresh
	CmdWines
	CmdStatus
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool
	Server  string // backend base URL override

	// Command-specific
	Query      string
	Force      bool
	Bodega     string
	Region     string
	Search     string
	ConfigKey  string
	ConfigVal  string
	Subcommand string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `vinoteca - asistente de vinoteca en la terminal

Vinoteca is a terminal client for a wine-catalog Q&A service.

It provides:
  - A TUI with a sommelier chat view and a browsable catalog view
  - One-shot questions from the command line
  - An interactive chat REPL with input history
  - Catalog refresh and backend health checks

Usage:
  vinoteca                     Start TUI (default)
  vinoteca ask "pregunta"      Ask the sommelier a single question
  vinoteca chat                Interactive chat session
  vinoteca refresh [--force]   Re-index the catalog on the backend
  vinoteca wines               List the wine catalog
  vinoteca status, s           Show backend status
  vinoteca config [show|set|path]  Configuration
  vinoteca version             Show version
  vinoteca help                Show this help

Ask Command:
  vinoteca ask "¿Qué malbec me recomendás?"
    --json                     Output the raw response as JSON

Wines Command:
  vinoteca wines               List all wines
    --bodega NAME              Filter by winery
    --region NAME              Filter by region
    --search TERM              Substring match on name or winery
    --json                     Output as JSON

Config Commands:
  vinoteca config show         Show current configuration
  vinoteca config set K V      Set a configuration value
  vinoteca config path         Show config file location

Global Flags:
  --server URL        Backend base URL (overrides config)
  --json              Output in JSON format where supported
  -q, --quiet         Minimal output
  -v, --verbose       Verbose output

Environment:
  VINOTECA_SERVER_URL   Backend base URL
  VINOTECA_LOG_LEVEL    Log level (debug|info|warn|error)
  NO_COLOR              Disable colored output
`

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("vinoteca %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	args := os.Args[1:]

	remaining, parsedArgs := parseGlobalFlags(args)

	// No remaining args: default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parseAskArgs(&parsedArgs, remaining)
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "refresh", "reindex":
		parseRefreshArgs(&parsedArgs, remaining)
		return CmdRefresh, parsedArgs

	case "wines", "catalog", "catalogo":
		parseWinesArgs(&parsedArgs, remaining)
		return CmdWines, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version", "-V":
		return CmdVersion, parsedArgs

	case "help", "--help", "-h":
		return CmdHelp, parsedArgs

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		PrintUsage()
		os.Exit(ExitUsageError)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--server":
			if i+1 < len(args) {
				i++
				parsedArgs.Server = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--server=") {
				parsedArgs.Server = strings.TrimPrefix(arg, "--server=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseAskArgs collects the question text from the remaining arguments.
func parseAskArgs(args *Args, remaining []string) {
	var query []string
	for _, arg := range remaining {
		if !strings.HasPrefix(arg, "-") {
			query = append(query, arg)
		}
	}
	args.Query = strings.Join(query, " ")
}

// parseRefreshArgs parses refresh command specific arguments.
func parseRefreshArgs(args *Args, remaining []string) {
	for _, arg := range remaining {
		switch arg {
		case "-f", "--force":
			args.Force = true
		}
	}
}

// parseWinesArgs parses wines command specific arguments.
func parseWinesArgs(args *Args, remaining []string) {
	i := 0
	for i < len(remaining) {
		arg := remaining[i]

		switch arg {
		case "--bodega":
			if i+1 < len(remaining) {
				i++
				args.Bodega = remaining[i]
			}
		case "--region":
			if i+1 < len(remaining) {
				i++
				args.Region = remaining[i]
			}
		case "--search":
			if i+1 < len(remaining) {
				i++
				args.Search = remaining[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--bodega="):
				args.Bodega = strings.TrimPrefix(arg, "--bodega=")
			case strings.HasPrefix(arg, "--region="):
				args.Region = strings.TrimPrefix(arg, "--region=")
			case strings.HasPrefix(arg, "--search="):
				args.Search = strings.TrimPrefix(arg, "--search=")
			}
		}
		i++
	}
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}

	args.Subcommand = remaining[0]

	if args.Subcommand == "set" {
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}

	if args.Subcommand == "get" && len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) {
	if err := HandleAskCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleChat handles the "chat" command.
func HandleChat(args Args) {
	if err := HandleChatCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleRefresh handles the "refresh" command.
func HandleRefresh(args Args) {
	if err := HandleRefreshCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleWines handles the "wines" command.
func HandleWines(args Args) {
	if err := HandleWinesCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleStatus handles the "status" command.
func HandleStatus(args Args) {
	if err := HandleStatusCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleConfig handles the "config" command.
func HandleConfig(args Args) {
	if err := HandleConfigCommand(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(GetExitCode(err))
	}
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"built\":%q}\n", Version, GitCommit, BuildDate)
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
