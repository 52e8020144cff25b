// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for
// vinoteca.
//
// This package implements the plain (non-TUI) commands of the vinoteca
// client. Markdown rendering and colored output are enabled only when
// stdout is a terminal, so piped output stays machine-readable.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - ChatInput: Line editor with persistent history for the chat REPL
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdAsk:
//	    cli.HandleAsk(args)
//	case cli.CmdChat:
//	    cli.HandleChat(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - ask: Single question to the sommelier backend
//   - chat: Interactive chat session with input history
//   - refresh: Re-index the wine catalog on the backend
//   - wines: List and filter the wine catalog
//   - status: Backend health report
//   - config: Configuration management
package cli
