// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for CLI commands.
//
// Every command handler returns an error; the dispatch layer in cli.go
// prints it and maps it to an exit code here.
package cli

import (
	"errors"
	"fmt"

	"github.com/LegalHubArg/bot-analitica/internal/api"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates configuration file or settings error
	ExitConfigError = 3
	// ExitNetworkError indicates the backend could not be reached
	ExitNetworkError = 5
	// ExitBackendError indicates the backend reported an application error
	ExitBackendError = 6
	// ExitTimeoutError indicates an operation timed out
	ExitTimeoutError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError represents invalid command usage.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a usage error with a formatted message.
func NewUsageError(format string, a ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, a...)}
}

// BackendError represents an application-level error reported by the
// backend in a response body, as opposed to a transport failure.
type BackendError struct {
	Operation string
	Message   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: el servidor reportó: %s", e.Operation, e.Message)
}

// ConfigError wraps configuration load or validation failures.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuración inválida: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitConfigError
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return ExitBackendError
	}

	if api.IsTimeout(err) {
		return ExitTimeoutError
	}
	if api.IsUnreachable(err) {
		return ExitNetworkError
	}

	return ExitGeneralError
}
