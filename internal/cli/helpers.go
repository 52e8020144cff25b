// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"time"

	"github.com/LegalHubArg/bot-analitica/internal/api"
	"github.com/LegalHubArg/bot-analitica/internal/config"
)

// newClient builds an API client from the global configuration, with the
// --server flag taking precedence over the configured base URL.
func newClient(args Args) *api.Client {
	cfg := config.Global()

	baseURL := cfg.Server.BaseURL
	if args.Server != "" {
		baseURL = args.Server
	}

	return api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:    baseURL,
		Timeout:    time.Duration(cfg.Server.TimeoutSecs) * time.Second,
		AskTimeout: time.Duration(cfg.Server.AskTimeoutSecs) * time.Second,
		AskRate:    cfg.Server.AskRate,
	})
}
