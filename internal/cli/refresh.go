// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// refresh.go - Catalog re-index command for the vinoteca CLI.
//
// Handles "vinoteca refresh" which asks the backend to re-read the
// catalog documents and rebuild its index. With --force, previously
// indexed chunks are cleared first.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// HandleRefreshCommand implements "vinoteca refresh".
func HandleRefreshCommand(args Args) error {
	client := newClient(args)

	if !args.Quiet && !args.JSON {
		if args.Force {
			fmt.Fprintln(os.Stderr, infoStyle.Render("Recargando catálogo desde cero..."))
		} else {
			fmt.Fprintln(os.Stderr, infoStyle.Render("Recargando catálogo..."))
		}
	}

	resp, err := client.Refresh(context.Background(), args.Force)
	if err != nil {
		return fmt.Errorf("no se pudo recargar el catálogo: %w", err)
	}

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.Error != "" {
		return &BackendError{Operation: "refresh", Message: resp.Error}
	}

	fmt.Println(resp.Message)
	return nil
}
