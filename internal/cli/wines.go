// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// wines.go - Catalog listing command for the vinoteca CLI.
//
// Handles "vinoteca wines" which fetches the catalog and prints one
// line per wine, optionally filtered by winery, region, or a search
// term over name and winery.
//
// Examples:
//   vinoteca wines
//   vinoteca wines --bodega Zuccardi
//   vinoteca wines --region "Río Negro" --json
//   vinoteca wines --search malbec
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/LegalHubArg/bot-analitica/internal/catalog"
)

// HandleWinesCommand implements "vinoteca wines".
func HandleWinesCommand(args Args) error {
	client := newClient(args)

	items, err := client.Wines(context.Background())
	if err != nil {
		return fmt.Errorf("no se pudo cargar el catálogo: %w", err)
	}

	items = filterWines(items, args)

	if args.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Println("Sin resultados.")
		return nil
	}

	for _, w := range items {
		printWineLine(w)
	}

	if !args.Quiet {
		fmt.Println()
		fmt.Println(infoStyle.Render(fmt.Sprintf("%d vinos", len(items))))
	}
	return nil
}

// filterWines applies the --bodega, --region and --search flags. Bodega
// matches the facet exactly; region tolerates case differences since it is
// typed by hand rather than cycled.
func filterWines(items []catalog.Wine, args Args) []catalog.Wine {
	filter := catalog.NewFilter()
	if args.Bodega != "" {
		filter.Bodega = args.Bodega
	}
	filter.Search = args.Search
	items = catalog.Apply(items, filter)

	if args.Region != "" {
		var out []catalog.Wine
		for _, w := range items {
			if strings.EqualFold(w.Region(), args.Region) {
				out = append(out, w)
			}
		}
		items = out
	}

	return items
}

// printWineLine prints a single catalog entry.
func printWineLine(w catalog.Wine) {
	name := w.Nombre()
	if name == "" {
		name = "Sin nombre"
	}
	bodega := w.Bodega()
	if bodega == "" {
		bodega = "Bodega desconocida"
	}

	line := valueStyle.Render(name) + infoStyle.Render("  ·  "+bodega)
	if r := w.Region(); r != "" {
		line += infoStyle.Render("  ·  "+r)
	}
	if a := w.Anada(); a != "" {
		line += infoStyle.Render("  ·  "+a)
	}
	if v := w.VarietalesJoined(); v != "" {
		line += infoStyle.Render("  ·  "+v)
	}
	fmt.Println(line)
}
