// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// FacetAll is the sentinel value that disables a facet.
const FacetAll = "all"

// =============================================================================
// FILTER STATE
// =============================================================================

// Filter is the current selection over the catalog. Bodega and Region are
// either FacetAll or an exact facet value; Search is a case-insensitive
// substring matched against name and winery.
type Filter struct {
	Bodega string
	Region string
	Search string
}

// NewFilter returns the neutral filter that keeps every item.
func NewFilter() Filter {
	return Filter{Bodega: FacetAll, Region: FacetAll}
}

// IsNeutral reports whether the filter keeps every item.
func (f Filter) IsNeutral() bool {
	return (f.Bodega == FacetAll || f.Bodega == "") &&
		(f.Region == FacetAll || f.Region == "") &&
		f.Search == ""
}

// =============================================================================
// FACETS
// =============================================================================

// Facets holds the selectable option lists derived from a fetched item set.
// Each list is sorted, deduplicated, free of empty strings, and prefixed
// with the FacetAll sentinel. Facets are derived once per fetch and stay
// fixed until the next fetch replaces the item set.
type Facets struct {
	Bodegas  []string
	Regiones []string
}

// DeriveFacets computes the facet option lists for a fetched item set.
func DeriveFacets(items []Wine) Facets {
	return Facets{
		Bodegas:  distinctSorted(items, Wine.Bodega),
		Regiones: distinctSorted(items, Wine.Region),
	}
}

// distinctSorted collects the distinct non-empty values of field across
// items, sorts them lexicographically, and prefixes the FacetAll sentinel.
func distinctSorted(items []Wine, field func(Wine) string) []string {
	seen := make(map[string]struct{}, len(items))
	values := make([]string, 0, len(items))
	for _, item := range items {
		v := field(item)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return append([]string{FacetAll}, values...)
}

// =============================================================================
// FILTER PREDICATE
// =============================================================================

// Apply returns the items retained by the filter, preserving input order.
// It always recomputes from the full input; a neutral filter returns the
// input set unchanged.
//
// Matching uses Unicode case folding so accented winery names stay
// matchable the way plain ASCII lowercasing keeps plain ones. A
// cases.Caser is not safe for concurrent use, so Apply builds one and
// reuses it for the whole pass.
func Apply(items []Wine, f Filter) []Wine {
	if f.IsNeutral() {
		return items
	}

	fold := cases.Fold()
	search := fold.String(f.Search)

	visible := make([]Wine, 0, len(items))
	for _, item := range items {
		if !matchFacet(f.Bodega, item.Bodega()) {
			continue
		}
		if !matchFacet(f.Region, item.Region()) {
			continue
		}
		if search != "" && !matchSearch(fold, search, item) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// matchFacet reports whether the facet selection keeps the value.
func matchFacet(selected, value string) bool {
	return selected == FacetAll || selected == "" || selected == value
}

// matchSearch reports whether the folded search term occurs in the item's
// name or winery.
func matchSearch(fold cases.Caser, search string, item Wine) bool {
	return strings.Contains(fold.String(item.Nombre()), search) ||
		strings.Contains(fold.String(item.Bodega()), search)
}
