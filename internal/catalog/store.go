// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

// =============================================================================
// STORE TYPE
// =============================================================================

// Store holds the fetched item set and its derived facets.
//
// The lifecycle is fetch-replace: each successful load swaps the whole set
// and rederives the facets. A failed load never touches the stored items,
// so the view can fall back to the last good set after showing its error.
type Store struct {
	items  []Wine
	facets Facets
	loaded bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		facets: Facets{
			Bodegas:  []string{FacetAll},
			Regiones: []string{FacetAll},
		},
	}
}

// Replace swaps in a freshly fetched item set and rederives the facets.
func (s *Store) Replace(items []Wine) {
	if items == nil {
		items = []Wine{}
	}
	s.items = items
	s.facets = DeriveFacets(items)
	s.loaded = true
}

// Items returns the full stored item set.
func (s *Store) Items() []Wine {
	return s.items
}

// Facets returns the option lists derived from the last successful load.
func (s *Store) Facets() Facets {
	return s.facets
}

// Visible returns the items retained by the filter.
func (s *Store) Visible(f Filter) []Wine {
	return Apply(s.items, f)
}

// Loaded reports whether at least one fetch has succeeded.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	return len(s.items)
}
