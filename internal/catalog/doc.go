// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog models the wine catalog served by /api/wines: the item
// shape, the derived filter facets, and the filter predicate itself.
//
// Everything here is pure data and pure functions so the filter semantics
// can be tested without a terminal or a server.
package catalog
