// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared across the client.
//
// The catalog is full of accented Spanish text (añada, Ribera del Duero),
// so every truncation helper here is rune- or width-aware rather than
// byte-based.
package util
