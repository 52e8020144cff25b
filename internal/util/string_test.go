// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "Malbec", 10, "Malbec"},
		{"exactly at limit", "Malbec", 6, "Malbec"},
		{"truncated with ellipsis", "Cabernet Sauvignon", 10, "Caberne..."},
		{"accented runes counted once", "añada 2019", 10, "añada 2019"},
		{"zero limit", "Malbec", 0, ""},
		{"tiny limit skips ellipsis", "Malbec", 2, "Ma"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateRunes(tc.input, tc.maxRunes)
			if got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.maxRunes, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth(t *testing.T) {
	if got := TruncateWidth("Bodega Catena Zapata", 10); got != "Bodega ..." {
		t.Errorf("TruncateWidth() = %q", got)
	}
	if got := TruncateWidth("corto", 40); got != "corto" {
		t.Errorf("TruncateWidth() should not touch short strings, got %q", got)
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Tempranillo con crianza", "Tempranillo con crianza"},
		{"color codes removed", "\x1b[31mrojo\x1b[0m intenso", "rojo intenso"},
		{"cursor movement removed", "a\x1b[2Jb", "ab"},
		{"osc title removed with bel", "\x1b]0;evil title\x07hola", "hola"},
		{"osc hyperlink removed with st", "\x1b]8;;http://x\x1b\\vino\x1b]8;;\x1b\\", "vino"},
		{"dcs string removed", "a\x1bPq payload\x1b\\b", "ab"},
		{"bare control bytes removed", "a\rb\x07c\bd", "abcd"},
		{"newline and tab survive", "uva\n\tmalbec", "uva\n\tmalbec"},
		{"charset escape removed", "a\x1b(Bb", "ab"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripANSI(tc.input); got != tc.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNonEmpty(t *testing.T) {
	if got := NonEmpty("", "", "Zuccardi"); got != "Zuccardi" {
		t.Errorf("NonEmpty() = %q", got)
	}
	if got := NonEmpty(); got != "" {
		t.Errorf("NonEmpty() with no args = %q, want empty", got)
	}
}
