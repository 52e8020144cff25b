// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
	if !theme.CardTitle.GetBold() {
		t.Error("CardTitle should be bold")
	}
	if !theme.TabActive.GetBold() {
		t.Error("TabActive should be bold")
	}
	if theme.AssistantBubble.GetMarginRight() != 4 {
		t.Errorf("AssistantBubble margin = %d", theme.AssistantBubble.GetMarginRight())
	}
	if theme.UserBubble.GetMarginLeft() != 4 {
		t.Errorf("UserBubble margin = %d", theme.UserBubble.GetMarginLeft())
	}
}

func TestAdaptiveColorsHaveBothVariants(t *testing.T) {
	colors := map[string]struct{ light, dark string }{
		"Malbec":      {Malbec.Light, Malbec.Dark},
		"Gold":        {Gold.Light, Gold.Dark},
		"Rose":        {Rose.Light, Rose.Dark},
		"Surface":     {Surface.Light, Surface.Dark},
		"TextPrimary": {TextPrimary.Light, TextPrimary.Dark},
	}

	for name, c := range colors {
		if c.light == "" || c.dark == "" {
			t.Errorf("%s is missing a light or dark variant", name)
		}
		if c.light == c.dark {
			t.Errorf("%s uses the same value for light and dark", name)
		}
	}
}
