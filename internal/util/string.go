// Copyright (c) 2025 LegalHub Argentina
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateRunes truncates a string to a maximum number of runes.
// If the string is truncated, "..." is appended within the limit.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width, accounting
// for double-width characters. An ellipsis is appended when there is room.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads a string with spaces to the given display width.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Scanner states for StripANSI.
const (
	ansiText   = iota // plain text
	ansiEsc           // just saw ESC
	ansiCSI           // inside ESC [ ... , ends on a final byte 0x40-0x7E
	ansiOSC           // inside ESC ] ... , ends on BEL or ST
	ansiString        // inside DCS/SOS/PM/APC, ends on ST
)

// StripANSI removes terminal control sequences and control bytes from a
// string. Server- and user-provided text passes through here before it is
// handed to the renderer, so untrusted content cannot smuggle terminal
// control codes into the transcript. Covers CSI, OSC (title/hyperlink
// payloads, BEL- or ST-terminated), and DCS/SOS/PM/APC strings; bare C0
// bytes (BEL, CR, BS, ...) are dropped too. Newlines and tabs survive.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	state := ansiText
	var prev rune
	for _, r := range s {
		switch state {
		case ansiText:
			switch {
			case r == 0x1b:
				state = ansiEsc
			case r == '\n' || r == '\t':
				b.WriteRune(r)
			case r < 0x20 || r == 0x7f:
				// dropped
			default:
				b.WriteRune(r)
			}

		case ansiEsc:
			switch {
			case r == '[':
				state = ansiCSI
			case r == ']':
				state = ansiOSC
			case r == 'P' || r == 'X' || r == '^' || r == '_':
				state = ansiString
			case r == 0x1b:
				// ESC ESC: still at the start of a sequence
			case r >= 0x20 && r <= 0x2f:
				// intermediate byte (e.g. charset designators); the
				// final byte is still to come
			default:
				// final byte of a two-byte escape
				state = ansiText
			}

		case ansiCSI:
			if r >= 0x40 && r <= 0x7e {
				state = ansiText
			}

		case ansiOSC:
			if r == 0x07 || (prev == 0x1b && r == '\\') {
				state = ansiText
			}

		case ansiString:
			if prev == 0x1b && r == '\\' {
				state = ansiText
			}
		}
		prev = r
	}
	return b.String()
}

// NonEmpty returns the first non-empty string of its arguments.
func NonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
