package textterm

import "github.com/unilibs/uniwidth"

// VisibleWidth returns the display width of s as a terminal renders it.
// Escape sequences of the CSI form (ESC '[' parameters final-byte), such as
// the styling prefixes this package composes, count zero; any other escape
// is skipped together with its following byte. Wide runes (CJK, fullwidth
// forms, emoji) count 2, combining marks and control characters count 0.
func VisibleWidth(s string) int {
	width := 0
	esc := false
	csi := false

	for _, r := range s {
		switch {
		case csi:
			if r >= 0x40 && r <= 0x7e {
				csi = false
			}
		case esc:
			esc = false
			if r == '[' {
				csi = true
			}
		case r == 0x1b:
			esc = true
		default:
			width += uniwidth.RuneWidth(r)
		}
	}

	return width
}
