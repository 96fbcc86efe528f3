package window

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTitle returns title in Unicode NFC with control characters
// removed. OS title bars render composed forms more reliably.
func NormalizeTitle(title string) string {
	title = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, title)
	return norm.NFC.String(title)
}

// Center resolves Centered coordinates of d against a screen size.
func Center(d Descriptor, screenW, screenH int) (x, y int) {
	x, y = d.X, d.Y
	if x == Centered {
		x = (screenW - d.Width) / 2
	}
	if y == Centered {
		y = (screenH - d.Height) / 2
	}
	return x, y
}
