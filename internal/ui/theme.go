package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending string
	Bullet                                        string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymOK, SymFail                                string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		Bullet:   "•",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymOK: "✔", SymFail: "✖",
	}
}

// ThemeNames lists the built-in themes.
var ThemeNames = []string{"classic", "neon", "mono"}

// SetTheme switches the current theme; unknown names select classic.
func SetTheme(name string) {
	disableColor = false
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Bullet:   "◆",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Bullet:   "-",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymOK: "ok:", SymFail: "error:",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
