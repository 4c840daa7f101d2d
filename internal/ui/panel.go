package ui

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return utf8.RuneCountInString(stripANSI(s)) }

// ListLines renders the collection as numbered bullet lines with a header.
func ListLines(texts []string) []string {
	t := Current()
	lines := []string{
		fmt.Sprintf("%s  %s %d", C(t.Title, "Todos"), C(t.Accent, "Total"), len(texts)),
		"",
	}
	if len(texts) == 0 {
		return append(lines, C(t.Muted, "no items"))
	}
	for i, text := range texts {
		if utf8.RuneCountInString(text) > 80 {
			text = string([]rune(text)[:77]) + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			C(t.Muted, fmt.Sprintf("%2d.", i+1)), C(t.Pending, t.Bullet), text))
	}
	return lines
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprint(stdout, PanelString(lines))
}

// PanelString is Panel without the printing.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := visibleWidth(ln); w > maxw {
			maxw = w
		}
	}
	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		pad := strings.Repeat(" ", maxw-visibleWidth(ln))
		b.WriteString(t.V + " " + ln + pad + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}
