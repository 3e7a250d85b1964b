// File: internal/console/console.go
// Brief: Terminal helpers shared by the table renderers.

// Package console renders catalog listings, evaluation results, and
// mission summaries for the terminal. JSON and YAML output bypass this
// package entirely.
package console

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var labelCaser = cases.Title(language.Und, cases.NoLower)

// TerminalWidth reports the column count when w is a terminal.
func TerminalWidth(w io.Writer) (int, bool) {
	type fdProvider interface {
		Fd() uintptr
	}
	if v, ok := w.(fdProvider); ok {
		if cols, _, err := term.GetSize(int(v.Fd())); err == nil {
			return cols, true
		}
	}
	return 0, false
}

// TitleLabel renders a slot or band id as a display label: underscores
// become spaces and words are title-cased without lowering acronyms.
func TitleLabel(id string) string {
	return labelCaser.String(strings.ReplaceAll(id, "_", " "))
}

// Truncate clips s to width display cells, ellipsized. Width zero or
// less leaves s alone.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	out := make([]rune, 0, len(s))
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width-1 {
			break
		}
		out = append(out, r)
		used += rw
	}
	return string(out) + "…"
}

func severityTag(severity string) string {
	switch severity {
	case "caution":
		if color.NoColor {
			return "NOTE"
		}
		return color.New(color.FgYellow).Sprint("NOTE")
	default:
		if color.NoColor {
			return "WARN"
		}
		return color.New(color.FgHiRed).Sprint("WARN")
	}
}

func okTag() string {
	if color.NoColor {
		return "OK"
	}
	return color.New(color.FgGreen).Sprint("OK")
}
