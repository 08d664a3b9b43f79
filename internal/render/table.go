// Package render formats already-computed report rows as tabular text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

const columnGap = "  "

// Options controls table appearance.
type Options struct {
	// Color enables bold headers. Disabled for non-terminal output.
	Color bool
}

// Table writes headers and rows as an aligned ASCII table. Column widths
// are computed with runewidth so multi-byte group values line up.
func Table(w io.Writer, headers []string, rows [][]string, opts Options) {
	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= cols {
				break
			}
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	rightAlign := make([]bool, cols)
	for i := range rightAlign {
		rightAlign[i] = numericColumn(rows, i)
	}

	writeRow(w, headers, widths, rightAlign, opts.Color)
	rule := make([]string, cols)
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	writeRow(w, rule, widths, rightAlign, false)
	for _, row := range rows {
		writeRow(w, row, widths, rightAlign, false)
	}
}

func writeRow(w io.Writer, cells []string, widths []int, rightAlign []bool, bold bool) {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded := pad(cell, width, rightAlign[i])
		if bold {
			padded = color.Bold.Render(padded)
		}
		parts[i] = padded
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnGap), " "))
}

func pad(s string, width int, right bool) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// numericColumn reports whether every non-empty cell in the column parses
// as a number, in which case the column is right-aligned.
func numericColumn(rows [][]string, col int) bool {
	seen := false
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		if _, err := strconv.ParseFloat(row[col], 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
