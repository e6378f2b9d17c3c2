package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mendelkb/owlkit/internal/tabular"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// emitTable writes a result table to stdout: CSV when --csv, otherwise an
// aligned, colored listing with a summary line.
func emitTable(t tabular.Table) error {
	if flagCSV {
		return tabular.WriteCSV(os.Stdout, t)
	}
	fmt.Print(formatTable(t))
	return nil
}

// formatTable renders a table for terminal display.
//
//	⚡ 12 rows
//	  Mendel_ID    Class_Label   …
//	  MID:4711     Diabetes      …
func formatTable(t tabular.Table) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d rows%s\n", colorBold, len(t.Rows), colorReset))
	if len(t.Rows) == 0 {
		sb.WriteString(fmt.Sprintf("  %sno matches found%s\n", colorGray, colorReset))
		return sb.String()
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	// Cap column width so one long synonym blob cannot wreck the layout.
	const maxWidth = 48
	for i := range widths {
		if widths[i] > maxWidth {
			widths[i] = maxWidth
		}
	}

	sb.WriteString("  ")
	for i, col := range t.Columns {
		sb.WriteString(fmt.Sprintf("%s%-*s%s  ", colorBold, widths[i], clip(col, maxWidth), colorReset))
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString("  ")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			color := colorReset
			if i == 0 {
				color = colorCyan
			}
			sb.WriteString(fmt.Sprintf("%s%-*s%s  ", color, widths[i], clip(cell, maxWidth), colorReset))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// clip truncates a cell with an ellipsis marker.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
