package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter renders dollar amounts with thousands separators so large
// monthly totals stay readable in tables.
var currencyPrinter = message.NewPrinter(language.English)

func usd(v float64) string {
	return currencyPrinter.Sprintf("$%.2f", v)
}

// printJSON writes v as indented JSON, the machine-readable output format
// shared by every subcommand's --format json.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// table prints rows with columns sized to the widest cell.
func table(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, "  "+strings.TrimRight(strings.Join(parts, "  "), " ")) //nolint:errcheck
	}

	printRow(header)
	divider := make([]string, len(header))
	for i, width := range widths {
		divider[i] = strings.Repeat("-", width)
	}
	printRow(divider)
	for _, row := range rows {
		printRow(row)
	}
}

func validateFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}
	return nil
}
