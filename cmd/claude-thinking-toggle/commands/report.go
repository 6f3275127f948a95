package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/LanceVCS/claude-thinking-toggle/internal/sites"
)

// statusColor picks the print color for a per-site status.
func statusColor(status sites.Status) *color.Color {
	switch status {
	case sites.StatusDetected:
		return color.New(color.FgYellow)
	case sites.StatusPatched:
		return color.New(color.FgGreen)
	case sites.StatusMismatch:
		return color.New(color.FgRed)
	case sites.StatusNotFound:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.Faint)
	}
}

// statusMark is the single-character prefix for a per-site report line.
func statusMark(status sites.Status) string {
	switch status {
	case sites.StatusDetected:
		return "~"
	case sites.StatusPatched:
		return "✓"
	case sites.StatusMismatch:
		return "✗"
	case sites.StatusNotFound:
		return "-"
	default:
		return " "
	}
}

// printResults writes one line per site, colored by status.
func printResults(out io.Writer, results []sites.Result) {
	for _, result := range results {
		line := fmt.Sprintf("%s %s: %s", statusMark(result.Status), result.Site, result.Status)
		if result.Detail != "" {
			line += " (" + result.Detail + ")"
		}

		statusColor(result.Status).Fprintln(out, line)
	}
}

// resultsTable renders the scan results as a go-pretty table.
func resultsTable(out io.Writer, results []sites.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Site", "Status", "Detail", "Edits"})

	for _, result := range results {
		tbl.AppendRow(table.Row{result.Site, string(result.Status), result.Detail, len(result.Edits)})
	}

	tbl.Render()
}
