package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/inventario/inventory-dashboard/dashboard"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	formatTable    = "table"
	formatJSON     = "json"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
)

var outputFormats = []string{formatTable, formatJSON, formatCSV, formatMarkdown}

var errUnknownFormat = errors.New("unknown output format")

func validFormat(f string) bool {
	return f == "md" || slices.Contains(outputFormats, f)
}

// renderGrid writes the current page of g. Cells are written as displayed,
// fallbacks included.
func renderGrid(w io.Writer, g dashboard.Grid, format string, summary bool) error {
	switch format {
	case formatJSON:
		return renderJSON(w, g)
	case formatCSV:
		newWriter(w, dashboard.HeaderLabels(g), g.Cells()).RenderCSV()
		return nil
	case formatMarkdown, "md":
		newWriter(w, dashboard.HeaderLabels(g), g.Cells()).RenderMarkdown()
		return nil
	}

	newWriter(w, dashboard.HeaderLabels(g), g.Cells()).Render()
	if summary {
		s := g.Summary()
		_, _ = fmt.Fprintf(w, "%s · %s\n", dashboard.ShowingText(s), dashboard.PageText(s))
	}
	return nil
}

func newWriter(w io.Writer, headers []string, rows [][]string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, cells := range rows {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		t.AppendRow(row)
	}
	return t
}

// renderJSON writes the page as objects keyed by field name.
func renderJSON(w io.Writer, g dashboard.Grid) error {
	fields := g.Fields()
	cells := g.Cells()
	rows := make([]map[string]string, 0, len(cells))
	for _, c := range cells {
		row := make(map[string]string, len(fields))
		for i, f := range fields {
			row[f] = c[i]
		}
		rows = append(rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
