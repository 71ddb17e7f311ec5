package cli

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// fancyOutput reports whether w is an interactive terminal that can take
// rounded box drawing. Piped output gets the plain ASCII style.
func fancyOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderTable writes rows as a formatted table. aligns may be nil for
// all-left alignment; otherwise it gives one alignment per column.
func renderTable(w io.Writer, header []string, rows [][]string, aligns []text.Align) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if fancyOutput(w) {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
	}

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}

	if aligns != nil {
		configs := make([]table.ColumnConfig, len(aligns))
		for i, a := range aligns {
			configs[i] = table.ColumnConfig{Number: i + 1, Align: a}
		}
		t.SetColumnConfigs(configs)
	}

	t.Render()
}
