package display

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// SourceRow is one line of the discovered-sources table.
type SourceRow struct {
	Slot       int
	Path       string // empty for a blank slot
	Label      string
	Resolution string
	Frames     int
}

// RenderSources prints the discovered sources for a scenario as a table.
// Shown under --verbose and --dry-run so the slot assignment is inspectable
// before any encoding happens.
func RenderSources(w io.Writer, rows []SourceRow) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slot", "Source", "Label", "Resolution", "Frames"})
	for _, r := range rows {
		path := r.Path
		if path == "" {
			path = "(blank)"
		}
		t.AppendRow(table.Row{r.Slot, path, r.Label, r.Resolution, r.Frames})
	}
	t.Render()
}
