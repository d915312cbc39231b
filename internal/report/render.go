package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats the document for interactive terminals.
func (d Document) RenderTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Track", "Type", "First Sector", "Sectors", "Data Type", "ISO 9660"})

	for _, tr := range d.Tracks {
		dataType := tr.DataType
		if dataType == "" {
			dataType = "-"
		}
		iso := "-"
		if tr.TrackType == "data" {
			iso = strconv.FormatBool(tr.HasISO9660)
		}
		tw.AppendRow(table.Row{tr.Number, tr.TrackType, tr.FirstSector, tr.SectorCount, dataType, iso})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
