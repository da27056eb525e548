package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"thumbwarm/internal/preload"
	"thumbwarm/internal/textutil"
)

func renderSummary(outcome *preload.Outcome) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Directory", "Files", "Processed", "Failed", "Elapsed"})
	tw.AppendRow(table.Row{
		outcome.Dir,
		textutil.GroupedInt(outcome.Total),
		textutil.GroupedInt(outcome.Processed),
		textutil.GroupedInt(outcome.Failed),
		outcome.Elapsed.Round(time.Millisecond).String(),
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
