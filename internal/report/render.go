package report

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SummaryRow is one line of the selected-feature summary table.
type SummaryRow struct {
	Term    string
	Score   float64
	PValue  float64
	DocFreq int
}

// RenderSummary renders the selected terms with their chi-squared scores,
// p-values and document frequencies.
func RenderSummary(rows []SummaryRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Term", "Chi2", "p-value", "Doc Freq"})
	for _, row := range rows {
		tw.AppendRow(table.Row{
			row.Term,
			fmt.Sprintf("%.4f", row.Score),
			fmt.Sprintf("%.4g", row.PValue),
			strconv.Itoa(row.DocFreq),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// RenderTerm renders one term's per-category document counts, descending.
func RenderTerm(r TermReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("%q matched %d documents", r.Term, r.Matched))
	tw.AppendHeader(table.Row{"Category", "Documents"})
	for _, count := range r.ByCategory {
		tw.AppendRow(table.Row{count.Category, strconv.Itoa(count.Count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
