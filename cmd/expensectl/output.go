package main

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/polkiloo/expense-tracker/internal/server/http/dto"
)

const uncategorized = "-"

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func categoryLabel(c *string) string {
	if c == nil {
		return uncategorized
	}
	return *c
}

func renderExpenses(out io.Writer, expenses []dto.ExpenseResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Description", "Amount", "Category", "Created"})
	for _, e := range expenses {
		t.AppendRow(table.Row{e.ID.String(), e.Description, formatAmount(e.Amount), categoryLabel(e.Category), e.CreatedAt.Format("2006-01-02 15:04")})
	}
	t.Render()
}

func renderStats(out io.Writer, stats *dto.StatsResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Category", "Amount"})
	for _, c := range stats.SpendingByCategory {
		t.AppendRow(table.Row{categoryLabel(c.Category), formatAmount(c.Amount)})
	}
	t.AppendFooter(table.Row{"Total", formatAmount(stats.TotalSpent)})
	t.Render()
}
