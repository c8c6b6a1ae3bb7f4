package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

const (
	chartWidth = 40
	barGlyph   = "█"
)

func renderExpenses(out io.Writer, expenses []core.Expense) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tCategory\tAmount\tDescription")
	for i, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, e.Date, e.Category, core.FormatAmount(e.Amount), e.Description)
	}
	tw.Flush()
	fmt.Fprintf(out, "Total: %s\n", core.FormatAmount(core.Total(expenses)))
}

func renderDaily(out io.Writer, totals []core.DateAmount) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tAmount")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%s\n", t.Date, core.FormatAmount(t.Amount))
	}
	tw.Flush()
}

// renderChart draws one horizontal bar per category, scaled so the
// largest total spans width glyphs. Non-positive totals get no bar.
func renderChart(out io.Writer, totals []core.CategoryAmount, width int) {
	labelWidth := 0
	top := decimal.Zero
	for _, t := range totals {
		labelWidth = max(labelWidth, len(t.Category))
		if t.Amount.GreaterThan(top) {
			top = t.Amount
		}
	}

	for _, t := range totals {
		bar := ""
		if n := barLength(t.Amount, top, width); n > 0 {
			bar = strings.Repeat(barGlyph, n) + " "
		}
		fmt.Fprintf(out, "%-*s | %s%s\n", labelWidth, t.Category, bar, core.FormatAmount(t.Amount))
	}
}

func barLength(amount, top decimal.Decimal, width int) int {
	if !core.IsPositive(amount) || !core.IsPositive(top) {
		return 0
	}
	n := int(amount.Div(top).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	return n
}
