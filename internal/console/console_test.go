package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
	"ledger/internal/services"
)

func newTestConsole(t *testing.T, opts ...Option) (*Console, *services.LedgerManager, *bytes.Buffer) {
	t.Helper()
	m := services.NewLedgerManager()
	out := &bytes.Buffer{}
	return New(m, strings.NewReader(""), out, opts...), m, out
}

func run(c *Console, out *bytes.Buffer, line string) string {
	out.Reset()
	c.Execute(line)
	return out.String()
}

func TestExecute_Add(t *testing.T) {
	c, m, out := newTestConsole(t)

	assert.Equal(t, "Expense added.\n", run(c, out, "add 2025-03-01 food 12.50 lunch with  team"))
	require.Equal(t, 1, m.Len())
	e := m.Expenses()[0]
	assert.Equal(t, core.Food, e.Category)
	assert.Equal(t, "lunch with  team", e.Description)

	assert.Contains(t, run(c, out, "add 2025-03-01 Food 12.5 lunch with  team"), "error: duplicate expense")
	assert.Contains(t, run(c, out, "add 2025-03-02 Food 0 free"), "error: validation error")
	assert.Contains(t, run(c, out, "add 2025-03-02 Rent 10 flat"), "error: invalid category")
	assert.Contains(t, run(c, out, "add yesterday Food 10 x"), "error: invalid date")
	assert.Contains(t, run(c, out, "add 2025-03-02 Food ten x"), "error: invalid amount")
	assert.Contains(t, run(c, out, "add 2025-03-02"), "usage: add")
	assert.Equal(t, 1, m.Len())
}

func TestExecute_ListAndDelete(t *testing.T) {
	c, m, out := newTestConsole(t)

	assert.Equal(t, "No expenses added yet.\n", run(c, out, "list"))

	run(c, out, "add 2025-03-01 Food 10 lunch")
	run(c, out, "add 2025-03-02 Transport 2.5 bus")

	listing := run(c, out, "list")
	assert.Contains(t, listing, "1  2025-03-01  Food")
	assert.Contains(t, listing, "2  2025-03-02  Transport")
	assert.Contains(t, listing, "Total: 12.50")

	assert.Contains(t, run(c, out, "delete 3"), "error: invalid index")
	assert.Contains(t, run(c, out, "delete two"), "usage: delete")
	assert.Equal(t, "Expense deleted successfully!\n", run(c, out, "delete 1"))
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "bus", m.Expenses()[0].Description)
}

func TestExecute_ImportExport(t *testing.T) {
	dir := t.TempDir()
	c, m, out := newTestConsole(t, WithExportFile(filepath.Join(dir, "default.csv")))

	src := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(src, []byte("Date,Category,Amount,Description\n2025-03-01,Food,3.00,tea\n"), 0o644))

	assert.Equal(t, "Expenses loaded successfully!\n", run(c, out, "import "+src))
	assert.Equal(t, 1, m.Len())

	assert.Contains(t, run(c, out, "import "+filepath.Join(dir, "missing.csv")), "error: io error")
	assert.Contains(t, run(c, out, "import"), "usage: import")

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("Date,Amount\n2025-03-01,1\n"), 0o644))
	assert.Contains(t, run(c, out, "import "+bad), "required columns")

	assert.Contains(t, run(c, out, "export"), "default.csv!")
	data, err := os.ReadFile(filepath.Join(dir, "default.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Category,Amount,Description\n2025-03-01,Food,3,tea\n", string(data))

	named := filepath.Join(dir, "named.csv")
	assert.Contains(t, run(c, out, "export "+named), "named.csv!")
	assert.FileExists(t, named)
}

func TestExecute_ChartAndDaily(t *testing.T) {
	c, _, out := newTestConsole(t)

	assert.Equal(t, "No expenses to visualize!\n", run(c, out, "chart"))
	assert.Equal(t, "No expenses to calculate daily totals!\n", run(c, out, "daily"))

	run(c, out, "add 2025-03-01 Food 10 lunch")
	run(c, out, "add 2025-03-01 Food 10 dinner")
	run(c, out, "add 2025-03-02 Transport 5 bus")

	chart := run(c, out, "chart")
	assert.Equal(t,
		"Food      | "+strings.Repeat(barGlyph, 40)+" 20.00\n"+
			"Transport | "+strings.Repeat(barGlyph, 10)+" 5.00\n", chart)

	daily := run(c, out, "daily")
	assert.Contains(t, daily, "### Daily Totals")
	assert.Contains(t, daily, "2025-03-01  20.00")
	assert.Contains(t, daily, "2025-03-02  5.00")
}

func TestExecute_History(t *testing.T) {
	c, _, out := newTestConsole(t)

	assert.Equal(t, "### Action History\n", run(c, out, "history"))

	run(c, out, "add 2025-03-01 Food 10 lunch")
	run(c, out, "chart")
	assert.Equal(t, "### Action History\nAdded expense: 2025-03-01, Food, 10, lunch\nVisualized expenses.\n", run(c, out, "history"))
}

func TestExecute_MiscCommands(t *testing.T) {
	c, _, out := newTestConsole(t)

	assert.Empty(t, run(c, out, "   "))
	assert.Contains(t, run(c, out, "help"), "categories: Food, Transport, Entertainment, Utilities, Other")
	assert.Contains(t, run(c, out, "frobnicate"), `unknown command "frobnicate"`)
	assert.True(t, c.Execute("quit"))
	assert.False(t, c.Execute("list"))
}

func TestRun_ProcessesUntilQuit(t *testing.T) {
	m := services.NewLedgerManager()
	out := &bytes.Buffer{}
	in := strings.NewReader("add 2025-03-01 Food 1 a\nquit\nadd 2025-03-02 Food 1 b\n")

	require.NoError(t, New(m, in, out).Run(context.Background()))

	assert.Equal(t, 1, m.Len())
	assert.Contains(t, out.String(), "Daily Expenses Tracker")
}

func TestRun_EndOfInput(t *testing.T) {
	m := services.NewLedgerManager()
	in := strings.NewReader("add 2025-03-01 Food 1 a\nadd 2025-03-02 Food 2 b")

	require.NoError(t, New(m, in, &bytes.Buffer{}).Run(context.Background()))

	assert.Equal(t, 2, m.Len())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	err := New(services.NewLedgerManager(), pr, &bytes.Buffer{}).Run(ctx)
	assert.NoError(t, err)
}

func TestRenderChart_NonPositiveTotals(t *testing.T) {
	var buf bytes.Buffer
	renderChart(&buf, []core.CategoryAmount{
		{Category: core.Food, Amount: decimal.RequireFromString("100")},
		{Category: "Refund", Amount: decimal.RequireFromString("-5")},
		{Category: core.Other, Amount: decimal.RequireFromString("0.5")},
	}, 10)

	assert.Equal(t,
		"Food   | "+strings.Repeat(barGlyph, 10)+" 100.00\n"+
			"Refund | -5.00\n"+
			"Other  | "+barGlyph+" 0.50\n", buf.String())
}
