// Package console is the interactive front end of a ledger session.
//
// It reads one command per line, calls the ledger manager and renders the
// outcome. Rejected operations are printed and the session continues.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
	"ledger/internal/log"
)

// Ledger is the set of manager operations the console drives.
type Ledger interface {
	Add(date core.Date, category core.Category, amount decimal.Decimal, description string) error
	Delete(position int) error
	ImportFile(path string) error
	ExportFile(path string) error
	TotalsByCategory() ([]core.CategoryAmount, bool)
	TotalsByDate() ([]core.DateAmount, bool)
	History() string
	Expenses() []core.Expense
}

type Console struct {
	ledger     Ledger
	in         io.Reader
	out        io.Writer
	exportFile string
	logger     *log.Logger
}

type Option func(*Console)

// WithExportFile sets the file name used by "export" without an argument.
func WithExportFile(name string) Option {
	return func(c *Console) {
		c.exportFile = name
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.logger = l.WithComponent(log.ComponentConsole)
		}
	}
}

func New(ledger Ledger, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		ledger:     ledger,
		in:         in,
		out:        out,
		exportFile: "expenses.csv",
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run processes commands until "quit", end of input, or ctx is cancelled.
// After cancellation the reader goroutine stays blocked in its pending Read
// until in yields data or EOF; closing in releases it.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		var err error
		defer func() {
			scanErr <- err
			close(lines)
		}()
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()

	fmt.Fprintln(c.out, "Daily Expenses Tracker")
	fmt.Fprintln(c.out, `Type "help" for commands.`)
	for {
		c.prompt()
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := c.Execute(line); quit {
				return nil
			}
		}
	}
}

func (c *Console) prompt() {
	fmt.Fprint(c.out, "> ")
}

// Execute runs a single command line and reports whether the session should end.
func (c *Console) Execute(line string) (quit bool) {
	cmd, rest := nextField(line)
	if cmd == "" {
		return false
	}
	c.logger.Debug("Command received", log.FieldCommand, cmd)

	switch strings.ToLower(cmd) {
	case "add":
		c.add(rest)
	case "list", "ls":
		c.list()
	case "delete", "del", "rm":
		c.delete(rest)
	case "import", "load":
		c.importFile(rest)
	case "export", "save":
		c.exportTo(rest)
	case "chart", "visualize":
		c.chart()
	case "daily":
		c.daily()
	case "history":
		c.history()
	case "help", "?":
		c.help()
	case "quit", "exit":
		return true
	default:
		c.fail(fmt.Errorf("unknown command %q (type \"help\")", cmd))
	}
	return false
}

func (c *Console) add(args string) {
	dateArg, args := nextField(args)
	catArg, args := nextField(args)
	amountArg, description := nextField(args)
	if amountArg == "" {
		c.fail(fmt.Errorf("usage: add <YYYY-MM-DD> <category> <amount> [description]"))
		return
	}

	date, err := core.ParseDate(dateArg)
	if err != nil {
		c.fail(err)
		return
	}
	category, err := core.ParseCategory(catArg)
	if err != nil {
		c.fail(err)
		return
	}
	amount, err := core.ParseAmount(amountArg)
	if err != nil {
		c.fail(err)
		return
	}

	if err := c.ledger.Add(date, category, amount, description); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintln(c.out, "Expense added.")
}

func (c *Console) delete(args string) {
	arg, _ := nextField(args)
	pos, err := strconv.Atoi(arg)
	if err != nil {
		c.fail(fmt.Errorf("usage: delete <index> (index must be a whole number)"))
		return
	}
	if err := c.ledger.Delete(pos); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintln(c.out, "Expense deleted successfully!")
}

func (c *Console) importFile(args string) {
	path := strings.TrimSpace(args)
	if path == "" {
		c.fail(fmt.Errorf("usage: import <file.csv>"))
		return
	}
	if err := c.ledger.ImportFile(path); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintln(c.out, "Expenses loaded successfully!")
}

func (c *Console) exportTo(args string) {
	path := strings.TrimSpace(args)
	if path == "" {
		path = c.exportFile
	}
	if err := c.ledger.ExportFile(path); err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "Expenses saved successfully as %s!\n", path)
}

func (c *Console) list() {
	expenses := c.ledger.Expenses()
	if len(expenses) == 0 {
		fmt.Fprintln(c.out, "No expenses added yet.")
		return
	}
	renderExpenses(c.out, expenses)
}

func (c *Console) chart() {
	totals, ok := c.ledger.TotalsByCategory()
	if !ok {
		fmt.Fprintln(c.out, "No expenses to visualize!")
		return
	}
	renderChart(c.out, totals, chartWidth)
}

func (c *Console) daily() {
	totals, ok := c.ledger.TotalsByDate()
	if !ok {
		fmt.Fprintln(c.out, "No expenses to calculate daily totals!")
		return
	}
	fmt.Fprintln(c.out, "### Daily Totals")
	renderDaily(c.out, totals)
}

func (c *Console) history() {
	fmt.Fprintln(c.out, "### Action History")
	if h := c.ledger.History(); h != "" {
		fmt.Fprintln(c.out, h)
	}
}

func (c *Console) help() {
	fmt.Fprintf(c.out, `Commands:
  add <YYYY-MM-DD> <category> <amount> [description]   categories: %s
  list                                                 show expenses with their index
  delete <index>                                       remove the expense at index
  import <file.csv>                                    append expenses from a CSV file
  export [file.csv]                                    save expenses (default %s)
  chart                                                bar chart of totals per category
  daily                                                totals per day
  history                                              actions taken this session
  quit
`, core.CategoryList(), c.exportFile)
}

func (c *Console) fail(err error) {
	fmt.Fprintf(c.out, "error: %v\n", err)
}

// nextField splits off the first whitespace-separated token of s.
func nextField(s string) (field, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
