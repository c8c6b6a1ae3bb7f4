package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
	"ledger/internal/history"
	"ledger/internal/log"
	"ledger/internal/storage/csvfile"
	"ledger/internal/storage/memory"
)

// Column names of the persisted CSV format, in export order.
const (
	ColumnDate        = "Date"
	ColumnCategory    = "Category"
	ColumnAmount      = "Amount"
	ColumnDescription = "Description"
)

// Columns is the header written on export and required on import.
var Columns = []string{ColumnDate, ColumnCategory, ColumnAmount, ColumnDescription}

// LedgerManager owns one session's expense table and action history.
// It is not safe for concurrent use; a session has exactly one caller.
type LedgerManager struct {
	table   *memory.Table
	history *history.Log
	logger  *log.Logger
}

type Option func(*LedgerManager)

// WithLogger sets the logger used for operation outcomes.
func WithLogger(l *log.Logger) Option {
	return func(m *LedgerManager) {
		if l != nil {
			m.logger = l.WithComponent(log.ComponentLedger)
		}
	}
}

// NewLedgerManager starts a session with an empty ledger and empty history.
func NewLedgerManager(opts ...Option) *LedgerManager {
	m := &LedgerManager{
		table:   memory.New(),
		history: history.New(),
		logger:  log.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends one expense. A zero date or a non-positive amount fails validation;
// an exact duplicate of a stored expense is rejected.
func (m *LedgerManager) Add(date core.Date, category core.Category, amount decimal.Decimal, description string) error {
	e := core.Expense{Date: date, Category: category, Amount: amount, Description: description}

	if err := date.Validate(); err != nil {
		return m.reject(log.OpAdd, fmt.Errorf("%w: %v", ErrValidation, err))
	}
	if !core.IsPositive(amount) {
		return m.reject(log.OpAdd, fmt.Errorf("%w: amount must be greater than zero (got %s)", ErrValidation, amount))
	}
	if m.table.Contains(e) {
		return m.reject(log.OpAdd, fmt.Errorf("%w: %s already recorded, not added", ErrDuplicate, e.Fields()))
	}

	pos := m.table.Append(e)
	m.history.Append("Added expense: " + e.Fields())
	m.logger.Info("Expense added", append(log.NewFields().WithExpense(e).ToSlice(), log.FieldPosition, pos)...)
	return nil
}

// Delete removes the expense at a 1-based position; later expenses move up.
func (m *LedgerManager) Delete(position int) error {
	removed, err := m.table.RemoveAt(position)
	if err != nil {
		return m.reject(log.OpDelete, fmt.Errorf("%w: %v", ErrIndex, err))
	}

	m.history.Append("Deleted expense: " + removed.Fields())
	m.logger.Info("Expense deleted",
		append(log.NewFields().WithExpense(removed).ToSlice(), log.FieldPosition, position, log.FieldLedgerSize, m.table.Len())...)
	return nil
}

// BulkImport appends every row of t in order.
//
// Only the header is checked: the four columns must be present, extra
// columns are ignored. Rows are stored as given, without the duplicate
// check or amount validation that Add applies, so a previous export can
// always be restored. A cell that cannot be read as a date or a number
// fails the whole import.
func (m *LedgerManager) BulkImport(t csvfile.Table) error {
	if missing := t.Missing(Columns...); len(missing) > 0 {
		return m.reject(log.OpImport, fmt.Errorf("%w: file does not have the required columns (missing %s)",
			ErrSchema, strings.Join(missing, ", ")))
	}

	expenses, err := decodeRows(t)
	if err != nil {
		return m.reject(log.OpImport, err)
	}

	m.table.AppendAll(expenses)
	m.history.Append("Loaded expenses from file.")
	m.logger.Info("Expenses imported", log.FieldRows, len(expenses), log.FieldLedgerSize, m.table.Len())
	return nil
}

// ImportFile reads a CSV file and bulk-imports it.
func (m *LedgerManager) ImportFile(path string) error {
	t, err := csvfile.ReadFile(path)
	if err != nil {
		return m.reject(log.OpImport, fmt.Errorf("%w: error loading file %s: %v", ErrIO, path, err))
	}
	return m.BulkImport(t)
}

// Export writes the ledger as CSV to w and records destination in the history.
func (m *LedgerManager) Export(w io.Writer, destination string) error {
	if err := csvfile.Encode(w, m.Table()); err != nil {
		return m.reject(log.OpExport, fmt.Errorf("%w: error saving to %s: %v", ErrIO, destination, err))
	}
	m.exported(destination)
	return nil
}

// ExportFile writes the ledger as CSV to path, replacing any existing file.
func (m *LedgerManager) ExportFile(path string) error {
	if err := csvfile.WriteFile(path, m.Table()); err != nil {
		return m.reject(log.OpExport, fmt.Errorf("%w: error saving to %s: %v", ErrIO, path, err))
	}
	m.exported(path)
	return nil
}

func (m *LedgerManager) exported(destination string) {
	m.history.Append("Saved expenses to file: " + destination)
	m.logger.Info("Expenses exported", log.FieldFile, destination, log.FieldRows, m.table.Len())
}

// Table serializes the ledger with the four-column header.
func (m *LedgerManager) Table() csvfile.Table {
	all := m.table.All()
	t := csvfile.Table{
		Header: append([]string(nil), Columns...),
		Rows:   make([][]string, 0, len(all)),
	}
	for _, e := range all {
		t.Rows = append(t.Rows, []string{e.Date.String(), string(e.Category), e.Amount.String(), e.Description})
	}
	return t
}

// TotalsByCategory sums amounts per category present in the ledger,
// sorted by category name. ok is false when the ledger is empty.
func (m *LedgerManager) TotalsByCategory() (totals []core.CategoryAmount, ok bool) {
	if m.table.Len() == 0 {
		m.logger.Debug("Nothing to aggregate", log.FieldOperation, log.OpByCat)
		return nil, false
	}

	sums := map[core.Category]decimal.Decimal{}
	for _, e := range m.table.All() {
		if _, seen := sums[e.Category]; !seen {
			totals = append(totals, core.CategoryAmount{Category: e.Category})
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	for i := range totals {
		totals[i].Amount = sums[totals[i].Category]
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })

	m.history.Append("Visualized expenses.")
	m.logger.Info("Category totals computed", log.FieldGroups, len(totals))
	return totals, true
}

// TotalsByDate sums amounts per calendar day, oldest first.
// ok is false when the ledger is empty.
func (m *LedgerManager) TotalsByDate() (totals []core.DateAmount, ok bool) {
	if m.table.Len() == 0 {
		m.logger.Debug("Nothing to aggregate", log.FieldOperation, log.OpByDate)
		return nil, false
	}

	index := map[string]int{}
	for _, e := range m.table.All() {
		key := e.Date.String()
		i, seen := index[key]
		if !seen {
			i = len(totals)
			index[key] = i
			totals = append(totals, core.DateAmount{Date: e.Date, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Date.Before(totals[j].Date) })

	m.history.Append("Calculated daily totals.")
	m.logger.Info("Daily totals computed", log.FieldGroups, len(totals))
	return totals, true
}

// History returns every logged action, newline-joined.
func (m *LedgerManager) History() string {
	return m.history.String()
}

// Entries returns the logged actions in order.
func (m *LedgerManager) Entries() []string {
	return m.history.Entries()
}

// Expenses returns the ledger in position order.
func (m *LedgerManager) Expenses() []core.Expense {
	return m.table.All()
}

func (m *LedgerManager) Len() int {
	return m.table.Len()
}

func (m *LedgerManager) reject(op string, err error) error {
	m.logger.Warn("Operation rejected",
		log.NewFields().WithOperation(op).WithErrorType(errorType(err)).WithError(err).ToSlice()...)
	return err
}

func decodeRows(t csvfile.Table) ([]core.Expense, error) {
	iDate, iCat, iAmount, iDesc := t.Index(ColumnDate), t.Index(ColumnCategory), t.Index(ColumnAmount), t.Index(ColumnDescription)

	width := max(iDate, iCat, iAmount, iDesc) + 1

	out := make([]core.Expense, 0, len(t.Rows))
	for n, row := range t.Rows {
		line := n + 2 // header is line 1
		if len(row) < width {
			return nil, fmt.Errorf("%w: row %d has %d fields, header needs %d", ErrSchema, line, len(row), width)
		}
		date, err := core.ParseDate(row[iDate])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrSchema, line, ColumnDate, err)
		}
		amount, err := core.ParseAmount(row[iAmount])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrSchema, line, ColumnAmount, err)
		}
		out = append(out, core.Expense{
			Date:        date,
			Category:    core.Category(row[iCat]),
			Amount:      amount,
			Description: row[iDesc],
		})
	}
	return out, nil
}
