package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Utilities     Category = "Utilities"
	Other         Category = "Other"
)

// DateLayout is the text form of a Date in CSV files, history entries and the console.
const DateLayout = "2006-01-02"

// dateLayouts are accepted on input; DateLayout is tried first.
var dateLayouts = []string{DateLayout, "2006/01/02", "01/02/2006"}

type (
	Category string

	Date struct {
		time.Time
	}

	Expense struct {
		Date        Date
		Category    Category
		Amount      decimal.Decimal
		Description string
	}
)

// Categories is the fixed set offered when adding a single expense.
var Categories = []Category{Food, Transport, Entertainment, Utilities, Other}

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidAmount   = errors.New("invalid amount")
)

// ParseCategory matches s against the fixed set, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidCategory, s, CategoryList())
}

// CategoryList renders the fixed set for prompts and error messages.
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date written as YYYY-MM-DD, YYYY/MM/DD or MM/DD/YYYY.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Equal compares calendar days only.
func (d Date) Equal(o Date) bool {
	return d.Time.Equal(o.Time)
}

// Before orders dates chronologically.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

// Equal reports whether all four fields match. Amounts compare by value, so 10 and 10.00 are equal.
func (e Expense) Equal(o Expense) bool {
	return e.Date.Equal(o.Date) &&
		e.Category == o.Category &&
		e.Amount.Equal(o.Amount) &&
		e.Description == o.Description
}

// Fields renders the record the way history entries list it.
func (e Expense) Fields() string {
	return fmt.Sprintf("%s, %s, %s, %s", e.Date, e.Category, e.Amount.String(), e.Description)
}
