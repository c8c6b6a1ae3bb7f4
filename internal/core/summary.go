package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// DateAmount represents an amount aggregated by calendar day.
type DateAmount struct {
	Date   Date
	Amount decimal.Decimal
}

// Total sums the amounts of a slice of expenses.
func Total(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
