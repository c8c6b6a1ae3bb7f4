package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.0", "1", true},
		{"1.23", "1.23", true},
		{"1,23", "1.23", true},
		{" 2.50 ", "2.5", true},
		{"0", "0", true},
		{"-1", "-1", true},
		{"abc", "", false},
		{"1.2.3", "", false},
		{"1,000.50", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestIsPositive(t *testing.T) {
	if !IsPositive(decimal.RequireFromString("0.01")) {
		t.Fatalf("0.01 should be positive")
	}
	for _, s := range []string{"0", "-0.01", "-100"} {
		if IsPositive(decimal.RequireFromString(s)) {
			t.Fatalf("%s should not be positive", s)
		}
	}
}

func TestFormatAmountAndTotal(t *testing.T) {
	if got := FormatAmount(decimal.RequireFromString("3")); got != "3.00" {
		t.Fatalf("unexpected format %q", got)
	}
	total := Total([]Expense{
		{Amount: decimal.RequireFromString("0.10")},
		{Amount: decimal.RequireFromString("0.20")},
	})
	if !total.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exact 0.3, got %s", total)
	}
}
