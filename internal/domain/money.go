package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is a currency amount in integer minor units (cents).
// Formatted strings like "$149.99" exist only at the boundary.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

const DefaultCurrency = "USD"

func Cents(n int64) Money { return Money{Cents: n, Currency: DefaultCurrency} }

// ParsePrice converts a currency-formatted string ("$149.99", "149.99",
// "$1,299.00") into Money. Unparsable input yields zero cents, never an
// error, so filtering over dirty data stays total.
func ParsePrice(s string) Money {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return Money{Cents: 0, Currency: DefaultCurrency}
	}
	// round half up to avoid 14998 from 149.99
	return Money{Cents: int64(f*100 + 0.5), Currency: DefaultCurrency}
}

func (m Money) Format() string {
	sign := ""
	c := m.Cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

func (m Money) IsZero() bool { return m.Cents == 0 }
