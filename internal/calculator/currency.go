package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned for exchange rates that are not strictly positive.
var ErrInvalidRate = errors.New("exchange rate must be a positive number")

// Convert expresses a base-currency amount in the display currency,
// rounded to the nearest whole display unit. Halves round away from zero
// for both signs (-24.5 becomes -25), so Convert(-a, r) == -Convert(a, r)
// and a debtor's converted net mirrors the matching creditor's.
func Convert(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
}

// ParseRate parses a decimal exchange rate such as "0.024".
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidRate, rate)
	}
	return rate, nil
}
