package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// NewDecimal converts external numeric input into an exact decimal value.
// Floats are rendered through their shortest round-trip string first, so
// 0.1 becomes exactly 0.1 rather than the nearest binary float. Every
// boundary value (prices, shares, weights, cash, thresholds) should enter
// through here.
func NewDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("cannot convert %q to decimal: %w", v, err)
		}
		return d, nil
	case float64:
		return decimalFromFloat(v)
	case float32:
		return decimalFromFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, fmt.Errorf("cannot convert %v (%T) to decimal", value, value)
	}
}

func decimalFromFloat(v float64) (decimal.Decimal, error) {
	// shortest faithful representation, never the raw binary mantissa
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', -1, 64))
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot convert %v to decimal: %w", v, err)
	}
	return d, nil
}

// MustDecimal is NewDecimal for trusted literals, e.g. in tests and the demo.
func MustDecimal(value any) decimal.Decimal {
	d, err := NewDecimal(value)
	if err != nil {
		panic(err)
	}
	return d
}
