package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumericInput marks a numeric field that could not be coerced into
// a decimal. Callers can return a client-correctable error instead of letting
// a NaN-like value flow into the calculator.
var ErrInvalidNumericInput = errors.New("invalid numeric input")

// Parse coerces a raw stored value into a decimal. The source system stored
// amounts as loosely typed text, so every numeric field goes through this
// exactly once, at the store boundary.
func Parse(field, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: field %q value %q", ErrInvalidNumericInput, field, raw)
	}
	return value, nil
}

// ParseMap coerces every value of a raw string map, keeping keys.
func ParseMap(field string, raw map[string]string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(raw))
	for key, value := range raw {
		parsed, err := Parse(field+"."+key, value)
		if err != nil {
			return nil, err
		}
		out[key] = parsed
	}
	return out, nil
}

// Round2 rounds to two decimal places, half away from zero. The calculator
// applies it after every named step so recomputation is bit-for-bit stable.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Sum adds a map of amounts in key-independent fashion.
func Sum(values map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
