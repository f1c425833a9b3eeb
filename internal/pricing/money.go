package pricing

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. All quote arithmetic happens on this type so
// sums never drift at the cent level.
type Money int64

// Dollars builds a Money value from whole dollars and cents.
func Dollars(dollars, cents int64) Money {
	return Money(dollars*100 + cents)
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// String renders the amount with exactly two decimals, e.g. "89.98".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// maxDollars keeps dollars*100 plus a rounded cent inside int64
const maxDollars = (math.MaxInt64 - 100) / 100

// ParseMoney parses a decimal string such as "119.97" without going through
// binary floating point. Digits past the second decimal are rounded half-up.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if dollars > maxDollars {
		return 0, fmt.Errorf("amount %q out of range", s)
	}

	var cents int64
	for i := 0; i < 2; i++ {
		cents *= 10
		if i < len(frac) {
			cents += int64(frac[i] - '0')
		}
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	total := dollars*100 + cents
	if negative {
		total = -total
	}
	return Money(total), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
