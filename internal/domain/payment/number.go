package payment

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber reads a JSON number or a numeric JSON string. Anything else,
// including null and absent values, yields an invalid NullDecimal.
func ParseNumber(raw json.RawMessage) decimal.NullDecimal {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.NullDecimal{}
	}

	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.NullDecimal{}
		}
		s = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !withinPrecision(d) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Bounds keep later rounding and integer conversion from expanding a short
// input like "1e50000000" into a huge coefficient.
const (
	maxExponent = 18
	maxDigits   = 30
)

func withinPrecision(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxExponent && exp >= -maxExponent && d.NumDigits() <= maxDigits
}

// wholePositive returns n as int64 when it is a positive integer that fits.
func wholePositive(n decimal.NullDecimal) (int64, bool) {
	if !n.Valid || !n.Decimal.IsPositive() || !n.Decimal.IsInteger() {
		return 0, false
	}
	bi := n.Decimal.BigInt()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}
