package payment

import "strings"

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyAUD Currency = "AUD"
	CurrencyNZD Currency = "NZD"
)

// DefaultCurrency is used when the request omits the currency.
const DefaultCurrency = CurrencyEUR

var SupportedCurrencies = []Currency{CurrencyEUR, CurrencyGBP, CurrencyUSD, CurrencyAUD, CurrencyNZD}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyGBP, CurrencyUSD, CurrencyAUD, CurrencyNZD:
		return true
	default:
		return false
	}
}

func NewCurrency(s string) (Currency, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency, nil
	}
	c := Currency(s)
	if !c.IsValid() {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}
