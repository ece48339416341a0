package ports

import "github.com/shopspring/decimal"

// Contract for normalizing costs into the reference currency.
// Both lookups are total: misses resolve to the reference currency and to
// an identity rate.
type CurrencyRates interface {
	// Return the currency used by a country.
	CurrencyFor(country string) string
	// Return the multiplier converting one unit of currency into the reference currency.
	RateFor(currency string) decimal.Decimal
	ReferenceCurrency() string
}
