package rates

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Static country->currency and currency->reference-rate tables.
// Lookups never fail: an unknown country uses the reference currency and an
// unknown currency converts at 1.0.
type StaticTable struct {
	reference string
	countries map[string]string
	rates     map[string]decimal.Decimal
}

func NewStaticTable(reference string, countries map[string]string, rates map[string]decimal.Decimal) *StaticTable {
	return &StaticTable{
		reference: reference,
		countries: countries,
		rates:     rates,
	}
}

// DefaultTable returns the built-in USD table.
func DefaultTable() *StaticTable {
	return NewStaticTable("USD",
		map[string]string{
			"US": "USD",
			"GB": "GBP",
			"DE": "EUR",
			"FR": "EUR",
			"CA": "CAD",
			"CN": "CNY",
			"AU": "AUD",
			"JP": "JPY",
		},
		map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"GBP": decimal.RequireFromString("1.27"),
			"EUR": decimal.RequireFromString("1.08"),
			"CAD": decimal.RequireFromString("0.73"),
			"CNY": decimal.RequireFromString("0.14"),
			"AUD": decimal.RequireFromString("0.66"),
			"JPY": decimal.RequireFromString("0.0067"),
		},
	)
}

func (t *StaticTable) ReferenceCurrency() string { return t.reference }

func (t *StaticTable) CurrencyFor(country string) string {
	if c, ok := t.countries[country]; ok {
		return c
	}
	return t.reference
}

func (t *StaticTable) RateFor(currency string) decimal.Decimal {
	if r, ok := t.rates[currency]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// TableFile is the YAML layout accepted by LoadTable.
//
//	reference_currency: USD
//	countries:
//	  US: USD
//	rates:
//	  USD: 1.0
type TableFile struct {
	ReferenceCurrency string                     `yaml:"reference_currency"`
	Countries         map[string]string          `yaml:"countries"`
	Rates             map[string]decimal.Decimal `yaml:"rates"`
}

// LoadTable reads a rate table from a YAML file.
func LoadTable(path string) (*StaticTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rate table: read %q: %w", path, err)
	}

	var f TableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load rate table: parse yaml: %w", err)
	}

	return f.Table()
}

// Table validates the file contents and builds a StaticTable from them.
func (f TableFile) Table() (*StaticTable, error) {
	ref := strings.ToUpper(strings.TrimSpace(f.ReferenceCurrency))
	if ref == "" {
		ref = "USD"
	}

	countries := make(map[string]string, len(f.Countries))
	for country, currency := range f.Countries {
		country = strings.ToUpper(strings.TrimSpace(country))
		currency = strings.ToUpper(strings.TrimSpace(currency))
		if country == "" || currency == "" {
			return nil, errors.New("load rate table: country and currency codes must not be empty")
		}
		countries[country] = currency
	}

	rates := make(map[string]decimal.Decimal, len(f.Rates)+1)
	for currency, rate := range f.Rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("load rate table: rate for %q must be positive, got %s", currency, rate)
		}
		rates[strings.ToUpper(strings.TrimSpace(currency))] = rate
	}
	if _, ok := rates[ref]; !ok {
		rates[ref] = decimal.NewFromInt(1)
	}

	return NewStaticTable(ref, countries, rates), nil
}
