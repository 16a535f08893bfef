package calculator

import (
	"fmt"
	"strings"
)

// Currency is a supported currency code with its display symbol.
type Currency struct {
	Code   string
	Symbol string
}

// Currencies lists the codes offered by default, in display order.
var Currencies = []Currency{
	{Code: "RUB", Symbol: "₽"},
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "CNY", Symbol: "¥"},
	{Code: "JPY", Symbol: "¥"},
	{Code: "KRW", Symbol: "₩"},
	{Code: "THB", Symbol: "฿"},
	{Code: "VND", Symbol: "₫"},
}

// CurrencySymbol returns the display symbol for code, or code itself when
// the currency is not in Currencies.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}

// NormalizeCurrency upper-cases code and checks it is three ASCII letters.
// An empty code resolves to fallback.
func NormalizeCurrency(code, fallback string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = strings.ToUpper(fallback)
	}
	if len(code) != 3 {
		return "", fmt.Errorf("invalid currency code %q", code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("invalid currency code %q", code)
		}
	}
	return code, nil
}
