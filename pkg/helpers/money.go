package helpers

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrUnknownCurrency = errors.New("unknown currency")

var pricePrinter = message.NewPrinter(language.English)

// ValidateCurrency parses an ISO 4217 code and returns its canonical form.
func ValidateCurrency(code string) (string, error) {
	unit, err := parseUnit(code)
	if err != nil {
		return "", err
	}
	return unit.String(), nil
}

func parseUnit(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == (currency.Unit{}) {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return unit, nil
}

// FormatPrice renders an amount held in minor units, e.g. 4500 USD -> "$45.00".
func FormatPrice(minor int64, code string) (string, error) {
	unit, err := parseUnit(code)
	if err != nil {
		return "", err
	}
	scale, _ := currency.Standard.Rounding(unit)

	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	div := int64(1)
	for i := 0; i < scale; i++ {
		div *= 10
	}
	symbol := pricePrinter.Sprint(currency.NarrowSymbol(unit))
	whole := pricePrinter.Sprintf("%d", minor/div)
	if scale == 0 {
		return sign + symbol + whole, nil
	}
	return fmt.Sprintf("%s%s%s.%0*d", sign, symbol, whole, scale, minor%div), nil
}
