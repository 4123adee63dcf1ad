package wealth

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks a before it is persisted, and returns a copy with quick
// fixes applied, or an error with all validation failures.
//
// Quick fixes normalize the symbol and currency case, infer the currency of a
// cash symbol, and give pure cash activities a "$CASH-XXX" symbol.
func Validate(a Activity) (Activity, error) {
	a = quickFix(a)

	var errs []error
	fail := func(format string, args ...any) { errs = append(errs, fmt.Errorf(format, args...)) }

	if !a.Type.Known() {
		fail("unknown activity type %q", a.Type)
	}
	if IsSymbolRequired(a.Type, a.Symbol) && a.Symbol == "" {
		fail("%s activity requires an asset symbol", a.Type)
	}

	numbers := []struct {
		name string
		n    Number
	}{
		{"quantity", a.Quantity},
		{"unit price", a.UnitPrice},
		{"fee", a.Fee},
		{"amount", a.Amount},
	}
	for _, f := range numbers {
		if !f.n.IsSet() {
			continue
		}
		v, ok := f.n.Decimal()
		if !ok {
			fail("%s is not a valid number", f.name)
		} else if v.IsNegative() {
			fail("%s must not be negative, got %s", f.name, v)
		}
	}

	switch {
	case IsTradeActivity(a.Type):
		if !a.Quantity.IsSet() {
			fail("%s activity requires a quantity", a.Type)
		} else if v, ok := a.Quantity.Decimal(); ok && v.IsZero() {
			fail("%s activity quantity must be positive", a.Type)
		}
		if !a.UnitPrice.IsSet() {
			fail("%s activity requires a unit price", a.Type)
		}
	case IsSplitActivity(a.Type):
		if v, ok := a.Amount.Decimal(); !a.Amount.IsSet() || (ok && v.IsZero()) {
			fail("split activity requires a positive split ratio in amount")
		}
	case IsFeeActivity(a.Type), IsTaxActivity(a.Type):
		if !a.Fee.IsSet() {
			fail("%s activity requires a fee", a.Type)
		}
	case IsCashActivity(a.Type), IsIncomeActivity(a.Type):
		if !a.Amount.IsSet() {
			fail("%s activity requires an amount", a.Type)
		}
	case a.Type == Adjustment:
		if !a.Quantity.IsSet() {
			fail("%s activity requires a quantity", a.Type)
		}
	}

	switch {
	case a.Currency == "" && !IsSplitActivity(a.Type):
		fail("%s activity requires a currency", a.Type)
	case a.Currency != "" && !KnownCurrency(a.Currency):
		fail("unknown currency %q", a.Currency)
	}

	return a, errors.Join(errs...)
}

func quickFix(a Activity) Activity {
	a.Symbol = strings.ToUpper(strings.TrimSpace(a.Symbol))
	a.Currency = strings.ToUpper(strings.TrimSpace(a.Currency))

	if a.Currency == "" && IsCashSymbol(a.Symbol) {
		a.Currency = a.Symbol[len(a.Symbol)-3:]
	}
	if a.Symbol == "" && a.Currency != "" && !IsSymbolRequired(a.Type, "") {
		a.Symbol = "$CASH-" + a.Currency
	}
	return a
}

// ValidationErrors lists the messages of an error returned by Validate, one
// per failure.
func ValidationErrors(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var list []string
		for _, e := range joined.Unwrap() {
			list = append(list, e.Error())
		}
		return list
	}
	return []string{err.Error()}
}
