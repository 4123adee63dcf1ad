package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/wealth"
)

// activityFlags describes a single activity on the command line, either
// field by field or as a JSON object.
type activityFlags struct {
	json      string
	typ       string
	date      string
	symbol    string
	quantity  string
	unitPrice string
	fee       string
	amount    string
	currency  string
}

func (p *activityFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.json, "json", "", "Activity as a JSON object. Other activity flags override its fields.")
	f.StringVar(&p.typ, "type", "", "Activity type (DEPOSIT, BUY, TRANSFER_IN...)")
	f.StringVar(&p.date, "date", "", "Activity date (YYYY-MM-DD)")
	f.StringVar(&p.symbol, "symbol", "", "Asset symbol, or a cash symbol like $CASH-EUR")
	f.StringVar(&p.quantity, "quantity", "", "Quantity")
	f.StringVar(&p.unitPrice, "price", "", "Unit price")
	f.StringVar(&p.fee, "fee", "", "Fee")
	f.StringVar(&p.amount, "amount", "", "Amount")
	f.StringVar(&p.currency, "currency", "", "Currency code")
}

// isSet reports whether an activity was described at all.
func (p *activityFlags) isSet() bool { return p.json != "" || p.typ != "" }

// activity builds the described activity. Numbers are parsed leniently, an
// empty flag leaves the number absent.
func (p *activityFlags) activity() (wealth.Activity, error) {
	var a wealth.Activity
	if p.json != "" {
		if err := json.Unmarshal([]byte(p.json), &a); err != nil {
			return a, fmt.Errorf("invalid JSON activity: %w", err)
		}
	}
	if p.typ != "" {
		t, err := wealth.ParseActivityType(p.typ)
		if err != nil {
			return a, err
		}
		a.Type = t
	}
	if p.date != "" {
		day, err := wealth.ParseDate(p.date)
		if err != nil {
			return a, err
		}
		a.Date = day
	}
	if p.symbol != "" {
		a.Symbol = p.symbol
	}
	if p.currency != "" {
		a.Currency = strings.ToUpper(p.currency)
	}
	for _, n := range []struct {
		raw string
		dst *wealth.Number
	}{
		{p.quantity, &a.Quantity},
		{p.unitPrice, &a.UnitPrice},
		{p.fee, &a.Fee},
		{p.amount, &a.Amount},
	} {
		if n.raw != "" {
			*n.dst = wealth.ParseNumber(n.raw)
		}
	}
	return a, nil
}
