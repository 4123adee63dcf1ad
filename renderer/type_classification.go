package renderer

import "github.com/etnz/wealth"

// Classification is the data of a single activity classification report.
type Classification struct {
	Type       string      `json:"type"`
	Symbol     string      `json:"symbol"`
	Predicates []Predicate `json:"predicates"`
	Value      string      `json:"value"`
}

// Predicate is the outcome of one classifier.
type Predicate struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// NewClassification runs every classifier on a.
func NewClassification(a wealth.Activity) *Classification {
	c := wealth.Classify(a)
	return &Classification{
		Type:   a.Type.String(),
		Symbol: a.Symbol,
		Predicates: []Predicate{
			{"Cash activity", c.Cash},
			{"Income activity", c.Income},
			{"Cash symbol", c.CashSymbol},
			{"Cash transfer", c.CashTransfer},
			{"Trade activity", c.Trade},
			{"Fee activity", c.Fee},
			{"Tax activity", c.Tax},
			{"Split activity", c.Split},
			{"Symbol required", c.SymbolRequired},
			{"Displayed negative", c.DisplayedNegative},
		},
		Value: wealth.SignedValue(a).String(),
	}
}
