package renderer

import "github.com/etnz/wealth"

// Activities is the data of an activity table.
// Numbers are already formatted, the value carries its display sign.
type Activities struct {
	Rows []ActivityRow `json:"rows"`
	// Totals is the net signed value per currency, sorted by currency.
	Totals []wealth.Money `json:"totals"`
}

// ActivityRow is one line of the activity table.
type ActivityRow struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Fee       string `json:"fee"`
	Amount    string `json:"amount"`
	Value     string `json:"value"`
}

// NewActivities prepares activities for rendering, in the given order.
func NewActivities(list []wealth.Activity) *Activities {
	a := &Activities{}
	for _, act := range list {
		day := ""
		if !act.Date.IsZero() {
			day = act.Date.Format("2006-01-02")
		}
		a.Rows = append(a.Rows, ActivityRow{
			Date:      day,
			Type:      act.Type.String(),
			Symbol:    act.Symbol,
			Quantity:  act.Quantity.String(),
			UnitPrice: act.UnitPrice.String(),
			Fee:       act.Fee.String(),
			Amount:    act.Amount.String(),
			Value:     wealth.SignedValue(act).String(),
		})
	}
	a.Totals = wealth.NetCashFlow(list)
	return a
}
