package wealth

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Activity is one transaction line of an account: a deposit, a trade, a
// dividend, a fee...
//
// Activities are values. Functions in this package never modify the activity
// they receive, derivations return a new one.
type Activity struct {
	ID        string       // ID is the unique identifier of the activity, if any.
	AccountID string       // AccountID is the account the activity belongs to.
	Type      ActivityType // Type is the kind of activity.
	Date      time.Time    // Date is when the activity took place.
	Symbol    string       // Symbol is the instrument ticker, or a synthetic cash symbol like "$CASH-EUR".
	Quantity  Number       // Quantity is the number of units traded.
	UnitPrice Number       // UnitPrice is the price of one unit.
	Fee       Number       // Fee is the fee charged for the activity.
	Amount    Number       // Amount is the cash amount of cash and income activities.
	Currency  string       // Currency is the ISO 4217 code of the activity.
	Comment   string       // Comment is a free note.
}

const dateLayout = "2006-01-02"

// ParseDate parses an activity date, either a plain day (2006-01-02) or an
// RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid activity date %q, expected YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

// formatDate is the inverse of ParseDate: midnight UTC dates are written as a plain day.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}

// Value returns the activity value in the activity currency.
func (a Activity) Value() Money { return M(ActivityValue(a), a.Currency) }

// Equal reports whether both activities hold the same information.
func (a Activity) Equal(b Activity) bool {
	return a.ID == b.ID && a.AccountID == b.AccountID && a.Type == b.Type &&
		a.Date.Equal(b.Date) && a.Symbol == b.Symbol &&
		a.Quantity.equal(b.Quantity) && a.UnitPrice.equal(b.UnitPrice) &&
		a.Fee.equal(b.Fee) && a.Amount.equal(b.Amount) &&
		a.Currency == b.Currency && a.Comment == b.Comment
}

func (n Number) equal(m Number) bool {
	return n.present == m.present && n.finite == m.finite && (!n.finite || n.value.Equal(m.value))
}

// MarshalJSON writes the activity fields in a stable order, omitting empty ones.
func (a Activity) MarshalJSON() ([]byte, error) {
	var w fieldWriter
	w.Text("id", a.ID)
	w.Text("accountId", a.AccountID)
	w.Field("activityType", a.Type)
	w.Text("activityDate", formatDate(a.Date))
	w.Text("assetSymbol", a.Symbol)
	w.Number("quantity", a.Quantity)
	w.Number("unitPrice", a.UnitPrice)
	w.Number("fee", a.Fee)
	w.Number("amount", a.Amount)
	w.Text("currency", a.Currency)
	w.Text("comment", a.Comment)
	return w.Object()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Activity.
func (a *Activity) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        string       `json:"id"`
		AccountID string       `json:"accountId"`
		Type      ActivityType `json:"activityType"`
		Date      string       `json:"activityDate"`
		Symbol    string       `json:"assetSymbol"`
		Quantity  Number       `json:"quantity"`
		UnitPrice Number       `json:"unitPrice"`
		Fee       Number       `json:"fee"`
		Amount    Number       `json:"amount"`
		Currency  string       `json:"currency"`
		Comment   string       `json:"comment"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var day time.Time
	if temp.Date != "" {
		var err error
		if day, err = ParseDate(temp.Date); err != nil {
			return err
		}
	}
	*a = Activity{
		ID:        temp.ID,
		AccountID: temp.AccountID,
		Type:      temp.Type,
		Date:      day,
		Symbol:    temp.Symbol,
		Quantity:  temp.Quantity,
		UnitPrice: temp.UnitPrice,
		Fee:       temp.Fee,
		Amount:    temp.Amount,
		Currency:  temp.Currency,
		Comment:   temp.Comment,
	}
	return nil
}

// SignedValue returns the activity value with the sign used for display:
// negative for the activity types that take cash out.
func SignedValue(a Activity) Money {
	v := ActivityValue(a)
	if IsDisplayedNegative(a.Type) {
		v = v.Neg()
	}
	return M(v, a.Currency)
}

// NetCashFlow sums the signed values of activities per currency, sorted by
// currency code. Activities without a currency are left out.
func NetCashFlow(list []Activity) []Money {
	totals := make(map[string]Money)
	for _, a := range list {
		if a.Currency == "" {
			continue
		}
		total, ok := totals[a.Currency]
		if !ok {
			total = M(0, a.Currency)
		}
		totals[a.Currency] = total.Add(SignedValue(a))
	}
	var flows []Money
	for _, cur := range slices.Sorted(maps.Keys(totals)) {
		flows = append(flows, totals[cur])
	}
	return flows
}
