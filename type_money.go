package wealth

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	default:
		panic("unsupported type")
	}
}

// KnownCurrency reports whether code is an ISO 4217 currency code.
func KnownCurrency(code string) bool {
	return code != "" && money.GetCurrency(strings.ToUpper(code)) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for its currency, for instance "$1,234.50".
// Money without currency is printed as a plain number.
func (m Money) String() string {
	if !KnownCurrency(m.cur) {
		return m.value.String()
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }

// Add sums two amounts of the same currency.
// Money without currency takes the currency of the other operand.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w fieldWriter
	w.Text("currency", m.cur)
	w.Field("amount", m.value)
	return w.Object()
}
