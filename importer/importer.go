// Package importer reads activities from broker exports (CSV files or JSON
// documents), maps them to wealth activities, and validates them.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/wealth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Field identifies an activity field in a mapping.
type Field string

// Fields that can be mapped.
const (
	FieldDate      Field = "date"
	FieldType      Field = "activityType"
	FieldSymbol    Field = "symbol"
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unitPrice"
	FieldFee       Field = "fee"
	FieldAmount    Field = "amount"
	FieldCurrency  Field = "currency"
	FieldAccount   Field = "account"
	FieldComment   Field = "comment"
)

var fields = []Field{FieldDate, FieldType, FieldSymbol, FieldQuantity, FieldUnitPrice, FieldFee, FieldAmount, FieldCurrency, FieldAccount, FieldComment}

// Mapping describes how a broker export maps to activities.
type Mapping struct {
	// Columns maps a field to the CSV column header holding it.
	// Unmapped fields are looked up by their own name.
	Columns map[Field]string `json:"columns,omitempty"`
	// ActivityTypes maps broker labels to activity types, e.g. "Purchase": "BUY".
	// Labels not listed here are parsed with wealth.ParseActivityType.
	ActivityTypes map[string]wealth.ActivityType `json:"activityTypes,omitempty"`
	// Symbols maps broker symbols to the symbols used in the ledger.
	Symbols map[string]string `json:"symbols,omitempty"`
	// Delimiter is the CSV field delimiter, "," by default.
	Delimiter string `json:"delimiter,omitempty"`
	// DateLayouts are tried in order before the default activity date formats.
	DateLayouts []string `json:"dateLayouts,omitempty"`
	// Currency is used for activities without currency.
	Currency string `json:"currency,omitempty"`
	// AccountID is used for activities without account.
	AccountID string `json:"accountId,omitempty"`
}

// DecodeMapping reads a JSON mapping.
func DecodeMapping(r io.Reader) (Mapping, error) {
	var m Mapping
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return m, fmt.Errorf("invalid import mapping: %w", err)
	}
	if len([]rune(m.Delimiter)) > 1 {
		return m, fmt.Errorf("invalid import mapping: delimiter %q must be a single character", m.Delimiter)
	}
	return m, nil
}

// column returns the CSV header for f.
func (m Mapping) column(f Field) string {
	if c, ok := m.Columns[f]; ok {
		return c
	}
	return string(f)
}

// activityType resolves a broker label.
func (m Mapping) activityType(label string) wealth.ActivityType {
	label = strings.TrimSpace(label)
	for alias, t := range m.ActivityTypes {
		if strings.EqualFold(alias, label) {
			return t
		}
	}
	if t, err := wealth.ParseActivityType(label); err == nil {
		return t
	}
	// Validate reports it as unknown.
	return wealth.ActivityType(strings.ToUpper(label))
}

func (m Mapping) symbol(s string) string {
	s = strings.TrimSpace(s)
	if alias, ok := m.Symbols[s]; ok {
		return alias
	}
	return s
}

func (m Mapping) date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range m.DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return wealth.ParseDate(s)
}

// Entry is one imported record.
type Entry struct {
	Line     int             // Line is the CSV line, or the JSON record index starting at 1.
	Activity wealth.Activity // Activity is the mapped activity, with quick fixes applied.
	Errors   []string        // Errors lists every reason why the activity is invalid.
}

// Valid reports whether the entry can be persisted.
func (e Entry) Valid() bool { return len(e.Errors) == 0 }

// Result holds the outcome of an import.
type Result struct {
	Entries []Entry
}

// Valid returns the activities of the valid entries, in input order.
func (r *Result) Valid() []wealth.Activity {
	var list []wealth.Activity
	for _, e := range r.Entries {
		if e.Valid() {
			list = append(list, e.Activity)
		}
	}
	return list
}

// Summary counts the entries of an import and totals the signed value of the
// valid ones per currency.
type Summary struct {
	Rows    int
	Valid   int
	Invalid int
	Totals  []wealth.Money // one per currency, sorted by currency code
}

// Summary computes the summary of r.
func (r *Result) Summary() Summary {
	valid := r.Valid()
	return Summary{
		Rows:    len(r.Entries),
		Valid:   len(valid),
		Invalid: len(r.Entries) - len(valid),
		Totals:  wealth.NetCashFlow(valid),
	}
}

// Importer maps records to activities.
type Importer struct {
	mapping Mapping
	log     zerolog.Logger
	newID   func() string
}

// New creates an Importer for the given mapping.
func New(mapping Mapping, log zerolog.Logger) *Importer {
	return &Importer{
		mapping: mapping,
		log:     log.With().Str("component", "importer").Logger(),
		newID:   uuid.NewString,
	}
}

// record gives access to the raw value of a field, false when the record
// does not hold the field at all.
type record func(Field) (any, bool)

// entry maps and validates a single record.
func (im *Importer) entry(line int, rec record) Entry {
	m := im.mapping
	var errs []string
	str := func(f Field) string {
		v, ok := rec(f)
		if !ok || v == nil {
			return ""
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(fmt.Sprint(v))
	}
	num := func(f Field) wealth.Number {
		v, ok := rec(f)
		if !ok || v == nil {
			return wealth.Number{}
		}
		switch v := v.(type) {
		case float64:
			return wealth.N(v)
		case json.Number:
			return wealth.ParseNumber(v.String())
		case string:
			// an empty cell is a missing value, not zero.
			if strings.TrimSpace(v) == "" {
				return wealth.Number{}
			}
			return wealth.ParseNumber(v)
		default:
			return wealth.ParseNumber(fmt.Sprint(v))
		}
	}

	a := wealth.Activity{
		ID:        im.newID(),
		AccountID: str(FieldAccount),
		Type:      m.activityType(str(FieldType)),
		Symbol:    m.symbol(str(FieldSymbol)),
		Quantity:  num(FieldQuantity),
		UnitPrice: num(FieldUnitPrice),
		Fee:       num(FieldFee),
		Amount:    num(FieldAmount),
		Currency:  str(FieldCurrency),
		Comment:   str(FieldComment),
	}
	if a.AccountID == "" {
		a.AccountID = m.AccountID
	}
	if a.Currency == "" {
		a.Currency = m.Currency
	}
	if raw := str(FieldDate); raw == "" {
		errs = append(errs, "activity date is missing")
	} else if day, err := m.date(raw); err != nil {
		errs = append(errs, err.Error())
	} else {
		a.Date = day
	}

	fixed, err := wealth.Validate(a)
	errs = append(errs, wealth.ValidationErrors(err)...)
	if len(errs) > 0 {
		im.log.Debug().Int("line", line).Strs("errors", errs).Msg("invalid activity")
	}
	return Entry{Line: line, Activity: fixed, Errors: errs}
}
