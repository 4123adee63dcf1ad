package wealth

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is an optional decimal-like value, as typed in a form or read from a
// CSV cell: a number or a numeric string.
//
// The zero value means "not provided", which is not the same as zero.
//
// Coercion is intentionally lenient: a string that is not a number is kept as
// a not-a-number value instead of being rejected, and valuation treats it as
// zero. This suits values derived for display. A ledger of record should
// reject such input, which is what Validate does.
type Number struct {
	value   decimal.Decimal
	present bool
	finite  bool
}

// N is a convenient factory for Number. Strings are parsed with ParseNumber,
// NaN and infinite floats give a non-finite Number.
func N[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | string | decimal.Decimal](value T) Number {
	switch v := any(value).(type) {
	case string:
		return ParseNumber(v)
	case decimal.Decimal:
		return bounded(v)
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return Number{present: true}
		}
		return finite(decimal.NewFromFloat32(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Number{present: true}
		}
		return finite(decimal.NewFromFloat(v))
	case int:
		return finite(decimal.NewFromInt(int64(v)))
	case int32:
		return finite(decimal.NewFromInt32(v))
	case int64:
		return finite(decimal.NewFromInt(v))
	case uint:
		return finite(decimal.NewFromUint64(uint64(v)))
	case uint32:
		return finite(decimal.NewFromUint64(uint64(v)))
	case uint64:
		return finite(decimal.NewFromUint64(v))
	default:
		panic("unsupported type")
	}
}

func finite(d decimal.Decimal) Number { return Number{value: d, present: true, finite: true} }

// maxNumber is the smallest magnitude that a float64 conversion rounds to
// infinity: 2^1024 - 2^970.
var maxNumber = decimal.NewFromBigInt(new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 1024),
	new(big.Int).Lsh(big.NewInt(1), 970),
), 0)

// bounded gives d the range of a float64: magnitudes that would overflow are
// infinite, those far below the smallest subnormal are zero.
func bounded(d decimal.Decimal) Number {
	if d.IsZero() {
		return finite(decimal.Zero)
	}
	magnitude := d.NumDigits() + int(d.Exponent())
	switch {
	case magnitude > 310:
		return Number{present: true}
	case magnitude < -330:
		return finite(decimal.Zero)
	case d.Abs().Cmp(maxNumber) >= 0:
		return Number{present: true}
	}
	return finite(d)
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber converts s the way a generic "to number" conversion does:
// surrounding whitespace is ignored and an empty string is 0. Decimal
// literals (with optional sign, fraction and exponent), unsigned 0x/0o/0b
// integer literals and signed "Infinity" are accepted. Anything else is a
// not-a-number value. Values out of the float64 range are infinite.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return finite(decimal.Zero)
	case "Infinity", "+Infinity", "-Infinity":
		return Number{present: true}
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return Number{present: true}
			}
			i, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return Number{present: true}
			}
			return bounded(decimal.NewFromBigInt(i, 0))
		}
	}

	if !decimalLiteral.MatchString(s) {
		return Number{present: true}
	}
	mantissa, exp := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, exp = s[:i], s[i:]
	}
	// decimal.NewFromString is stricter than the literal grammar above.
	sign := ""
	switch mantissa[0] {
	case '-':
		sign, mantissa = "-", mantissa[1:]
	case '+':
		mantissa = mantissa[1:]
	}
	mantissa = strings.TrimSuffix(mantissa, ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	d, err := decimal.NewFromString(sign + mantissa + exp)
	if err != nil {
		return Number{present: true}
	}
	return bounded(d)
}

// IsSet reports whether a value was provided at all.
func (n Number) IsSet() bool { return n.present }

// IsFinite reports whether n was provided and is an actual number.
func (n Number) IsFinite() bool { return n.present && n.finite }

// Decimal returns the value of n, false if n is absent or not a finite number.
func (n Number) Decimal() (decimal.Decimal, bool) {
	if !n.IsFinite() {
		return decimal.Zero, false
	}
	return n.value, true
}

func (n Number) String() string {
	switch {
	case !n.present:
		return ""
	case !n.finite:
		return "NaN"
	}
	return n.value.String()
}

// MarshalJSON writes n as a JSON number, or null when it has no finite value.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsFinite() {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null for "not provided".
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = unquoted
	}
	*n = ParseNumber(s)
	return nil
}

// operand is a coerced Number. A non-finite operand poisons every
// computation it enters, and rounds to zero.
type operand struct {
	v  decimal.Decimal
	ok bool
}

// coerce converts n permissively: an absent value is not-a-number.
func coerce(n Number) operand {
	v, ok := n.Decimal()
	return operand{v, ok}
}

// orZero is like coerce except that an absent value counts as zero.
func orZero(n Number) operand {
	if !n.IsSet() {
		return operand{decimal.Zero, true}
	}
	return coerce(n)
}

func (a operand) add(b operand) operand { return operand{a.v.Add(b.v), a.ok && b.ok} }
func (a operand) sub(b operand) operand { return operand{a.v.Sub(b.v), a.ok && b.ok} }
func (a operand) mul(b operand) operand { return operand{a.v.Mul(b.v), a.ok && b.ok} }

// RoundingPlaces is the number of decimal places kept by activity values.
const RoundingPlaces = 6

var half = decimal.New(5, -1)

// round rounds to RoundingPlaces, to the nearest value with ties toward
// +Inf. Non-finite operands, and results beyond the float64 range, round to 0.
func (a operand) round() decimal.Decimal {
	if !a.ok || a.v.Abs().Cmp(maxNumber) >= 0 {
		return decimal.Zero
	}
	return a.v.Shift(RoundingPlaces).Add(half).Floor().Shift(-RoundingPlaces)
}

// Round rounds n to 6 decimal places. Absent and non-finite values round to 0.
func Round(n Number) decimal.Decimal { return coerce(n).round() }
