package wealth

import (
	"regexp"
	"strings"
)

// CashActivityTypes lists the activity types that move cash without trading
// an instrument.
var CashActivityTypes = []ActivityType{Deposit, Withdrawal, TransferIn, TransferOut, Fee, Tax, Credit}

// IncomeActivityTypes lists the activity types that are income.
var IncomeActivityTypes = []ActivityType{Dividend, Interest}

// static lookup tables for the closed sets.
var (
	cashActivity        = set(CashActivityTypes...)
	incomeActivity      = set(IncomeActivityTypes...)
	symbolNotRequired   = set(Deposit, Withdrawal, Interest, Tax, Fee, Credit)
	displayedNegative   = set(Buy, Withdrawal, TransferOut, Fee, Tax)
	transferActivity    = set(TransferIn, TransferOut)
	cashSymbolPattern   = regexp.MustCompile(`^\$?[Cc][Aa][Ss][Hh][-_:][A-Za-z]{3}$`)
	cashTransferPattern = regexp.MustCompile(`^CASH:[A-Z]{3}$`)
)

func set(types ...ActivityType) map[ActivityType]bool {
	m := make(map[ActivityType]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

// IsCashActivity reports whether t moves cash without trading an instrument.
func IsCashActivity(t ActivityType) bool { return cashActivity[t] }

// IsIncomeActivity reports whether t is an income (dividend, interest).
func IsIncomeActivity(t ActivityType) bool { return incomeActivity[t] }

// IsCashSymbol reports whether symbol is a synthetic cash symbol: an optional
// "$", "CASH", one of "-", "_" or ":", and a three letter currency code, in
// any ASCII case. Surrounding spaces are ignored.
func IsCashSymbol(symbol string) bool {
	return cashSymbolPattern.MatchString(strings.TrimSpace(symbol))
}

// IsSymbolRequired reports whether an activity of type t needs an asset
// symbol. Pure cash activities never do, and neither does an activity that
// already carries a cash symbol.
func IsSymbolRequired(t ActivityType, symbol string) bool {
	return !symbolNotRequired[t] && !IsCashSymbol(symbol)
}

// IsCashTransfer reports whether a transfer moves cash rather than an
// instrument: its symbol is "CASH" or "CASH:" followed by a currency code.
func IsCashTransfer(t ActivityType, symbol string) bool {
	if !transferActivity[t] {
		return false
	}
	s := strings.ToUpper(symbol)
	return s == "CASH" || cashTransferPattern.MatchString(s)
}

func IsTradeActivity(t ActivityType) bool { return t == Buy || t == Sell }
func IsFeeActivity(t ActivityType) bool   { return t == Fee }
func IsTaxActivity(t ActivityType) bool   { return t == Tax }
func IsSplitActivity(t ActivityType) bool { return t == Split }

// IsDisplayedNegative reports whether the value of an activity of type t is
// shown as a negative amount.
func IsDisplayedNegative(t ActivityType) bool { return displayedNegative[t] }

// Classification gathers every predicate of the classifier for one activity.
type Classification struct {
	Cash              bool `json:"cash"`
	Income            bool `json:"income"`
	CashSymbol        bool `json:"cashSymbol"`
	CashTransfer      bool `json:"cashTransfer"`
	Trade             bool `json:"trade"`
	Fee               bool `json:"fee"`
	Tax               bool `json:"tax"`
	Split             bool `json:"split"`
	SymbolRequired    bool `json:"symbolRequired"`
	DisplayedNegative bool `json:"displayedNegative"`
}

// Classify evaluates all the classifier predicates on a.
func Classify(a Activity) Classification {
	return Classification{
		Cash:              IsCashActivity(a.Type),
		Income:            IsIncomeActivity(a.Type),
		CashSymbol:        IsCashSymbol(a.Symbol),
		CashTransfer:      IsCashTransfer(a.Type, a.Symbol),
		Trade:             IsTradeActivity(a.Type),
		Fee:               IsFeeActivity(a.Type),
		Tax:               IsTaxActivity(a.Type),
		Split:             IsSplitActivity(a.Type),
		SymbolRequired:    IsSymbolRequired(a.Type, a.Symbol),
		DisplayedNegative: IsDisplayedNegative(a.Type),
	}
}
