package wealth

import (
	"fmt"
	"strings"
)

// ActivityType is a typed string identifying the kind of an activity.
type ActivityType string

// Activity types, as they appear in activity files.
const (
	Deposit     ActivityType = "DEPOSIT"
	Withdrawal  ActivityType = "WITHDRAWAL"
	TransferIn  ActivityType = "TRANSFER_IN"
	TransferOut ActivityType = "TRANSFER_OUT"
	Dividend    ActivityType = "DIVIDEND"
	Interest    ActivityType = "INTEREST"
	Buy         ActivityType = "BUY"
	Sell        ActivityType = "SELL"
	Fee         ActivityType = "FEE"
	Tax         ActivityType = "TAX"
	Split       ActivityType = "SPLIT"
	Credit      ActivityType = "CREDIT"
	Adjustment  ActivityType = "ADJUSTMENT"
)

var activityTypes = []ActivityType{
	Deposit, Withdrawal, TransferIn, TransferOut,
	Dividend, Interest,
	Buy, Sell,
	Fee, Tax, Split, Credit, Adjustment,
}

// ActivityTypes returns all the known activity types in declaration order.
func ActivityTypes() []ActivityType {
	return append([]ActivityType(nil), activityTypes...)
}

// Known reports whether t is one of the declared activity types.
func (t ActivityType) Known() bool {
	for _, k := range activityTypes {
		if k == t {
			return true
		}
	}
	return false
}

func (t ActivityType) String() string { return string(t) }

// ParseActivityType parses a user supplied label into an ActivityType.
// Case is ignored, and spaces or dashes are accepted as word separators, so
// "transfer in", "Transfer-In" and "TRANSFER_IN" are all TransferIn.
func ParseActivityType(label string) (ActivityType, error) {
	norm := strings.ToUpper(strings.TrimSpace(label))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	t := ActivityType(norm)
	if !t.Known() {
		return "", fmt.Errorf("unknown activity type %q", label)
	}
	return t, nil
}
