package wealth

import "github.com/shopspring/decimal"

// ActivityValue returns the monetary value of a, rounded to 6 decimals.
//
//   - splits are worth nothing, they only adjust quantities;
//   - fees and taxes are worth their fee;
//   - cash movements and incomes are worth their amount, the fee adding to
//     the outflow of withdrawals and outgoing transfers and reducing the
//     inflow of everything else;
//   - everything else is worth quantity times unit price, plus the fee for a
//     buy, minus the fee for a sell.
//
// It never fails: absent or malformed numbers degrade to zero. In particular
// a trade missing its quantity or unit price has a zero gross amount.
func ActivityValue(a Activity) decimal.Decimal {
	switch {
	case IsSplitActivity(a.Type):
		return decimal.Zero

	case IsFeeActivity(a.Type), IsTaxActivity(a.Type):
		return orZero(a.Fee).round()

	case IsCashActivity(a.Type), IsCashTransfer(a.Type, a.Symbol), IsIncomeActivity(a.Type):
		amount, fee := orZero(a.Amount), orZero(a.Fee)
		if a.Type == Withdrawal || a.Type == TransferOut {
			return amount.add(fee).round()
		}
		return amount.sub(fee).round()
	}

	gross := operand{v: coerce(a.Quantity).mul(coerce(a.UnitPrice)).round(), ok: true}
	fee := orZero(a.Fee)
	switch a.Type {
	case Buy:
		return gross.add(fee).round()
	case Sell:
		return gross.sub(fee).round()
	default:
		return gross.round()
	}
}
