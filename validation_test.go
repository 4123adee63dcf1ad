package wealth

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		activity Activity
		wantErrs []string // substrings expected in the error, none means valid
	}{
		{
			name:     "valid buy",
			activity: Activity{Type: Buy, Symbol: "AAPL", Quantity: N(10), UnitPrice: N(15), Currency: "USD"},
		},
		{
			name:     "valid deposit without symbol",
			activity: Activity{Type: Deposit, Amount: N(100), Currency: "EUR"},
		},
		{
			name:     "valid split without currency",
			activity: Activity{Type: Split, Symbol: "NVDA", Amount: N(10)},
		},
		{
			name:     "buy missing everything",
			activity: Activity{Type: Buy},
			wantErrs: []string{"requires an asset symbol", "requires a quantity", "requires a unit price", "requires a currency"},
		},
		{
			name:     "buy with zero quantity",
			activity: Activity{Type: Buy, Symbol: "AAPL", Quantity: N(0), UnitPrice: N(15), Currency: "USD"},
			wantErrs: []string{"quantity must be positive"},
		},
		{
			name:     "negative and malformed numbers",
			activity: Activity{Type: Sell, Symbol: "AAPL", Quantity: N(-1), UnitPrice: N("abc"), Currency: "USD"},
			wantErrs: []string{"quantity must not be negative", "unit price is not a valid number"},
		},
		{
			name:     "fee without fee",
			activity: Activity{Type: Fee, Amount: N(3), Currency: "EUR"},
			wantErrs: []string{"FEE activity requires a fee"},
		},
		{
			name:     "dividend without amount",
			activity: Activity{Type: Dividend, Symbol: "AAPL", Currency: "USD"},
			wantErrs: []string{"DIVIDEND activity requires an amount"},
		},
		{
			name:     "split without ratio",
			activity: Activity{Type: Split, Symbol: "NVDA"},
			wantErrs: []string{"split ratio"},
		},
		{
			name:     "unknown type and currency",
			activity: Activity{Type: "GIFT", Symbol: "AAPL", Currency: "XYZ"},
			wantErrs: []string{`unknown activity type "GIFT"`, `unknown currency "XYZ"`},
		},
		{
			name:     "adjustment without quantity",
			activity: Activity{Type: Adjustment, Symbol: "AAPL", Currency: "USD"},
			wantErrs: []string{"ADJUSTMENT activity requires a quantity"},
		},
		{
			name:     "amount beyond float range",
			activity: Activity{Type: Deposit, Amount: N("1e400"), Currency: "EUR"},
			wantErrs: []string{"amount is not a valid number"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.activity)
			if len(tc.wantErrs) == 0 {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected errors %q, got none", tc.wantErrs)
			}
			for _, want := range tc.wantErrs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestValidate_QuickFixes(t *testing.T) {
	testCases := []struct {
		name         string
		activity     Activity
		wantSymbol   string
		wantCurrency string
	}{
		{
			name:         "normalized symbol and currency",
			activity:     Activity{Type: Buy, Symbol: " aapl ", Quantity: N(1), UnitPrice: N(1), Currency: "usd"},
			wantSymbol:   "AAPL",
			wantCurrency: "USD",
		},
		{
			name:         "cash symbol gives the currency",
			activity:     Activity{Type: TransferIn, Symbol: "cash:eur", Amount: N(10)},
			wantSymbol:   "CASH:EUR",
			wantCurrency: "EUR",
		},
		{
			name:         "cash activity gets a cash symbol",
			activity:     Activity{Type: Withdrawal, Amount: N(10), Currency: "CAD"},
			wantSymbol:   "$CASH-CAD",
			wantCurrency: "CAD",
		},
		{
			name:         "trades never get a cash symbol",
			activity:     Activity{Type: Buy, Currency: "CAD"},
			wantSymbol:   "",
			wantCurrency: "CAD",
		},
		{
			name:         "non ASCII letters give no currency",
			activity:     Activity{Type: Deposit, Symbol: "cash-eu\u212A", Amount: N(10)},
			wantSymbol:   "CASH-EU\u212A",
			wantCurrency: "",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.activity
			fixed, _ := Validate(tc.activity)
			if fixed.Symbol != tc.wantSymbol {
				t.Errorf("Validate() symbol = %q, want %q", fixed.Symbol, tc.wantSymbol)
			}
			if fixed.Currency != tc.wantCurrency {
				t.Errorf("Validate() currency = %q, want %q", fixed.Currency, tc.wantCurrency)
			}
			if !tc.activity.Equal(before) {
				t.Errorf("Validate() modified its argument")
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	_, err := Validate(Activity{Type: Buy, Symbol: "AAPL", Currency: "USD"})
	got := ValidationErrors(err)
	want := []string{"BUY activity requires a quantity", "BUY activity requires a unit price"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("ValidationErrors() = %q, want %q", got, want)
	}

	if got := ValidationErrors(nil); got != nil {
		t.Errorf("ValidationErrors(nil) = %q, want nil", got)
	}
}
