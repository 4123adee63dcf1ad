package wealth

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestEncodeActivity(t *testing.T) {
	a := Activity{
		ID:        "a1",
		Type:      Buy,
		Date:      time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		Symbol:    "AAPL",
		Quantity:  N(10),
		UnitPrice: N("15.5"),
		Fee:       N(0),
		Currency:  "USD",
	}
	var b bytes.Buffer
	if err := EncodeActivity(&b, a); err != nil {
		t.Fatalf("EncodeActivity() unexpected error: %v", err)
	}
	want := `{"id":"a1","activityType":"BUY","activityDate":"2025-03-03","assetSymbol":"AAPL","quantity":10,"unitPrice":15.5,"fee":0,"currency":"USD"}` + "\n"
	if got := b.String(); got != want {
		t.Errorf("EncodeActivity() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeActivity_Timestamp(t *testing.T) {
	a := Activity{Type: Deposit, Date: time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)}
	var b bytes.Buffer
	if err := EncodeActivity(&b, a); err != nil {
		t.Fatalf("EncodeActivity() unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), `"activityDate":"2025-03-03T14:30:00Z"`) {
		t.Errorf("EncodeActivity() = %s, want an RFC 3339 date", b.String())
	}
}

func TestDecodeActivities(t *testing.T) {
	input := `{"activityType":"DEPOSIT","activityDate":"2025-01-10","amount":"1000","currency":"EUR"}

{"activityType":"BUY","activityDate":"2025-01-11T09:00:00Z","assetSymbol":"AAPL","quantity":10,"unitPrice":"15","fee":null}
`
	activities, err := DecodeActivities(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeActivities() unexpected error: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("DecodeActivities() returned %d activities, want 2", len(activities))
	}

	deposit := activities[0]
	if deposit.Type != Deposit || deposit.Amount.String() != "1000" || deposit.Currency != "EUR" {
		t.Errorf("unexpected deposit %+v", deposit)
	}
	if want := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC); !deposit.Date.Equal(want) {
		t.Errorf("deposit date = %v, want %v", deposit.Date, want)
	}
	if deposit.Quantity.IsSet() {
		t.Errorf("deposit quantity should not be set")
	}

	buy := activities[1]
	if buy.Fee.IsSet() {
		t.Errorf("null fee should not be set")
	}
	if got := ActivityValue(buy).String(); got != "150" {
		t.Errorf("ActivityValue(buy) = %s, want 150", got)
	}
}

func TestDecodeActivities_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"not json", "{not json}\n"},
		{"bad date", `{"activityType":"BUY","activityDate":"03/03/2025"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeActivities(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeActivities(%q) expected an error", tc.input)
			}
		})
	}
}

func TestActivities_RoundTrip(t *testing.T) {
	activities := []Activity{
		{ID: "1", AccountID: "acc", Type: Deposit, Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Amount: N("100.25"), Fee: N(0), Currency: "EUR", Comment: "salary"},
		{ID: "2", Type: Sell, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Symbol: "MSFT", Quantity: N("0.5"), UnitPrice: N(400), Currency: "USD"},
		{ID: "3", Type: Split, Symbol: "NVDA", Amount: N(10)},
	}
	var b bytes.Buffer
	if err := EncodeActivities(&b, activities); err != nil {
		t.Fatalf("EncodeActivities() unexpected error: %v", err)
	}
	decoded, err := DecodeActivities(&b)
	if err != nil {
		t.Fatalf("DecodeActivities() unexpected error: %v", err)
	}
	if len(decoded) != len(activities) {
		t.Fatalf("decoded %d activities, want %d", len(decoded), len(activities))
	}
	for i := range activities {
		if !decoded[i].Equal(activities[i]) {
			t.Errorf("activity %d: got %+v, want %+v", i, decoded[i], activities[i])
		}
	}
}

func TestSortActivities(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	activities := []Activity{
		{ID: "c", Date: day(3)},
		{ID: "a1", Date: day(1)},
		{ID: "b", Date: day(2)},
		{ID: "a2", Date: day(1)},
	}
	sorted := SortActivities(activities)
	var got []string
	for _, a := range sorted {
		got = append(got, a.ID)
	}
	if want := "a1,a2,b,c"; strings.Join(got, ",") != want {
		t.Errorf("SortActivities() = %v, want %s", got, want)
	}
	if activities[0].ID != "c" {
		t.Errorf("SortActivities() modified its argument")
	}
}
