package wealth

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(12, ""), "12"},
		{M(0.123456, ""), "0.123456"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if got := M(5, "USD").SignedString(); got != "+$5.00" {
		t.Errorf("SignedString() = %q, want %q", got, "+$5.00")
	}
}

func TestMoney_Add(t *testing.T) {
	got := M(1, "").Add(M(2, "EUR"))
	if want := M(3, "EUR"); !got.Equal(want) {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}

func TestKnownCurrency(t *testing.T) {
	for code, want := range map[string]bool{"EUR": true, "usd": true, "": false, "XYZ": false} {
		if got := KnownCurrency(code); got != want {
			t.Errorf("KnownCurrency(%q) = %v, want %v", code, got, want)
		}
	}
}
