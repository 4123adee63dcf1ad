package wealth

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		input      string
		want       string
		wantFinite bool
	}{
		{"12", "12", true},
		{"  12.5  ", "12.5", true},
		{"", "0", true},
		{"   ", "0", true},
		{"-3", "-3", true},
		{"+3", "3", true},
		{".5", "0.5", true},
		{"-.5", "-0.5", true},
		{"5.", "5", true},
		{"1e3", "1000", true},
		{"1.5E-2", "0.015", true},
		{"0x10", "16", true},
		{"0b101", "5", true},
		{"0o17", "15", true},
		{"Infinity", "NaN", false},
		{"-Infinity", "NaN", false},
		{"abc", "NaN", false},
		{"1,000", "NaN", false},
		{"12abc", "NaN", false},
		{"0x", "NaN", false},
		{"0xZZ", "NaN", false},
		{"-0x10", "NaN", false},
		{"inf", "NaN", false},
		{"1e400", "NaN", false},
		{"-1e400", "NaN", false},
		{"1e1000000000", "NaN", false},
		{"0x1" + strings.Repeat("0", 256), "NaN", false},
		{"1.7976931348623157e308", "17976931348623157" + strings.Repeat("0", 292), true},
		{"1e-400", "0", true},
		{"0e999999999", "0", true},
	}
	for _, tc := range testCases {
		n := ParseNumber(tc.input)
		if !n.IsSet() {
			t.Errorf("ParseNumber(%q).IsSet() = false, want true", tc.input)
		}
		if n.IsFinite() != tc.wantFinite {
			t.Errorf("ParseNumber(%q).IsFinite() = %v, want %v", tc.input, n.IsFinite(), tc.wantFinite)
		}
		if got := n.String(); got != tc.want {
			t.Errorf("ParseNumber(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestN(t *testing.T) {
	if got := N(1.25).String(); got != "1.25" {
		t.Errorf("N(1.25) = %q, want %q", got, "1.25")
	}
	if got := N(int64(-7)).String(); got != "-7" {
		t.Errorf("N(-7) = %q, want %q", got, "-7")
	}
	if N(math.NaN()).IsFinite() {
		t.Errorf("N(NaN) should not be finite")
	}
	if N(math.Inf(-1)).IsFinite() {
		t.Errorf("N(-Inf) should not be finite")
	}
	var absent Number
	if absent.IsSet() {
		t.Errorf("zero Number should not be set")
	}
	if _, ok := absent.Decimal(); ok {
		t.Errorf("zero Number should have no decimal value")
	}
}

func TestRound(t *testing.T) {
	testCases := []struct {
		input Number
		want  string
	}{
		{N(1.23456789), "1.234568"},
		{N("1.2345674"), "1.234567"},
		{N("1.0000005"), "1.000001"},
		{N("-1.0000005"), "-1"}, // ties go toward +Inf
		{N("-1.0000006"), "-1.000001"},
		{N(2), "2"},
		{N(math.NaN()), "0"},
		{N(math.Inf(1)), "0"},
		{N("Infinity"), "0"},
		{N("1e400"), "0"},
		{N(decimal.New(1, 400)), "0"},
		{N("1e-400"), "0"},
		{Number{}, "0"},
	}
	for _, tc := range testCases {
		if got := Round(tc.input).String(); got != tc.want {
			t.Errorf("Round(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestNumber_JSON(t *testing.T) {
	testCases := []struct {
		input      string
		wantSet    bool
		wantString string
		wantJSON   string
	}{
		{`12.5`, true, "12.5", `12.5`},
		{`"12.5"`, true, "12.5", `12.5`},
		{`" 7 "`, true, "7", `7`},
		{`"abc"`, true, "NaN", `null`},
		{`null`, false, "", `null`},
		{`""`, true, "0", `0`},
	}
	for _, tc := range testCases {
		var n Number
		if err := json.Unmarshal([]byte(tc.input), &n); err != nil {
			t.Fatalf("json.Unmarshal(%s) unexpected error: %v", tc.input, err)
		}
		if n.IsSet() != tc.wantSet {
			t.Errorf("json.Unmarshal(%s).IsSet() = %v, want %v", tc.input, n.IsSet(), tc.wantSet)
		}
		if got := n.String(); got != tc.wantString {
			t.Errorf("json.Unmarshal(%s) = %q, want %q", tc.input, got, tc.wantString)
		}
		got, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("json.Marshal(%s) unexpected error: %v", tc.input, err)
		}
		if string(got) != tc.wantJSON {
			t.Errorf("json.Marshal(%s) = %s, want %s", tc.input, got, tc.wantJSON)
		}
	}
}
