package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsSilverMarker(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"silver", true},
		{"Silver 925", true},
		{"gümüş", true},
		{"GUMUS", true},
		{"0.916", false},
		{"", false},
		{"  ", false},
		{"gold", false},
	}
	for _, tc := range cases {
		if got := IsSilverMarker(tc.value); got != tc.want {
			t.Errorf("IsSilverMarker(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestParseDecimalGarbageIsZero(t *testing.T) {
	for _, value := range []string{"", "  ", "abc", "12abc", "--5"} {
		if got := ParseDecimal(value); !got.IsZero() {
			t.Errorf("ParseDecimal(%q) = %s, want 0", value, got)
		}
	}
}

func TestParseDecimalTurkishComma(t *testing.T) {
	got, ok := ParseDecimalOK("12,5")
	if !ok {
		t.Fatal("expected 12,5 to parse")
	}
	if !got.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("got %s, want 12.5", got)
	}
}

func TestFormatting(t *testing.T) {
	w := decimal.RequireFromString("1.2345")
	if got := FormatWeight(w); got != "1.234" {
		t.Errorf("FormatWeight = %q, want 1.234", got)
	}
	if got := FormatAmount(w); got != "1.23" {
		t.Errorf("FormatAmount = %q, want 1.23", got)
	}
}

func TestDeriveFineWeight(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		marker string
		want   string
		ok     bool
	}{
		{"gold purity", "10", "0.916", "9.16", true},
		{"silver is raw weight", "10", "silver", "10", true},
		{"turkish silver", "7.5", "Gümüş", "7.5", true},
		{"zero raw is undefined", "0", "0.916", "", false},
		{"empty raw is undefined", "", "0.916", "", false},
		{"garbage raw is undefined", "abc", "0.916", "", false},
		{"garbage marker is undefined", "10", "22k", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DeriveFineWeight(tc.raw, tc.marker)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
