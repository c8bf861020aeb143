package utils

import (
	"testing"
	"time"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"R$1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"R$ 12,90", 12.9},
		{"R$ 5", 5},
		{"12.90", 12.9},
		{"1.234.567,89", 1234567.89},
		{"2.500", 2500},
		{"por apenas R$ 9,99 cada", 9.99},
	}
	for _, c := range cases {
		if got := ParsePrice(c.in); got != c.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParsePrice_Unparsable(t *testing.T) {
	for _, in := range []string{"", "grátis", "R$", "confira no encarte"} {
		if got := ParsePrice(in); got != 0 {
			t.Errorf("ParsePrice(%q) = %v, want 0", in, got)
		}
	}
}

func TestParseBRDate(t *testing.T) {
	d, err := ParseBRDate("15/01/2025")
	if err != nil {
		t.Fatalf("ParseBRDate: %v", err)
	}
	if got := ISODate(d); got != "2025-01-15" {
		t.Errorf("got %s, want 2025-01-15", got)
	}
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Errorf("expected midnight UTC, got %s", d)
	}

	if _, err := ParseBRDate("2025-01-15"); err == nil {
		t.Error("expected error for ISO input")
	}
	if _, err := ParseBRDate("32/13/2025"); err == nil {
		t.Error("expected error for out-of-range date")
	}
}
