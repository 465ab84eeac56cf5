package main

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{590000, "₹5,90,000.00"},
		{1234567.5, "₹12,34,567.50"},
		{999, "₹999.00"},
		{1000, "₹1,000.00"},
		{100000, "₹1,00,000.00"},
		{-2500.75, "-₹2,500.75"},
	}
	for _, c := range cases {
		if got := formatINR(c.amount); got != c.want {
			t.Errorf("formatINR(%v) = %q, want %q", c.amount, got, c.want)
		}
	}
}
