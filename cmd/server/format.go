package main

import (
	"fmt"
	"strings"
)

// formatINR renders an amount with Indian-system digit grouping, e.g.
// 1234567.5 becomes "₹12,34,567.50".
func formatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(whole, ".")

	grouped := intPart
	if len(intPart) > 3 {
		last3 := intPart[len(intPart)-3:]
		rest := intPart[:len(intPart)-3]
		var parts []string
		for len(rest) > 2 {
			parts = append([]string{rest[len(rest)-2:]}, parts...)
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			parts = append([]string{rest}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + last3
	}

	out := "₹" + grouped + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
