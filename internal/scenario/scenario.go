// Package scenario runs the per-module cost estimates. Each estimator
// validates its inputs, runs only the lookups its module needs and returns a
// named-component breakdown with tax applied uniformly.
package scenario

import (
	"errors"
	"fmt"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/currency"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// ErrBadInput marks validation failures so handlers can answer 400 instead
// of 500. Wrap it with the field detail.
var ErrBadInput = errors.New("invalid input")

// All tariff components carry the same tax rate.
const taxRate = 0.18

// Component is one named charge inside a breakdown.
type Component struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Breakdown is the priced output of one estimate.
type Breakdown struct {
	Components []Component `json:"components"`
	Subtotal   float64     `json:"subtotal"`
	Taxes      float64     `json:"taxes"`
	Total      float64     `json:"total"`
}

func newBreakdown(components []Component) Breakdown {
	subtotal := 0.0
	for _, c := range components {
		subtotal += c.Amount
	}
	taxes := subtotal * taxRate
	return Breakdown{
		Components: components,
		Subtotal:   subtotal,
		Taxes:      taxes,
		Total:      subtotal + taxes,
	}
}

// Engine holds the loaded rate tables and the currency resolver shared by
// every estimator.
type Engine struct {
	tables *tables.Set
	fx     *currency.Resolver
}

func New(set *tables.Set, fx *currency.Resolver) *Engine {
	return &Engine{tables: set, fx: fx}
}

func badInput(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrBadInput, field, reason)
}

func requirePositive(field string, v float64) error {
	if v <= 0 {
		return badInput(field, "must be positive")
	}
	return nil
}
