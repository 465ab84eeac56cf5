// Package currency resolves the INR-per-USD rate used to convert
// USD-denominated tariffs. The rate is resolved once per process and cached;
// resolution tries the external source, then the currency lookup table, then
// a constant fallback.
package currency

import (
	"context"
	"log"
	"sync"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// DefaultINRPerUSD is the final fallback when neither the external source nor
// the lookup table yields a usable rate.
const DefaultINRPerUSD = 82.5

// Source is an external exchange-rate feed. It is consulted at most once per
// process; failures are swallowed and the next fallback tier takes over.
type Source interface {
	INRPerUSD(ctx context.Context) (float64, error)
}

// Resolver memoizes a single INR-per-USD value for the session. Concurrent
// first-time callers block on one resolution and all observe the same value.
type Resolver struct {
	source Source
	table  []tables.ExchangeRate

	mu       sync.Mutex
	resolved bool
	rate     float64
}

// NewResolver builds a resolver over an optional external source and the
// currency lookup table (which may be empty).
func NewResolver(source Source, table []tables.ExchangeRate) *Resolver {
	return &Resolver{source: source, table: table}
}

// INRPerUSD returns the session's exchange rate, resolving it on first use.
func (r *Resolver) INRPerUSD(ctx context.Context) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.resolved {
		r.rate = r.resolve(ctx)
		r.resolved = true
	}
	return r.rate
}

// Reset clears the cached rate so the next call resolves again. Intended for
// tests.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved = false
	r.rate = 0
}

func (r *Resolver) resolve(ctx context.Context) float64 {
	if r.source != nil {
		rate, err := r.source.INRPerUSD(ctx)
		if err == nil && rate > 0 {
			return rate
		}
		if err != nil {
			log.Printf("currency: external source failed, falling back to lookup table: %v", err)
		}
	}

	if rate, ok := FromTable(r.table); ok {
		return rate
	}

	log.Printf("currency: using fallback rate %.2f", DefaultINRPerUSD)
	return DefaultINRPerUSD
}

// FromTable extracts an INR-per-USD rate from the currency lookup table.
// The most recently listed record is authoritative. The stored number is
// disambiguated heuristically: a value above 1 is already INR per USD, a
// positive value at or below 1 is USD per INR and gets inverted.
func FromTable(table []tables.ExchangeRate) (float64, bool) {
	for i := len(table) - 1; i >= 0; i-- {
		fx := table[i]
		if fx.USD > 1 {
			return fx.USD, true
		}
		if fx.USD > 0 {
			return 1 / fx.USD, true
		}
		if fx.INR > 1 {
			return fx.INR, true
		}
	}
	return 0, false
}
