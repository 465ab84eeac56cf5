package tariff

import (
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// filterMatch applies one slab filter column. Empty filters and the literal
// wildcards "both"/"any" match everything; otherwise the comparison is a
// case-insensitive substring test so "Coal" matches a "Coal & Coke" category.
func filterMatch(filter, value string) bool {
	f := strings.TrimSpace(strings.ToLower(filter))
	if f == "" || f == "both" || f == "any" {
		return true
	}
	v := strings.ToLower(value)
	return strings.Contains(v, f) || strings.Contains(f, v)
}

// SlabDemurrage walks the demurrage ladder for the days a cargo overstays its
// free period. The chargeable span runs from day zero of the overstay through
// daysAfterFree inclusive; each matching slab charges quantity * rate for the
// days where its own StartDay..EndDay range overlaps that span, so days no
// slab covers charge nothing. Slabs quoted in USD are converted with
// inrPerUSD before multiplying.
//
// A non-positive overstay or quantity charges nothing and skips the ladder
// entirely.
func SlabDemurrage(slabs []tables.DemurrageSlab, cargoCategory, operation string, trade TradeType, storageType string, qty float64, daysAfterFree int, inrPerUSD float64) float64 {
	if daysAfterFree <= 0 || qty <= 0 {
		return 0
	}

	total := 0.0
	for _, s := range slabs {
		if !filterMatch(s.CargoFilter, cargoCategory) {
			continue
		}
		if !filterMatch(s.OperationFilter, operation) {
			continue
		}
		if !filterMatch(s.TradeFilter, string(trade)) {
			continue
		}
		if !filterMatch(s.StorageFilter, storageType) {
			continue
		}
		lo := s.StartDay
		if lo < 0 {
			lo = 0
		}
		hi := s.EndDay
		if hi > daysAfterFree {
			hi = daysAfterFree
		}
		if hi < lo {
			continue
		}
		rate := s.Rate
		if s.Currency == tables.CurrencyUSD {
			rate *= inrPerUSD
		}
		total += qty * rate * float64(hi-lo+1)
	}
	return total
}

// RailDemurrage charges wagons held beyond their free hours. The whole excess
// falls into the single slab containing it; the slab rate is flat per wagon.
func RailDemurrage(slabs []tables.RailDemurrageSlab, totalHours, freeHours float64, wagons int) float64 {
	excess := totalHours - freeHours
	if excess <= 0 || wagons <= 0 {
		return 0
	}
	for _, s := range slabs {
		if excess >= s.StartHours && excess <= s.EndHours {
			return s.Rate * float64(wagons)
		}
	}
	return 0
}

// CargoDemurrage is the simple per-ton-per-day charge from the cargo master,
// used when no slab ladder applies.
func CargoDemurrage(ratePerTonDay, weight float64, daysAfterFree int) float64 {
	if daysAfterFree <= 0 || weight <= 0 || ratePerTonDay <= 0 {
		return 0
	}
	return weight * ratePerTonDay * float64(daysAfterFree)
}
