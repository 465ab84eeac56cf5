package tariff

import (
	"math"
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// Yard footprint defaults per container size band, sq.m per box, used when the
// stowage master has no measure for the band.
const (
	areaUpto20  = 14.8
	area20to40  = 29.7
	areaAbove40 = 33.4
)

// CargoArea is the yard footprint in sq.m a bulk or break-bulk parcel needs.
// The stowage master's Measure column is tons per sq.m; without a usable row
// the parcel is assumed to stack one ton per square metre.
func CargoArea(factors []tables.StowageFactor, cargo string, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	measure := 1.0
	if f, ok := findStowage(factors, cargo); ok && f.Measure > 0 {
		measure = f.Measure
	}
	return weight / measure
}

// ContainerArea is the yard footprint for a count of boxes in one size band.
// Here Measure is sq.m per box.
func ContainerArea(factors []tables.StowageFactor, band SizeBand, qty int) float64 {
	if qty <= 0 {
		return 0
	}
	measure := 0.0
	if f, ok := findStowage(factors, string(band)); ok && f.Measure > 0 {
		measure = f.Measure
	}
	if measure == 0 {
		switch band {
		case BandUpto20:
			measure = areaUpto20
		case Band20to40:
			measure = area20to40
		default:
			measure = areaAbove40
		}
	}
	return float64(qty) * measure
}

func findStowage(factors []tables.StowageFactor, cargo string) (tables.StowageFactor, bool) {
	low := strings.ToLower(strings.TrimSpace(cargo))
	if low == "" {
		return tables.StowageFactor{}, false
	}
	for _, f := range factors {
		name := strings.ToLower(f.Cargo)
		if name == low || strings.Contains(name, low) || strings.Contains(low, name) {
			return f, true
		}
	}
	return tables.StowageFactor{}, false
}

// ImmediateStorage charges short-term yard storage in 15-day blocks. The rate
// row is picked by area type and the day range containing the stay; the quoted
// rate covers a fixed block of area, so cost scales by area over that block.
func ImmediateStorage(rates []tables.ImmediateStorageRate, areaType string, area float64, days int) float64 {
	if area <= 0 || days <= 0 {
		return 0
	}
	for _, r := range rates {
		if !strings.EqualFold(strings.TrimSpace(r.AreaType), strings.TrimSpace(areaType)) {
			continue
		}
		if days < r.StartDay || days > r.EndDay {
			continue
		}
		periods := math.Ceil(float64(days) / 15)
		return area / r.Area * r.RatePer15Days * periods
	}
	return 0
}

// LeaseStorage charges long-term licensed storage by the month. Rates quoted
// per unit of area scale linearly; rates quoted for a whole plot scale by the
// share of the plot occupied.
func LeaseStorage(rates []tables.LeaseRate, location string, area float64, months int) float64 {
	if area <= 0 || months <= 0 {
		return 0
	}
	for _, r := range rates {
		if !leaseMatch(r, location) {
			continue
		}
		if r.PerArea() {
			return area * r.RatePerMonth * float64(months)
		}
		return area / r.Area * r.RatePerMonth * float64(months)
	}
	return 0
}

func leaseMatch(r tables.LeaseRate, location string) bool {
	low := strings.ToLower(strings.TrimSpace(location))
	if low == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Location), low) ||
		strings.Contains(strings.ToLower(r.Description), low)
}
