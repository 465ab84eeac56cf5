package tariff

import (
	"math"
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/classify"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// Marine charges share one shape: a per-GT rate keyed on vessel category and
// trade type. Foreign rates are quoted in USD and get converted; coastal rates
// are already INR.

// PortDues is GT times the per-GT rate for the vessel category.
func PortDues(rates []tables.PortDuesRate, category classify.VesselCategory, trade TradeType, gt, inrPerUSD float64) float64 {
	for _, r := range rates {
		if !vesselTypeMatch(r.VesselType, category) {
			continue
		}
		if trade == TradeForeign {
			return gt * r.ForeignRate * inrPerUSD
		}
		return gt * r.CoastalRate
	}
	return 0
}

// Pilotage picks the rate row whose GT band contains the vessel and whose
// category matches the trade, then reads the column for the vessel type.
func Pilotage(rates []tables.PilotageRate, category classify.VesselCategory, trade TradeType, gt, inrPerUSD float64) float64 {
	for _, r := range rates {
		if !r.Contains(gt) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(r.Category), string(trade)) {
			continue
		}
		rate := pilotageColumn(r, category)
		if trade == TradeForeign {
			return gt * rate * inrPerUSD
		}
		return gt * rate
	}
	return 0
}

func pilotageColumn(r tables.PilotageRate, category classify.VesselCategory) float64 {
	switch category {
	case classify.VesselTankers:
		return r.Tankers
	case classify.VesselContainer:
		return r.Container
	case classify.VesselRoRo:
		return r.RoRo
	case classify.VesselBulk:
		return r.Bulk
	default:
		return r.Other
	}
}

// BerthHire is GT times the hourly rate times the hours alongside.
func BerthHire(rates []tables.BerthHireRate, category classify.VesselCategory, trade TradeType, gt, hours, inrPerUSD float64) float64 {
	for _, r := range rates {
		if !vesselTypeMatch(r.VesselType, category) {
			continue
		}
		if trade == TradeForeign {
			return gt * r.ForeignRate * hours * inrPerUSD
		}
		return gt * r.CoastalRate * hours
	}
	return 0
}

// vesselTypeMatch compares a master's vessel-type label against the computed
// category, tolerating partial labels like "Tanker" or "Bulk".
func vesselTypeMatch(label string, category classify.VesselCategory) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	c := strings.ToLower(string(category))
	if l == "" {
		return false
	}
	return l == c || strings.Contains(c, l) || strings.Contains(l, c)
}

// StayHours estimates how long a vessel stays alongside to work its cargo.
// The handling norm comes from the cargo master when it has one, otherwise
// from the category heuristic. Stays shorter than a tenth of a day are
// rounded up to it before converting to whole hours.
func StayHours(qty, normPerDay float64, cargoDescription string) float64 {
	rate := normPerDay
	if rate <= 0 {
		rate = classify.ThroughputRate(cargoDescription)
	}
	days := qty / rate
	if days < 0.1 {
		days = 0.1
	}
	return math.Round(days * 24)
}
