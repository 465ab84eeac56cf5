package tariff

import (
	"math"
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// Stevedoring charges are built from the labour masters: the datum master says
// how much one gang shifts per shift, the manning master says who is in a
// gang, and the composite master prices each labour category per shift.

// Datum returns the tons-per-crane-per-shift norm for a labour line, matching
// the mobile-crane flag. Zero when the line has no datum.
func Datum(datums []tables.LabourDatum, lineNo string, mobileCrane bool) float64 {
	for _, d := range datums {
		if strings.EqualFold(strings.TrimSpace(d.LineNo), strings.TrimSpace(lineNo)) && d.MobileCrane100T == mobileCrane {
			return d.DatumPerCrane
		}
	}
	return 0
}

// GangsRequired is the gang-shifts needed to move the parcel at the given
// datum.
func GangsRequired(weight, datum float64) int {
	if weight <= 0 || datum <= 0 {
		return 0
	}
	return int(math.Ceil(weight / datum))
}

// WorkDays is how many days the parcel takes to work at the cargo master's
// handling norm. Cargo without a norm is assumed to move a thousand tons a
// day.
func WorkDays(weight, normPerDay float64) int {
	if weight <= 0 {
		return 0
	}
	if normPerDay <= 0 {
		normPerDay = 1000
	}
	return int(math.Ceil(weight / normPerDay))
}

// Manning returns the on-board or shore headcount row for a labour line.
func Manning(rows []tables.LabourManning, lineNo string, onBoard bool) (tables.LabourManning, bool) {
	for _, m := range rows {
		if strings.EqualFold(strings.TrimSpace(m.LineNo), strings.TrimSpace(lineNo)) && m.OnBoard == onBoard {
			return m, true
		}
	}
	return tables.LabourManning{}, false
}

// CompositeCost prices one manning row against the composite rate master. For
// every labour category in the gang it multiplies the headcount by the
// per-shift rate for the cargo code and shift, then scales by the gang-shifts
// worked.
func CompositeCost(rates []tables.CompositeRate, manning tables.LabourManning, shift, cargoCode string, gangs int) float64 {
	if gangs <= 0 {
		return 0
	}
	perGang := 0.0
	for _, category := range tables.LabourCategories {
		count := manning.Headcount[category]
		if count <= 0 {
			continue
		}
		perGang += float64(count) * compositeRate(rates, category, shift, cargoCode)
	}
	return perGang * float64(gangs)
}

func compositeRate(rates []tables.CompositeRate, category, shift, cargoCode string) float64 {
	for _, r := range rates {
		if strings.EqualFold(r.Category, category) &&
			strings.EqualFold(r.Shift, shift) &&
			strings.EqualFold(r.CargoCode, cargoCode) {
			return r.Rate
		}
	}
	return 0
}

// Royalties returns the stevedoring and shore-handling royalty charges for a
// parcel, each weight times the statutory per-ton rate for the royalty cargo
// type.
func Royalties(rates []tables.Royalty, cargoType string, weight float64) (stevedoring, shore float64) {
	if weight <= 0 {
		return 0, 0
	}
	for _, r := range rates {
		if strings.EqualFold(strings.TrimSpace(r.CargoType), strings.TrimSpace(cargoType)) {
			return weight * r.StevedoringRate, weight * r.ShoreRate
		}
	}
	return 0, 0
}
