package tariff

import (
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// Haulage returns the flat per-rake haulage charge for a wagon category and
// load description ("Loaded Wagon" or "Empty Wagon"), times the number of
// rakes moved.
func Haulage(rates []tables.HaulageRate, category, description string, rakes int) float64 {
	if rakes <= 0 {
		return 0
	}
	for _, r := range rates {
		if strings.EqualFold(strings.TrimSpace(r.Category), strings.TrimSpace(category)) &&
			strings.EqualFold(strings.TrimSpace(r.Description), strings.TrimSpace(description)) {
			return r.Rate * float64(rakes)
		}
	}
	return 0
}

// TerminalHandling is the per-ton terminal handling charge for containerised
// or non-containerised cargo.
func TerminalHandling(rates []tables.TerminalHandlingRate, cargoType string, weight float64) float64 {
	if weight <= 0 {
		return 0
	}
	for _, r := range rates {
		if strings.EqualFold(strings.TrimSpace(r.CargoType), strings.TrimSpace(cargoType)) {
			return r.Rate * weight
		}
	}
	return 0
}

// SelectSiding picks the railway siding for a box type and required holding
// capacity. Full-capacity lines for the box type win; then partial lines for
// the box type; then any line for the box type; then the first siding in the
// master.
func SelectSiding(sidings []tables.Siding, boxType string, wagons int) (tables.Siding, bool) {
	if len(sidings) == 0 {
		return tables.Siding{}, false
	}
	byBox := make([]tables.Siding, 0, len(sidings))
	for _, s := range sidings {
		if strings.EqualFold(strings.TrimSpace(s.BoxType), strings.TrimSpace(boxType)) {
			byBox = append(byBox, s)
		}
	}
	for _, want := range []string{"Full", "Partial"} {
		for _, s := range byBox {
			if strings.EqualFold(s.YardCapType, want) && s.HoldingCapacity >= wagons {
				return s, true
			}
		}
	}
	if len(byBox) > 0 {
		return byBox[0], true
	}
	return sidings[0], true
}
