package scenario

import (
	"context"
	"log"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/classify"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tariff"
)

// StevedoreInput describes one shore-labour estimate.
type StevedoreInput struct {
	CargoDescription string  `json:"cargo"`
	LineNo           string  `json:"lineNo"` // labour master line
	MobileCrane      bool    `json:"mobileCrane"`
	Shift            string  `json:"shift"` // Full or Half
	Weight           float64 `json:"weight"`
	RoyaltyType      string  `json:"royaltyType,omitempty"` // auto-detected when blank
}

// StevedoreResult is the labour-charges breakdown plus gang logistics.
type StevedoreResult struct {
	Breakdown Breakdown `json:"breakdown"`
	Gangs     int       `json:"gangs"`
	WorkDays  int       `json:"workDays"`
	Datum     float64   `json:"datum"`
}

// Stevedore estimates composite labour cost and statutory royalties for
// working a parcel.
func (e *Engine) Stevedore(ctx context.Context, in StevedoreInput) (StevedoreResult, error) {
	if in.CargoDescription == "" {
		return StevedoreResult{}, badInput("cargo", "is required")
	}
	if in.LineNo == "" {
		return StevedoreResult{}, badInput("lineNo", "is required")
	}
	if err := requirePositive("weight", in.Weight); err != nil {
		return StevedoreResult{}, err
	}
	shift := in.Shift
	if shift == "" {
		shift = "Full"
	}

	cargo, _ := e.tables.CargoByDescription(in.CargoDescription)

	datum := tariff.Datum(e.tables.Datums, in.LineNo, in.MobileCrane)
	gangs := tariff.GangsRequired(in.Weight, datum)
	if gangs == 0 {
		log.Printf("scenario: no datum for labour line %q (mobile crane %v)", in.LineNo, in.MobileCrane)
	}
	workDays := tariff.WorkDays(in.Weight, cargo.Throughput())

	composite := 0.0
	if manning, ok := tariff.Manning(e.tables.Manning, in.LineNo, true); ok {
		code := classify.CompositeCargoCode(cargo.CategoryName)
		composite = tariff.CompositeCost(e.tables.CompositeRates, manning, shift, code, gangs)
	} else {
		log.Printf("scenario: no on-board manning for labour line %q", in.LineNo)
	}

	royaltyType := in.RoyaltyType
	if royaltyType == "" {
		royaltyType = classify.RoyaltyType(cargo.CategoryName)
	}
	stevedoring, shore := tariff.Royalties(e.tables.Royalties, royaltyType, in.Weight)

	components := []Component{
		{Name: "Composite Labour", Amount: composite},
		{Name: "Stevedoring Royalty", Amount: stevedoring},
		{Name: "Shore Handling Royalty", Amount: shore},
	}

	return StevedoreResult{
		Breakdown: newBreakdown(components),
		Gangs:     gangs,
		WorkDays:  workDays,
		Datum:     datum,
	}, nil
}
