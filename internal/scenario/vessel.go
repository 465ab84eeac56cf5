package scenario

import (
	"context"
	"fmt"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/berth"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/classify"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tariff"
)

// VesselInput describes one call estimate: the vessel's particulars, the
// cargo it works and the trade it sails.
type VesselInput struct {
	CargoDescription string           `json:"cargo"`
	Trade            tariff.TradeType `json:"tradeType"`
	GT               float64          `json:"grt"`
	LOA              float64          `json:"loa"`
	Draft            float64          `json:"draft"`
	Beam             float64          `json:"beam"`
	Quantity         float64          `json:"quantity"`
}

// VesselResult is the marine-charges breakdown plus berthing logistics.
type VesselResult struct {
	Breakdown Breakdown               `json:"breakdown"`
	Category  classify.VesselCategory `json:"vesselCategory"`
	StayHours float64                 `json:"stayHours"`
	Berths    []berth.DockGroup       `json:"berths"`
	Warnings  []string                `json:"warnings,omitempty"`
}

// Vessel estimates port dues, pilotage and berth hire for one call, lists the
// berths the vessel fits and flags implausible particulars as warnings rather
// than errors.
func (e *Engine) Vessel(ctx context.Context, in VesselInput) (VesselResult, error) {
	if in.CargoDescription == "" {
		return VesselResult{}, badInput("cargo", "is required")
	}
	if err := validateTrade(in.Trade); err != nil {
		return VesselResult{}, err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"grt", in.GT}, {"loa", in.LOA}, {"draft", in.Draft}, {"beam", in.Beam}, {"quantity", in.Quantity}} {
		if err := requirePositive(f.name, f.value); err != nil {
			return VesselResult{}, err
		}
	}

	var warnings []string
	if in.Quantity > in.GT {
		warnings = append(warnings, fmt.Sprintf("cargo quantity %.0f exceeds gross tonnage %.0f", in.Quantity, in.GT))
	}
	if in.Draft > 0.4*in.LOA {
		warnings = append(warnings, fmt.Sprintf("draft %.1f is over 40%% of LOA %.1f", in.Draft, in.LOA))
	}
	if in.Beam > 0.6*in.LOA {
		warnings = append(warnings, fmt.Sprintf("beam %.1f is over 60%% of LOA %.1f", in.Beam, in.LOA))
	}

	category := classify.Vessel(in.CargoDescription)
	inrPerUSD := e.fx.INRPerUSD(ctx)

	norm := 0.0
	if cargo, ok := e.tables.CargoByDescription(in.CargoDescription); ok {
		norm = cargo.Throughput()
	}
	stayHours := tariff.StayHours(in.Quantity, norm, in.CargoDescription)

	components := []Component{
		{Name: "Port Dues", Amount: tariff.PortDues(e.tables.PortDues, category, in.Trade, in.GT, inrPerUSD)},
		{Name: "Pilotage", Amount: tariff.Pilotage(e.tables.Pilotage, category, in.Trade, in.GT, inrPerUSD)},
		{Name: "Berth Hire", Amount: tariff.BerthHire(e.tables.BerthHire, category, in.Trade, in.GT, stayHours, inrPerUSD)},
	}

	dims := berth.Dimensions{LOA: in.LOA, Draft: in.Draft, Beam: in.Beam}
	return VesselResult{
		Breakdown: newBreakdown(components),
		Category:  category,
		StayHours: stayHours,
		Berths:    berth.Eligible(dims, in.CargoDescription, e.tables.Berths),
		Warnings:  warnings,
	}, nil
}

func validateTrade(trade tariff.TradeType) error {
	switch trade {
	case tariff.TradeCoastal, tariff.TradeForeign:
		return nil
	}
	return badInput("tradeType", `must be "Coastal" or "Foreign"`)
}
