package scenario

import (
	"context"
	"log"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tariff"
)

// CargoInput describes one wharfage and demurrage estimate. Container lots
// are optional; when present they are priced off the embedded container
// schedule alongside the per-ton wharfage.
type CargoInput struct {
	CargoDescription string                `json:"cargo"`
	Trade            tariff.TradeType      `json:"tradeType"`
	Operation        string                `json:"operation"`   // Import or Export
	StorageType      string                `json:"storageType"` // Open or Covered
	Weight           float64               `json:"weight"`
	CargoValue       float64               `json:"cargoValue"`
	DaysAfterFree    int                   `json:"daysAfterFree"`
	Containers       []tariff.ContainerLot `json:"containers,omitempty"`
}

// CargoResult is the cargo-charges breakdown.
type CargoResult struct {
	Breakdown Breakdown `json:"breakdown"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// Cargo estimates wharfage and slab demurrage for a parcel. A cargo with no
// wharfage rate on file degrades to a zero component with a logged miss, per
// the general lookup policy.
func (e *Engine) Cargo(ctx context.Context, in CargoInput) (CargoResult, error) {
	if in.CargoDescription == "" {
		return CargoResult{}, badInput("cargo", "is required")
	}
	if err := validateTrade(in.Trade); err != nil {
		return CargoResult{}, err
	}
	if err := requirePositive("weight", in.Weight); err != nil {
		return CargoResult{}, err
	}

	var warnings []string
	cargo, found := e.tables.CargoByDescription(in.CargoDescription)
	if !found {
		log.Printf("scenario: cargo %q not in cargo master", in.CargoDescription)
		warnings = append(warnings, "cargo not found in the cargo master; rate lookups may come up empty")
	}

	wharfage, ok := tariff.CargoWharfage(e.tables.Wharfage, cargo.SoRCode, in.Trade, in.Weight, in.CargoValue)
	if !ok {
		log.Printf("scenario: no wharfage rate for cargo %q (sor %q)", in.CargoDescription, cargo.SoRCode)
		warnings = append(warnings, "no wharfage rate on file for this cargo")
	}

	inrPerUSD := e.fx.INRPerUSD(ctx)
	demurrage := tariff.SlabDemurrage(e.tables.DemurrageSlabs, cargo.CategoryName, in.Operation, in.Trade, in.StorageType, in.Weight, in.DaysAfterFree, inrPerUSD)
	if demurrage == 0 {
		// No slab covered the overstay; fall back to the cargo master's
		// flat per-ton-day rate.
		demurrage = tariff.CargoDemurrage(cargo.DemurrageRate, in.Weight, in.DaysAfterFree)
	}

	components := []Component{
		{Name: "Wharfage", Amount: wharfage},
		{Name: "Demurrage", Amount: demurrage},
	}
	if len(in.Containers) > 0 {
		components = append(components, Component{
			Name:   "Container Wharfage",
			Amount: tariff.ContainerWharfage(in.Containers, in.Trade, in.CargoValue),
		})
	}

	return CargoResult{Breakdown: newBreakdown(components), Warnings: warnings}, nil
}
