package scenario

import (
	"context"
	"log"
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tariff"
)

// HaulageLot is one haulage category within a rake, for consignments that
// span container size bands.
type HaulageLot struct {
	Category string `json:"category"`
	Loaded   bool   `json:"loaded"`
	Units    int    `json:"units"`
}

// RailInput describes one rake movement through the port's rail sidings.
// Lots, when present, replace the single Category/Loaded/Rakes triple.
type RailInput struct {
	BoxType    string       `json:"boxType"`   // wagon box type, e.g. BOXN
	WagonType  string       `json:"wagonType"` // wagon master key for free hours
	Wagons     int          `json:"wagons"`
	Rakes      int          `json:"rakes"`
	Category   string       `json:"category"` // 20ft_Container, 40ft_Container, non_Container, ...
	Loaded     bool         `json:"loaded"`
	Lots       []HaulageLot `json:"lots,omitempty"`
	CargoType  string       `json:"cargoType"` // containerised or non_containerised
	Weight     float64      `json:"weight"`
	TotalHours float64      `json:"totalHours"` // hours the rake was held
}

// RailResult is the rail-charges breakdown plus the selected siding.
type RailResult struct {
	Breakdown   Breakdown     `json:"breakdown"`
	Siding      tables.Siding `json:"siding"`
	SidingFound bool          `json:"sidingFound"`
	FreeHours   float64       `json:"freeHours"`
}

// Rail estimates haulage, terminal handling and rail demurrage for a rake and
// picks the siding that can hold it.
func (e *Engine) Rail(ctx context.Context, in RailInput) (RailResult, error) {
	if in.Category == "" && len(in.Lots) == 0 {
		return RailResult{}, badInput("category", "is required")
	}
	if in.Wagons <= 0 {
		return RailResult{}, badInput("wagons", "must be positive")
	}
	if in.Rakes <= 0 {
		in.Rakes = 1
	}

	freeHours := wagonFreeHours(e.tables.Wagons, in.WagonType)

	description := "Empty Wagon"
	if in.Loaded {
		description = "Loaded Wagon"
	}

	cargoType := in.CargoType
	if cargoType == "" {
		cargoType = "non_containerised"
		if strings.Contains(strings.ToLower(in.Category), "container") {
			cargoType = "containerised"
		}
	}

	haulage := tariff.Haulage(e.tables.Haulage, in.Category, description, in.Rakes)
	if len(in.Lots) > 0 {
		haulage = 0
		for _, lot := range in.Lots {
			lotDescription := "Empty Wagon"
			if lot.Loaded {
				lotDescription = "Loaded Wagon"
			}
			haulage += tariff.Haulage(e.tables.Haulage, lot.Category, lotDescription, lot.Units)
		}
	}

	components := []Component{
		{Name: "Haulage", Amount: haulage},
		{Name: "Terminal Handling", Amount: tariff.TerminalHandling(e.tables.Terminal, cargoType, in.Weight)},
		{Name: "Rail Demurrage", Amount: tariff.RailDemurrage(e.tables.RailDemurrage, in.TotalHours, freeHours, in.Wagons)},
	}

	siding, ok := tariff.SelectSiding(e.tables.Sidings, in.BoxType, in.Wagons)
	if !ok {
		log.Printf("scenario: no siding on file for box type %q", in.BoxType)
	}

	return RailResult{
		Breakdown:   newBreakdown(components),
		Siding:      siding,
		SidingFound: ok,
		FreeHours:   freeHours,
	}, nil
}

// wagonFreeHours reads the free-time allowance from the wagon master,
// defaulting to the standard eight hours for unknown wagon types.
func wagonFreeHours(wagons []tables.Wagon, wagonType string) float64 {
	for _, w := range wagons {
		if strings.EqualFold(strings.TrimSpace(w.Type), strings.TrimSpace(wagonType)) {
			return w.FreeHours
		}
	}
	return 8
}
