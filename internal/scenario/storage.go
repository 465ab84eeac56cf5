package scenario

import (
	"context"
	"strings"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tariff"
)

// Storage term selectors.
const (
	StorageImmediate = "immediate"
	StorageLease     = "lease"
)

// StorageInput describes one yard-storage estimate. Either a cargo weight or
// container lots determine the footprint; the term picks the tariff.
type StorageInput struct {
	CargoDescription string                `json:"cargo"`
	Weight           float64               `json:"weight"`
	Containers       []tariff.ContainerLot `json:"containers,omitempty"`
	AreaType         string                `json:"areaType"` // Open or Covered
	Term             string                `json:"term"`     // immediate or lease
	Days             int                   `json:"days"`     // immediate term
	Months           int                   `json:"months"`   // lease term
	Location         string                `json:"location"` // lease term
}

// StorageResult is the storage-charges breakdown plus the computed footprint.
type StorageResult struct {
	Breakdown Breakdown `json:"breakdown"`
	Area      float64   `json:"areaSqM"`
}

// Storage estimates immediate (15-day block) or leased (monthly) yard storage
// for a parcel or a set of container lots.
func (e *Engine) Storage(ctx context.Context, in StorageInput) (StorageResult, error) {
	if in.Weight <= 0 && len(in.Containers) == 0 {
		return StorageResult{}, badInput("weight", "or containers are required")
	}

	area := 0.0
	if in.Weight > 0 {
		area += tariff.CargoArea(e.tables.StowageFactors, in.CargoDescription, in.Weight)
	}
	for _, lot := range in.Containers {
		area += tariff.ContainerArea(e.tables.StowageFactors, lot.Band, lot.Quantity)
	}

	var components []Component
	switch strings.ToLower(strings.TrimSpace(in.Term)) {
	case StorageLease:
		if in.Months <= 0 {
			return StorageResult{}, badInput("months", "must be positive for a lease")
		}
		components = []Component{{
			Name:   "Licence Fee",
			Amount: tariff.LeaseStorage(e.tables.LeaseRates, in.Location, area, in.Months),
		}}
	case StorageImmediate, "":
		if in.Days <= 0 {
			return StorageResult{}, badInput("days", "must be positive for immediate storage")
		}
		areaType := in.AreaType
		if areaType == "" {
			areaType = "Open"
		}
		components = []Component{{
			Name:   "Immediate Storage",
			Amount: tariff.ImmediateStorage(e.tables.ImmediateRates, areaType, area, in.Days),
		}}
	default:
		return StorageResult{}, badInput("term", `must be "immediate" or "lease"`)
	}

	return StorageResult{Breakdown: newBreakdown(components), Area: area}, nil
}
