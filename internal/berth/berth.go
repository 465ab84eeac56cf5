// Package berth selects candidate berths for a vessel and cargo combination.
package berth

import (
	"github.com/mentorchrd/seaport-portal-MSQL/internal/classify"
	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

// Dimensions are the three vessel measurements gating eligibility.
type Dimensions struct {
	LOA   float64
	Draft float64
	Beam  float64
}

// DockGroup lists the eligible berths of one dock, in table order, capped at
// five entries.
type DockGroup struct {
	Dock   string
	Berths []string
}

const maxBerthsPerDock = 5

// Eligible filters the berth master for berths that can take the vessel and
// its cargo. A berth qualifies when its quay length covers the LOA, its draft
// covers the vessel draft, the vessel beam does not exceed the berth beam
// ceiling, and its capability flags match the cargo label. Results are
// grouped by dock name; dock order and berth order follow the master table.
func Eligible(v Dimensions, cargo string, master []tables.Berth) []DockGroup {
	groups := make([]DockGroup, 0)
	index := make(map[string]int)

	for _, b := range master {
		if b.QuayLen < v.LOA || b.Draft < v.Draft || v.Beam > b.Beam {
			continue
		}
		if !capabilityMatch(b, cargo) {
			continue
		}

		dock := b.DockName
		if dock == "" {
			dock = "Unknown Dock"
		}
		i, ok := index[dock]
		if !ok {
			index[dock] = len(groups)
			groups = append(groups, DockGroup{Dock: dock})
			i = index[dock]
		}
		if len(groups[i].Berths) < maxBerthsPerDock {
			groups[i].Berths = append(groups[i].Berths, b.Name)
		}
	}

	return groups
}

func capabilityMatch(b tables.Berth, cargo string) bool {
	if cargo == "" {
		return b.Bulk
	}
	switch classify.Berth(cargo) {
	case classify.UseContainer:
		return b.Container
	case classify.UseLiquidBulk:
		return b.LiquidBulk
	case classify.UseBulk:
		return b.Bulk
	case classify.UseRORO:
		return b.RORO
	case classify.UsePOL:
		return b.POL
	case classify.UsePassengerCruise:
		return b.PassengerCruise
	case classify.UseBunker:
		return b.Bunker
	}
	// General cargo: berths dedicated to a specialized trade are excluded;
	// what remains must still carry the Bulk flag.
	specialized := b.Container || b.LiquidBulk || b.RORO || b.POL || b.PassengerCruise || b.Bunker
	return !specialized && b.Bulk
}
