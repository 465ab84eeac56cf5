// Package classify maps free-text cargo labels to the fixed categories the
// rate tables key on. The original estimator scattered near-identical keyword
// checks across every module; this is the single shared copy, with predicates
// evaluated in documented precedence order.
package classify

import "strings"

// VesselCategory is the vessel-type key used by the port dues, pilotage and
// berth hire masters.
type VesselCategory string

const (
	VesselTankers   VesselCategory = "Tankers"
	VesselContainer VesselCategory = "Container"
	VesselRoRo      VesselCategory = "RoRo"
	VesselBulk      VesselCategory = "Bulk Cargo"
	VesselOthers    VesselCategory = "Others"
)

type rule struct {
	keywords []string
	category VesselCategory
}

// Precedence order matters: "Container Oil Rig Parts" must classify as
// container before the oil keyword is considered.
var vesselRules = []rule{
	{[]string{"container"}, VesselContainer},
	{[]string{"tanker", "oil", "tank"}, VesselTankers},
	{[]string{"roro", "ro-ro"}, VesselRoRo},
	{[]string{"bulk", "ore", "iron"}, VesselBulk},
}

// Vessel maps a free-text cargo label to its vessel-type category. Unmatched
// labels fall back to Others.
func Vessel(cargo string) VesselCategory {
	low := strings.ToLower(cargo)
	for _, r := range vesselRules {
		for _, kw := range r.keywords {
			if strings.Contains(low, kw) {
				return r.category
			}
		}
	}
	return VesselOthers
}

// BerthUse is the berth capability a cargo label requires.
type BerthUse int

const (
	UseGeneral BerthUse = iota
	UseContainer
	UseLiquidBulk
	UseBulk
	UseRORO
	UsePOL
	UsePassengerCruise
	UseBunker
)

// Berth resolves the berth capability for a cargo label. Precedence:
// container, liquid bulk (explicit liquid+bulk), generic liquid/tanker/oil,
// dry bulk keywords, RORO, POL, passenger/cruise, bunker, then the
// general-cargo fallback.
func Berth(cargo string) BerthUse {
	low := strings.ToLower(cargo)
	switch {
	case strings.Contains(low, "container"):
		return UseContainer
	case strings.Contains(low, "liquid") && strings.Contains(low, "bulk"):
		return UseLiquidBulk
	case strings.Contains(low, "liquid"), strings.Contains(low, "tank"),
		strings.Contains(low, "tanker"), strings.Contains(low, "oil"):
		return UseLiquidBulk
	case strings.Contains(low, "bulk"), strings.Contains(low, "ore"),
		strings.Contains(low, "iron"), strings.Contains(low, "coal"),
		strings.Contains(low, "grain"):
		return UseBulk
	case strings.Contains(low, "roro"), strings.Contains(low, "ro-ro"):
		return UseRORO
	case strings.Contains(low, "pol"):
		return UsePOL
	case strings.Contains(low, "passenger"), strings.Contains(low, "cruise"):
		return UsePassengerCruise
	case strings.Contains(low, "bunker"):
		return UseBunker
	}
	return UseGeneral
}

// RoyaltyType auto-detects the royalty cargo type from a cargo category when
// the user has not picked one.
func RoyaltyType(category string) string {
	low := strings.ToLower(category)
	switch {
	case strings.Contains(low, "container"):
		return "Container -Laden"
	case strings.Contains(low, "dry bulk"), strings.Contains(low, "bulk"):
		return "Dry Bulk"
	case strings.Contains(low, "break bulk"):
		return "Break Bulk except Automobiles"
	case strings.Contains(low, "automobile"), strings.Contains(low, "vehicle"):
		return "Automobiles - Upto 4 wheelers"
	}
	return "Break Bulk except Automobiles"
}

// Composite cargo codes used by the labour rate master.
const (
	CargoCodeGeneral = "ALLOTHCG"
	CargoCodeAgri    = "AGPSUBGS"
)

// CompositeCargoCode picks the labour rate code for a cargo category.
// Agricultural produce and bagged sugar attract their own schedule.
func CompositeCargoCode(category string) string {
	low := strings.ToLower(category)
	if strings.Contains(low, "sugar") || strings.Contains(low, "agri") {
		return CargoCodeAgri
	}
	return CargoCodeGeneral
}

// ThroughputRate is the per-keyword handling heuristic in tons per day, used
// when the cargo master has no usable norm for a label.
func ThroughputRate(cargo string) float64 {
	low := strings.ToLower(cargo)
	rate := 1000.0
	switch {
	case strings.Contains(low, "grain"), strings.Contains(low, "food"):
		rate = 800
	case strings.Contains(low, "iron"), strings.Contains(low, "ore"):
		rate = 2500
	case strings.Contains(low, "cement"), strings.Contains(low, "clinker"):
		rate = 1200
	case strings.Contains(low, "container"):
		rate = 400
	case strings.Contains(low, "liquid"), strings.Contains(low, "oil"),
		strings.Contains(low, "diesel"), strings.Contains(low, "tank"):
		rate = 5000
	}
	return rate
}
