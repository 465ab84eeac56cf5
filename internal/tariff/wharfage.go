package tariff

import "github.com/mentorchrd/seaport-portal-MSQL/internal/tables"

// CargoWharfage computes the wharfage charge for a cargo identified by its
// SoR code. The rate record's cost basis controls the formula: Value treats
// the rate as a percentage of the declared cargo value, Weight and Unit
// multiply the rate into the weight directly. The boolean is false when no
// rate record exists for the SoR code.
func CargoWharfage(rates []tables.WharfageRate, sorCode string, trade TradeType, weight, cargoValue float64) (float64, bool) {
	if sorCode == "" {
		return 0, false
	}
	for _, r := range rates {
		if r.SoRCode != sorCode {
			continue
		}
		rate := r.ForeignRate
		if trade == TradeCoastal {
			rate = r.CoastalRate
		}
		if r.CostBasis == tables.BasisValue {
			return cargoValue * rate / 100, true
		}
		return weight * rate, true
	}
	return 0, false
}
