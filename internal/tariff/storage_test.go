package tariff

import (
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func TestCargoArea(t *testing.T) {
	factors := []tables.StowageFactor{
		{Cargo: "Coal", Measure: 2.5},
	}

	nearlyEqual(t, "master measure", CargoArea(factors, "Coal", 10000), 4000)
	nearlyEqual(t, "default measure", CargoArea(factors, "Steel Coils", 10000), 10000)
	nearlyEqual(t, "zero weight", CargoArea(factors, "Coal", 0), 0)
}

func TestContainerArea_Defaults(t *testing.T) {
	nearlyEqual(t, "20ft default", ContainerArea(nil, BandUpto20, 10), 148)
	nearlyEqual(t, "40ft default", ContainerArea(nil, Band20to40, 10), 297)
	nearlyEqual(t, "above 40ft default", ContainerArea(nil, BandAbove40, 10), 334)
}

func TestContainerArea_MasterOverride(t *testing.T) {
	factors := []tables.StowageFactor{
		{Cargo: "Upto20ft", Measure: 15.5},
	}
	nearlyEqual(t, "master measure wins", ContainerArea(factors, BandUpto20, 4), 62)
}

func TestImmediateStorage(t *testing.T) {
	rates := []tables.ImmediateStorageRate{
		{AreaType: "Open", StartDay: 1, EndDay: 30, RatePer15Days: 120, Area: 10},
		{AreaType: "Open", StartDay: 31, EndDay: 999, RatePer15Days: 240, Area: 10},
		{AreaType: "Covered", StartDay: 1, EndDay: 999, RatePer15Days: 300, Area: 10},
	}

	// 20 days is two 15-day periods in the first open slab.
	got := ImmediateStorage(rates, "Open", 500, 20)
	nearlyEqual(t, "open 20 days", got, 500/10.0*120*2)

	got = ImmediateStorage(rates, "Open", 500, 40)
	nearlyEqual(t, "open 40 days", got, 500/10.0*240*3)

	got = ImmediateStorage(rates, "Covered", 100, 7)
	nearlyEqual(t, "covered one period", got, 100/10.0*300*1)

	nearlyEqual(t, "unknown area type", ImmediateStorage(rates, "Transit Shed", 100, 7), 0)
}

func TestLeaseStorage(t *testing.T) {
	rates := []tables.LeaseRate{
		{Description: "Open plot", Location: "North Yard", RatePerMonth: 45, Area: 1, UoM: "per sq. m."},
		{Description: "Godown", Location: "South Yard", RatePerMonth: 90000, Area: 500, UoM: "per godown"},
	}

	perArea := LeaseStorage(rates, "North", 1000, 6)
	nearlyEqual(t, "per-area lease", perArea, 1000*45*6)

	perPlot := LeaseStorage(rates, "South", 250, 6)
	nearlyEqual(t, "per-plot lease", perPlot, 250/500.0*90000*6)
}
