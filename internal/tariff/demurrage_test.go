package tariff

import (
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func coalSlabs() []tables.DemurrageSlab {
	return []tables.DemurrageSlab{
		{CargoFilter: "both", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 0, EndDay: 2, Rate: 10, Currency: tables.CurrencyINR},
		{CargoFilter: "both", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 3, EndDay: 6, Rate: 20, Currency: tables.CurrencyINR},
	}
}

func TestSlabDemurrage_LadderWalk(t *testing.T) {
	// Four days past free time spans both slabs: three days at 10, two at 20.
	got := SlabDemurrage(coalSlabs(), "Coal", "Import", TradeForeign, "Open", 100, 4, 82.5)
	nearlyEqual(t, "ladder demurrage", got, 3*100*10+2*100*20)
}

func TestSlabDemurrage_SingleSlab(t *testing.T) {
	got := SlabDemurrage(coalSlabs(), "Coal", "Import", TradeForeign, "Open", 100, 1, 82.5)
	nearlyEqual(t, "two days in first slab", got, 2*100*10)
}

func TestSlabDemurrage_NoOverstay(t *testing.T) {
	nearlyEqual(t, "zero days", SlabDemurrage(coalSlabs(), "Coal", "Import", TradeForeign, "Open", 100, 0, 82.5), 0)
	nearlyEqual(t, "negative days", SlabDemurrage(coalSlabs(), "Coal", "Import", TradeForeign, "Open", 100, -3, 82.5), 0)
	nearlyEqual(t, "zero quantity", SlabDemurrage(coalSlabs(), "Coal", "Import", TradeForeign, "Open", 0, 4, 82.5), 0)
}

func TestSlabDemurrage_GappedLadderDropsUncoveredDays(t *testing.T) {
	slabs := []tables.DemurrageSlab{
		{CargoFilter: "both", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 0, EndDay: 2, Rate: 10, Currency: tables.CurrencyINR},
		{CargoFilter: "both", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 5, EndDay: 9, Rate: 20, Currency: tables.CurrencyINR},
	}

	// Days 3 and 4 fall between the slabs and charge nothing.
	got := SlabDemurrage(slabs, "Coal", "Import", TradeForeign, "Open", 100, 4, 82.5)
	nearlyEqual(t, "gapped ladder", got, 3*100*10)
}

func TestSlabDemurrage_LadderAboveSpanChargesNothing(t *testing.T) {
	slabs := []tables.DemurrageSlab{
		{CargoFilter: "both", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 3, EndDay: 6, Rate: 20, Currency: tables.CurrencyINR},
	}

	got := SlabDemurrage(slabs, "Coal", "Import", TradeForeign, "Open", 100, 1, 82.5)
	nearlyEqual(t, "slab past the overstay", got, 0)
}

func TestSlabDemurrage_USDConversion(t *testing.T) {
	slabs := []tables.DemurrageSlab{
		{CargoFilter: "any", OperationFilter: "any", TradeFilter: "any", StorageFilter: "any",
			StartDay: 0, EndDay: 30, Rate: 5, Currency: tables.CurrencyUSD},
	}

	// 5 USD at 80 INR/USD is an effective 400 per unit-day.
	got := SlabDemurrage(slabs, "Steel", "Export", TradeForeign, "Covered", 1, 1, 80)
	nearlyEqual(t, "usd slab", got, 2*400)
}

func TestSlabDemurrage_FiltersExcludeSlabs(t *testing.T) {
	slabs := []tables.DemurrageSlab{
		{CargoFilter: "Container", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 0, EndDay: 999, Rate: 50, Currency: tables.CurrencyINR},
		{CargoFilter: "Coal", OperationFilter: "both", TradeFilter: "both", StorageFilter: "both",
			StartDay: 0, EndDay: 999, Rate: 10, Currency: tables.CurrencyINR},
	}

	got := SlabDemurrage(slabs, "Coal & Coke", "Import", TradeCoastal, "Open", 10, 2, 82.5)
	nearlyEqual(t, "only coal slab matches", got, 10*10*3)
}

func TestRailDemurrage(t *testing.T) {
	slabs := []tables.RailDemurrageSlab{
		{StartHours: 0, EndHours: 12, Rate: 150},
		{StartHours: 12.01, EndHours: 999, Rate: 400},
	}

	nearlyEqual(t, "within free hours", RailDemurrage(slabs, 6, 8, 40), 0)
	nearlyEqual(t, "first slab", RailDemurrage(slabs, 18, 8, 40), 150*40)
	nearlyEqual(t, "second slab", RailDemurrage(slabs, 30, 8, 40), 400*40)
}

func TestCargoDemurrage(t *testing.T) {
	nearlyEqual(t, "flat per-ton-day", CargoDemurrage(2.5, 1000, 3), 7500)
	nearlyEqual(t, "no overstay", CargoDemurrage(2.5, 1000, 0), 0)
}
