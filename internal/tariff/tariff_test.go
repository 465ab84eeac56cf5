package tariff

import (
	"math"
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCargoWharfage_WeightBasis(t *testing.T) {
	rates := []tables.WharfageRate{
		{SoRCode: "SOR-12", CostBasis: tables.BasisWeight, CoastalRate: 18, ForeignRate: 30},
	}

	got, ok := CargoWharfage(rates, "SOR-12", TradeForeign, 500, 0)
	if !ok {
		t.Fatal("expected a rate hit")
	}
	nearlyEqual(t, "foreign weight wharfage", got, 15000)

	got, _ = CargoWharfage(rates, "SOR-12", TradeCoastal, 500, 0)
	nearlyEqual(t, "coastal weight wharfage", got, 9000)
}

func TestCargoWharfage_ValueBasis(t *testing.T) {
	rates := []tables.WharfageRate{
		{SoRCode: "SOR-7", CostBasis: tables.BasisValue, CoastalRate: 0.255, ForeignRate: 0.425},
	}

	got, ok := CargoWharfage(rates, "SOR-7", TradeForeign, 0, 1000000)
	if !ok {
		t.Fatal("expected a rate hit")
	}
	nearlyEqual(t, "ad valorem wharfage", got, 4250)
}

func TestCargoWharfage_MissingCode(t *testing.T) {
	rates := []tables.WharfageRate{
		{SoRCode: "SOR-12", CostBasis: tables.BasisWeight, ForeignRate: 30},
	}

	if got, ok := CargoWharfage(rates, "", TradeForeign, 500, 0); ok || got != 0 {
		t.Fatalf("blank code: got %v ok=%v, want 0 and miss", got, ok)
	}
	if got, ok := CargoWharfage(rates, "SOR-99", TradeForeign, 500, 0); ok || got != 0 {
		t.Fatalf("unknown code: got %v ok=%v, want 0 and miss", got, ok)
	}
}

func TestContainerWharfage_Schedule(t *testing.T) {
	lots := []ContainerLot{
		{Class: ClassStandard, Fill: FillLaden, Band: BandUpto20, Quantity: 10},
		{Class: ClassMAFI, Fill: FillEmpty, Band: Band20to40, Quantity: 2},
	}

	got := ContainerWharfage(lots, TradeForeign, 0)
	nearlyEqual(t, "schedule wharfage", got, 10*900+2*1015)
}

func TestContainerWharfage_ShipperOwnAdValorem(t *testing.T) {
	lots := []ContainerLot{
		{Class: ClassShipperOwn, Fill: FillLaden, Band: BandUpto20, Quantity: 4},
	}

	foreign := ContainerWharfage(lots, TradeForeign, 2000000)
	coastal := ContainerWharfage(lots, TradeCoastal, 2000000)

	nearlyEqual(t, "foreign ad valorem", foreign, 2000000*0.4250/100)
	nearlyEqual(t, "coastal ad valorem", coastal, 2000000*0.2550/100)
}

func TestContainerWharfage_IgnoresEmptyLots(t *testing.T) {
	lots := []ContainerLot{
		{Class: ClassStandard, Fill: FillLaden, Band: BandUpto20, Quantity: 0},
	}
	nearlyEqual(t, "zero quantity", ContainerWharfage(lots, TradeForeign, 0), 0)
}
