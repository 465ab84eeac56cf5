package tariff

import (
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func TestHaulage(t *testing.T) {
	rates := []tables.HaulageRate{
		{Category: "20ft_Container", Description: "Loaded Wagon", Rate: 42000},
		{Category: "20ft_Container", Description: "Empty Wagon", Rate: 21000},
		{Category: "non_Container", Description: "Loaded Wagon", Rate: 56000},
	}

	nearlyEqual(t, "loaded container rake", Haulage(rates, "20ft_Container", "Loaded Wagon", 2), 84000)
	nearlyEqual(t, "empty container rake", Haulage(rates, "20ft_Container", "Empty Wagon", 1), 21000)
	nearlyEqual(t, "unknown category", Haulage(rates, "40ft_Container", "Loaded Wagon", 1), 0)
	nearlyEqual(t, "zero rakes", Haulage(rates, "20ft_Container", "Loaded Wagon", 0), 0)
}

func TestTerminalHandling(t *testing.T) {
	rates := []tables.TerminalHandlingRate{
		{CargoType: "containerised", Rate: 18},
		{CargoType: "non_containerised", Rate: 24},
	}

	nearlyEqual(t, "containerised", TerminalHandling(rates, "containerised", 2500), 45000)
	nearlyEqual(t, "non-containerised", TerminalHandling(rates, "non_containerised", 2500), 60000)
}

func TestSelectSiding(t *testing.T) {
	sidings := []tables.Siding{
		{BoxType: "BOXN", YardCapType: "Partial", Lines: "L3", HoldingCapacity: 30},
		{BoxType: "BOXN", YardCapType: "Full", Lines: "L1", HoldingCapacity: 59},
		{BoxType: "BLC", YardCapType: "Full", Lines: "L5", HoldingCapacity: 45},
	}

	s, ok := SelectSiding(sidings, "BOXN", 45)
	if !ok || s.Lines != "L1" {
		t.Fatalf("full-capacity siding = %+v ok=%v, want L1", s, ok)
	}

	// Full line too small for the rake, partial line still fits.
	s, ok = SelectSiding(sidings, "BOXN", 0)
	if !ok || s.Lines != "L1" {
		t.Fatalf("zero wagons siding = %+v, want L1", s)
	}

	s, ok = SelectSiding(sidings, "BOXN", 80)
	if !ok || s.Lines != "L3" {
		t.Fatalf("oversize rake siding = %+v, want first BOXN line", s)
	}

	s, ok = SelectSiding(sidings, "BOST", 10)
	if !ok || s.Lines != "L3" {
		t.Fatalf("unknown box type siding = %+v, want first master row", s)
	}
}
