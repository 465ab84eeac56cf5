package berth

import (
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func testMaster() []tables.Berth {
	return []tables.Berth{
		{Name: "CB-1", DockName: "Coal Dock", QuayLen: 300, Draft: 14, Beam: 40, Bulk: true},
		{Name: "CB-2", DockName: "Coal Dock", QuayLen: 200, Draft: 10, Beam: 35, Bulk: true},
		{Name: "CT-1", DockName: "Container Terminal", QuayLen: 350, Draft: 15, Beam: 48, Container: true},
		{Name: "OT-1", DockName: "Oil Terminal", QuayLen: 280, Draft: 16, Beam: 45, LiquidBulk: true},
	}
}

func TestEligible_DimensionsAndCapability(t *testing.T) {
	v := Dimensions{LOA: 250, Draft: 12, Beam: 35}

	groups := Eligible(v, "Dry Bulk", testMaster())
	if len(groups) != 1 || groups[0].Dock != "Coal Dock" {
		t.Fatalf("groups = %+v, want Coal Dock only", groups)
	}
	if len(groups[0].Berths) != 1 || groups[0].Berths[0] != "CB-1" {
		t.Fatalf("berths = %v, want CB-1 alone; CB-2 is too short", groups[0].Berths)
	}
}

func TestEligible_ContainerCargoNeedsContainerBerth(t *testing.T) {
	v := Dimensions{LOA: 250, Draft: 12, Beam: 35}

	groups := Eligible(v, "Container", testMaster())
	if len(groups) != 1 || groups[0].Dock != "Container Terminal" {
		t.Fatalf("groups = %+v, want Container Terminal only", groups)
	}
}

func TestEligible_BeamCeiling(t *testing.T) {
	v := Dimensions{LOA: 250, Draft: 12, Beam: 42}

	groups := Eligible(v, "Dry Bulk", testMaster())
	if len(groups) != 0 {
		t.Fatalf("groups = %+v, want none; beam exceeds every bulk berth", groups)
	}
}

func TestEligible_PreservesTableOrderAndCapsPerDock(t *testing.T) {
	master := make([]tables.Berth, 0, 7)
	for _, name := range []string{"B-1", "B-2", "B-3", "B-4", "B-5", "B-6", "B-7"} {
		master = append(master, tables.Berth{
			Name: name, DockName: "Big Dock", QuayLen: 400, Draft: 20, Beam: 60, Bulk: true,
		})
	}

	groups := Eligible(Dimensions{LOA: 100, Draft: 8, Beam: 20}, "Coal", master)
	if len(groups) != 1 {
		t.Fatalf("groups = %+v, want one dock", groups)
	}
	if len(groups[0].Berths) != 5 {
		t.Fatalf("berths = %v, want cap of five", groups[0].Berths)
	}
	if groups[0].Berths[0] != "B-1" || groups[0].Berths[4] != "B-5" {
		t.Fatalf("berths = %v, want first five in table order", groups[0].Berths)
	}
}

func TestEligible_GeneralCargoExcludesSpecializedBerths(t *testing.T) {
	master := []tables.Berth{
		{Name: "GC-1", DockName: "General Dock", QuayLen: 300, Draft: 14, Beam: 40, Bulk: true},
		{Name: "CT-1", DockName: "Container Terminal", QuayLen: 300, Draft: 14, Beam: 40, Bulk: true, Container: true},
	}

	groups := Eligible(Dimensions{LOA: 200, Draft: 10, Beam: 30}, "Machinery", master)
	if len(groups) != 1 || groups[0].Berths[0] != "GC-1" {
		t.Fatalf("groups = %+v, want GC-1 only", groups)
	}
}
