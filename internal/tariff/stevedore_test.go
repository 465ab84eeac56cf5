package tariff

import (
	"testing"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/tables"
)

func TestDatum(t *testing.T) {
	datums := []tables.LabourDatum{
		{LineNo: "12", MobileCrane100T: false, DatumPerCrane: 416},
		{LineNo: "12", MobileCrane100T: true, DatumPerCrane: 832},
	}

	nearlyEqual(t, "ship crane datum", Datum(datums, "12", false), 416)
	nearlyEqual(t, "mobile crane datum", Datum(datums, "12", true), 832)
	nearlyEqual(t, "unknown line", Datum(datums, "99", false), 0)
}

func TestGangsRequired(t *testing.T) {
	if got := GangsRequired(10000, 416); got != 25 {
		t.Fatalf("gangs = %d, want 25", got)
	}
	if got := GangsRequired(416, 416); got != 1 {
		t.Fatalf("exact datum gangs = %d, want 1", got)
	}
	if got := GangsRequired(10000, 0); got != 0 {
		t.Fatalf("zero datum gangs = %d, want 0", got)
	}
}

func TestWorkDays(t *testing.T) {
	if got := WorkDays(50000, 2500); got != 20 {
		t.Fatalf("work days = %d, want 20", got)
	}
	if got := WorkDays(500, 0); got != 1 {
		t.Fatalf("default norm work days = %d, want 1", got)
	}
}

func TestCompositeCost(t *testing.T) {
	manning := tables.LabourManning{
		LineNo:  "12",
		OnBoard: true,
		Headcount: map[string]int{
			"Tindal":       1,
			"Winch driver": 2,
			"Mazdoor":      8,
		},
	}
	rates := []tables.CompositeRate{
		{Category: "Tindal", Shift: "Full", CargoCode: "ALLOTHCG", Rate: 900},
		{Category: "Winch driver", Shift: "Full", CargoCode: "ALLOTHCG", Rate: 850},
		{Category: "Mazdoor", Shift: "Full", CargoCode: "ALLOTHCG", Rate: 700},
		{Category: "Mazdoor", Shift: "Full", CargoCode: "AGPSUBGS", Rate: 750},
	}

	got := CompositeCost(rates, manning, "Full", "ALLOTHCG", 3)
	nearlyEqual(t, "composite cost", got, (1*900+2*850+8*700)*3)

	nearlyEqual(t, "zero gangs", CompositeCost(rates, manning, "Full", "ALLOTHCG", 0), 0)
}

func TestManning(t *testing.T) {
	rows := []tables.LabourManning{
		{LineNo: "12", OnBoard: true},
		{LineNo: "12", OnBoard: false},
	}

	if _, ok := Manning(rows, "12", true); !ok {
		t.Fatal("expected on-board row")
	}
	if _, ok := Manning(rows, "40", true); ok {
		t.Fatal("unexpected match for unknown line")
	}
}

func TestRoyalties(t *testing.T) {
	rates := []tables.Royalty{
		{CargoType: "Dry Bulk", StevedoringRate: 12.4, ShoreRate: 6.2},
	}

	stevedoring, shore := Royalties(rates, "Dry Bulk", 10000)
	nearlyEqual(t, "stevedoring royalty", stevedoring, 124000)
	nearlyEqual(t, "shore royalty", shore, 62000)

	stevedoring, shore = Royalties(rates, "Container -Laden", 10000)
	nearlyEqual(t, "unknown type stevedoring", stevedoring, 0)
	nearlyEqual(t, "unknown type shore", shore, 0)
}
