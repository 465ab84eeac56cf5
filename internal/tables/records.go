package tables

import "strings"

// Cargo is one cargo-master record. Identity is the description, unique
// within a table.
type Cargo struct {
	Description   string
	CategoryName  string
	SoRCode       string
	DischargeRate float64 // tons per day
	LoadRate      float64 // tons per day
	DemurrageRate float64 // INR per ton per day
}

func CargoFromRow(r Row) Cargo {
	return Cargo{
		Description:   r.Str("CargoDescription", "Cargo Description"),
		CategoryName:  r.Str("CargoCategoryName", "Cargo Category Name"),
		SoRCode:       r.Str("SoRNoCode", "sor_item"),
		DischargeRate: r.Float("DSCHRG_RATE_PR_DAY"),
		LoadRate:      r.Float("LD_RATE_PR_DAY"),
		DemurrageRate: r.Float("DEMURRAGE_RATE_PR_DAY", "DEMURRAGE_RATE"),
	}
}

// Throughput returns the handling norm in tons per day, preferring the
// discharge rate over the load rate. Zero means the master has no usable norm.
func (c Cargo) Throughput() float64 {
	if c.DischargeRate > 0 {
		return c.DischargeRate
	}
	return c.LoadRate
}

// Cost basis values for wharfage rate records.
const (
	BasisWeight = "Weight"
	BasisValue  = "Value"
	BasisUnit   = "Unit"
)

// WharfageRate maps one SoR code to its coastal and foreign rates.
type WharfageRate struct {
	SoRCode     string
	CostBasis   string // Weight, Value or Unit
	CoastalRate float64
	ForeignRate float64
}

func WharfageRateFromRow(r Row) WharfageRate {
	return WharfageRate{
		SoRCode:     r.Str("sor_item", "SoRNoCode"),
		CostBasis:   r.Str("cost_basis", "Cost_Basis"),
		CoastalRate: r.Float("coastal_rate"),
		ForeignRate: r.Float("foreign_rate"),
	}
}

// Slab currencies.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// DemurrageSlab is one rung of a day-ranged demurrage ladder. Filter columns
// may hold the literal wildcard "both" or "any" to match unconditionally.
type DemurrageSlab struct {
	CargoFilter     string // substring match against the cargo category
	OperationFilter string
	TradeFilter     string
	StorageFilter   string
	StartDay        int
	EndDay          int
	Rate            float64
	Currency        string // INR or USD
}

func DemurrageSlabFromRow(r Row) DemurrageSlab {
	s := DemurrageSlab{
		CargoFilter:     r.Str("Cargo_Type"),
		OperationFilter: r.Str("Operation_Type"),
		TradeFilter:     r.Str("Trade_Type"),
		StorageFilter:   r.Str("Storage_Type"),
		StartDay:        r.Int("Start_Day"),
		EndDay:          r.Int("End_Day"),
		Rate:            r.Float("Rate"),
		Currency:        r.Str("Rate_Currency"),
	}
	if s.Currency == "" {
		s.Currency = CurrencyINR
	}
	return s
}

// RailDemurrageSlab keys on an hour range with a flat per-wagon rate.
type RailDemurrageSlab struct {
	StartHours float64
	EndHours   float64
	Rate       float64 // INR per wagon, flat for the whole range
}

func RailDemurrageSlabFromRow(r Row) RailDemurrageSlab {
	s := RailDemurrageSlab{
		StartHours: r.Float("Time_start_HRS"),
		EndHours:   r.Float("Time_end_HRS"),
		Rate:       r.Float("Dem_Rate"),
	}
	if s.EndHours == 0 {
		s.EndHours = 999
	}
	return s
}

// Berth is one berth-master record. Eligibility is computed, never stored.
type Berth struct {
	Name            string
	DockName        string
	QuayLen         float64
	Draft           float64
	Beam            float64 // maximum vessel beam the berth accepts
	Container       bool
	LiquidBulk      bool
	Bulk            bool
	RORO            bool
	POL             bool
	PassengerCruise bool
	Bunker          bool
}

func BerthFromRow(r Row) Berth {
	b := Berth{
		Name:            r.Str("BerthName"),
		DockName:        r.Str("Dock_Name"),
		QuayLen:         r.Float("Quay_Len"),
		Draft:           r.Float("Draft"),
		Beam:            r.Float("Beam"),
		Container:       r.Flag("Container"),
		LiquidBulk:      r.Flag("Liquid_Bulk"),
		Bulk:            r.Flag("Bulk"),
		RORO:            r.Flag("RORO"),
		POL:             r.Flag("POL"),
		PassengerCruise: r.Flag("PassnCruise"),
		Bunker:          r.Flag("Bunker"),
	}
	if b.Beam == 0 {
		// Masters without a beam column do not constrain vessel beam.
		b.Beam = 999
	}
	return b
}

// PortDuesRate holds per-GT rates for one vessel type.
type PortDuesRate struct {
	VesselType  string
	CoastalRate float64
	ForeignRate float64
}

func PortDuesRateFromRow(r Row) PortDuesRate {
	return PortDuesRate{
		VesselType:  r.Str("vessel_type"),
		CoastalRate: r.Float("coastal_rate"),
		ForeignRate: r.Float("foreign_rate"),
	}
}

// PilotageRate is one GT-banded pilotage row with per-vessel-type columns.
// Category distinguishes the Coastal and Foreign rate ladders.
type PilotageRate struct {
	GTMin     float64
	GTMax     float64 // 0 means unbounded
	Category  string  // Coastal or Foreign
	Tankers   float64
	Container float64
	RoRo      float64
	Bulk      float64
	Other     float64
}

func PilotageRateFromRow(r Row) PilotageRate {
	return PilotageRate{
		GTMin:     r.Float("GT_Min"),
		GTMax:     r.Float("GT_Max"),
		Category:  r.Str("Category"),
		Tankers:   r.Float("Tankers"),
		Container: r.Float("Container"),
		RoRo:      r.Float("RoRo"),
		Bulk:      r.Float("Bulk"),
		Other:     r.Float("Other"),
	}
}

// Contains reports whether gt falls inside the row's GT band.
func (p PilotageRate) Contains(gt float64) bool {
	if gt < p.GTMin {
		return false
	}
	return p.GTMax == 0 || gt <= p.GTMax
}

// BerthHireRate holds per-GT-hour berth hire rates for one vessel type.
type BerthHireRate struct {
	VesselType  string
	CoastalRate float64
	ForeignRate float64
}

func BerthHireRateFromRow(r Row) BerthHireRate {
	return BerthHireRate{
		VesselType:  r.Str("vessel_type"),
		CoastalRate: r.Float("coastal_rate"),
		ForeignRate: r.Float("foreign_rate"),
	}
}

// StowageFactor describes how much yard area a cargo needs.
type StowageFactor struct {
	Cargo         string
	StowageFactor float64 // m3 per ton
	Measure       float64 // tons per sq.m, or sq.m per unit for containers
	Density       float64 // tons per m3
}

func StowageFactorFromRow(r Row) StowageFactor {
	return StowageFactor{
		Cargo:         r.Str("Cargo"),
		StowageFactor: r.Float("StowageFactor"),
		Measure:       r.Float("Measure"),
		Density:       r.Float("Density"),
	}
}

// ImmediateStorageRate is the 15-day-period tariff for one area type and
// day range.
type ImmediateStorageRate struct {
	AreaType      string
	StartDay      int
	EndDay        int
	RatePer15Days float64
	Area          float64 // the sq.m block the rate is quoted for
}

func ImmediateStorageRateFromRow(r Row) ImmediateStorageRate {
	rate := ImmediateStorageRate{
		AreaType:      r.Str("S_Type"),
		StartDay:      r.Int("Start_Date"),
		EndDay:        r.Int("End_Date"),
		RatePer15Days: r.Float("Rate_for_15_days"),
		Area:          r.Float("Area"),
	}
	if rate.EndDay == 0 {
		rate.EndDay = 999
	}
	if rate.Area == 0 {
		rate.Area = 10
	}
	return rate
}

// LeaseRate is one long-term licence-fee row.
type LeaseRate struct {
	Description  string
	Location     string
	RatePerMonth float64
	Area         float64
	UoM          string
}

func LeaseRateFromRow(r Row) LeaseRate {
	rate := LeaseRate{
		Description:  r.Str("Description"),
		Location:     r.Str("Location"),
		RatePerMonth: r.Float("Rate_per_month"),
		Area:         r.Float("Area"),
		UoM:          r.Str("S_UoM"),
	}
	if rate.Area == 0 {
		rate.Area = 1
	}
	return rate
}

// PerArea reports whether the lease rate is quoted directly per unit of area
// or track length, in which case cost scales linearly with the leased area.
func (l LeaseRate) PerArea() bool {
	uom := strings.ToLower(l.UoM)
	return uom == "per sq. m." || uom == "square meter" || uom == "per rm"
}

// Wagon is one wagon-master record from the rail module.
type Wagon struct {
	Type      string
	Group     string
	RakeSize  int
	FreeHours float64
}

func WagonFromRow(r Row) Wagon {
	w := Wagon{
		Type:      r.Str("wagon_type"),
		Group:     r.Str("Wagon_Group"),
		RakeSize:  r.Int("Rake_Size"),
		FreeHours: r.Float("Free_Hours"),
	}
	if w.FreeHours == 0 {
		w.FreeHours = 8
	}
	return w
}

// Siding is one railway-siding master record.
type Siding struct {
	BoxType         string
	YardCapType     string // Full or Partial
	Lines           string
	RailwayYard     string
	LineType        string
	HoldingCapacity int
}

func SidingFromRow(r Row) Siding {
	return Siding{
		BoxType:         r.Str("BOX TYPE"),
		YardCapType:     r.Str("YardCapType"),
		Lines:           r.Str("Lines"),
		RailwayYard:     r.Str("RailwayYard"),
		LineType:        r.Str("LineType"),
		HoldingCapacity: r.Int("Holding Capacity"),
	}
}

// HaulageRate is one flat haulage tariff row.
type HaulageRate struct {
	Category    string // 20ft_Container, 40ft_Container, Above 40ft_Container, non_Container
	Description string // Loaded Wagon or Empty Wagon
	Rate        float64
}

func HaulageRateFromRow(r Row) HaulageRate {
	return HaulageRate{
		Category:    r.Str("category"),
		Description: r.Str("Haulage_description"),
		Rate:        r.Float("H_Rate"),
	}
}

// TerminalHandlingRate is a flat per-ton handling tariff.
type TerminalHandlingRate struct {
	CargoType string // containerised or non_containerised
	Rate      float64
}

func TerminalHandlingRateFromRow(r Row) TerminalHandlingRate {
	return TerminalHandlingRate{
		CargoType: r.Str("cargo_type"),
		Rate:      r.Float("THC_rate"),
	}
}

// LabourDatum is gang productivity for one labour line and crane flag.
type LabourDatum struct {
	LineNo          string
	MobileCrane100T bool
	Description     string
	DatumPerCrane   float64 // tons per crane per shift
}

func LabourDatumFromRow(r Row) LabourDatum {
	return LabourDatum{
		LineNo:          r.Str("LINE_NO"),
		MobileCrane100T: strings.EqualFold(r.Str("100_tons_Mobile_Crane"), "Y"),
		Description:     r.Str("Cargo_Type_Description"),
		DatumPerCrane:   r.Float("Datum_per_Crane"),
	}
}

// Labour categories forming a stevedoring gang.
var LabourCategories = []string{"Tindal", "Winch driver", "Signal Man", "Mazdoor", "Maistry", "Tally clerk"}

// LabourManning is the headcount of one labour line, split into on-board and
// shore assignment rows.
type LabourManning struct {
	LineNo    string
	OnBoard   bool
	Headcount map[string]int // keyed by LabourCategories entries
}

func LabourManningFromRow(r Row) LabourManning {
	return LabourManning{
		LineNo:  r.Str("LINE NO", "LINE_NO"),
		OnBoard: strings.EqualFold(r.Str("OnBoard"), "Y"),
		Headcount: map[string]int{
			"Tindal":       r.Int("Tindal"),
			"Winch driver": r.Int("Winch_driver"),
			"Signal Man":   r.Int("Signal_Man"),
			"Mazdoor":      r.Int("Mazdoor"),
			"Maistry":      r.Int("Maistry"),
			"Tally clerk":  r.Int("Tally_clerk"),
		},
	}
}

// CompositeRate is the per-shift labour rate for one category and cargo code.
type CompositeRate struct {
	Category  string
	Shift     string // Full or Half
	CargoCode string // ALLOTHCG, AGPSUBGS, ...
	Rate      float64
}

func CompositeRateFromRow(r Row) CompositeRate {
	return CompositeRate{
		Category:  r.Str("Lab_Category"),
		Shift:     r.Str("Shift"),
		CargoCode: r.Str("Type_Cargo"),
		Rate:      r.Float("Rate"),
	}
}

// Royalty holds the statutory per-ton stevedoring and shore-handling rates
// for one royalty cargo type.
type Royalty struct {
	CargoType       string
	StevedoringRate float64
	ShoreRate       float64
	UOM             string
}

func RoyaltyFromRow(r Row) Royalty {
	roy := Royalty{
		CargoType:       r.Str("RltyCargo_Type"),
		StevedoringRate: r.Float("Stevedoring_Royalty"),
		ShoreRate:       r.Float("ShoreHanding_Royalty"),
		UOM:             r.Str("UOM"),
	}
	if roy.UOM == "" {
		roy.UOM = "ton"
	}
	return roy
}

// ExchangeRate is one currency-lookup row. The most recently listed record is
// authoritative; interpretation of the stored number is left to the currency
// normalizer.
type ExchangeRate struct {
	INR float64
	USD float64
}

func ExchangeRateFromRow(r Row) ExchangeRate {
	// Headers vary across exports; match case-insensitively.
	var fx ExchangeRate
	for k, v := range r {
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "inr", "indian rupee", "rs", "rupee":
			fx.INR = Row{"v": v}.Float("v")
		case "usd", "dollar":
			fx.USD = Row{"v": v}.Float("v")
		}
	}
	return fx
}
