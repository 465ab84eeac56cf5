package tables

import "log"

// Master table names, matching the original CSV exports.
const (
	TableBerthMaster      = "VM_berth_master"
	TableBerthHire        = "VM_berth_hire"
	TablePortDues         = "VM_port_dues"
	TablePilotage         = "VM_Pilotage_Master_with_Category"
	TableCurrencyLookup   = "VM_currency_lookup"
	TableCargoMaster      = "CM_CargoMaster"
	TableWharfageMaster   = "CM_WharfageMaster"
	TableDemurrageSlabs   = "CM_DemurrageSlabs"
	TableWagonMaster      = "RM_WagonMaster"
	TableSidingMaster     = "RM_RailwaySidingMaster"
	TableHaulage          = "RM_Haulage"
	TableTerminalHandling = "RM_TerminalHandling"
	TableRailDemurrage    = "RM_Demurrage"
	TableStowageFactor    = "SM_StowageFactor"
	TableImmediateFee     = "SM_ImmediateCargoFee"
	TableLicenceFee       = "SM_LicenceFee"
	TableLabourManning    = "LM_labourManningMaster"
	TableLabourDatum      = "LM_labourDatumMaster"
	TableCompositeRate    = "LM_CompositeRate"
	TableRoyaltyMaster    = "LM_RoyaltyMaster"
)

var knownTables = map[string]bool{
	TableBerthMaster:      true,
	TableBerthHire:        true,
	TablePortDues:         true,
	TablePilotage:         true,
	TableCurrencyLookup:   true,
	TableCargoMaster:      true,
	TableWharfageMaster:   true,
	TableDemurrageSlabs:   true,
	TableWagonMaster:      true,
	TableSidingMaster:     true,
	TableHaulage:          true,
	TableTerminalHandling: true,
	TableRailDemurrage:    true,
	TableStowageFactor:    true,
	TableImmediateFee:     true,
	TableLicenceFee:       true,
	TableLabourManning:    true,
	TableLabourDatum:      true,
	TableCompositeRate:    true,
	TableRoyaltyMaster:    true,
}

// KnownTable reports whether name is one of the master rate tables the
// estimator serves and consumes.
func KnownTable(name string) bool {
	return knownTables[name]
}

// Set is the full collection of in-memory rate tables a computation needs.
// It is loaded once per session and never mutated afterwards.
type Set struct {
	Berths          []Berth
	BerthHire       []BerthHireRate
	PortDues        []PortDuesRate
	Pilotage        []PilotageRate
	Exchange        []ExchangeRate
	Cargo           []Cargo
	Wharfage        []WharfageRate
	DemurrageSlabs  []DemurrageSlab
	Wagons          []Wagon
	Sidings         []Siding
	Haulage         []HaulageRate
	Terminal        []TerminalHandlingRate
	RailDemurrage   []RailDemurrageSlab
	StowageFactors  []StowageFactor
	ImmediateRates  []ImmediateStorageRate
	LeaseRates      []LeaseRate
	Manning         []LabourManning
	Datums          []LabourDatum
	CompositeRates  []CompositeRate
	Royalties       []Royalty
}

// Load pulls every master table through the provider and maps rows into
// typed records. A table that fails to load is logged and left empty; the
// lookups treat empty tables as universal misses.
func Load(p Provider) *Set {
	s := &Set{}
	s.Berths = mapRows(p, TableBerthMaster, BerthFromRow)
	s.BerthHire = mapRows(p, TableBerthHire, BerthHireRateFromRow)
	s.PortDues = mapRows(p, TablePortDues, PortDuesRateFromRow)
	s.Pilotage = mapRows(p, TablePilotage, PilotageRateFromRow)
	s.Exchange = mapRows(p, TableCurrencyLookup, ExchangeRateFromRow)
	s.Cargo = mapRows(p, TableCargoMaster, CargoFromRow)
	s.Wharfage = mapRows(p, TableWharfageMaster, WharfageRateFromRow)
	s.DemurrageSlabs = mapRows(p, TableDemurrageSlabs, DemurrageSlabFromRow)
	s.Wagons = mapRows(p, TableWagonMaster, WagonFromRow)
	s.Sidings = mapRows(p, TableSidingMaster, SidingFromRow)
	s.Haulage = mapRows(p, TableHaulage, HaulageRateFromRow)
	s.Terminal = mapRows(p, TableTerminalHandling, TerminalHandlingRateFromRow)
	s.RailDemurrage = mapRows(p, TableRailDemurrage, RailDemurrageSlabFromRow)
	s.StowageFactors = mapRows(p, TableStowageFactor, StowageFactorFromRow)
	s.ImmediateRates = mapRows(p, TableImmediateFee, ImmediateStorageRateFromRow)
	s.LeaseRates = mapRows(p, TableLicenceFee, LeaseRateFromRow)
	s.Manning = mapRows(p, TableLabourManning, LabourManningFromRow)
	s.Datums = mapRows(p, TableLabourDatum, LabourDatumFromRow)
	s.CompositeRates = mapRows(p, TableCompositeRate, CompositeRateFromRow)
	s.Royalties = mapRows(p, TableRoyaltyMaster, RoyaltyFromRow)
	return s
}

// CargoByDescription finds a cargo-master record by its identity.
func (s *Set) CargoByDescription(description string) (Cargo, bool) {
	for _, c := range s.Cargo {
		if c.Description == description {
			return c, true
		}
	}
	return Cargo{}, false
}

func mapRows[T any](p Provider, table string, from func(Row) T) []T {
	rows, err := p.Rows(table)
	if err != nil {
		log.Printf("tables: load %s failed, continuing with empty table: %v", table, err)
		return nil
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, from(r))
	}
	return out
}
