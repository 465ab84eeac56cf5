package tariff

// Container wharfage is charged from a fixed schedule rather than a
// data-driven table: per-box rates by container class, fill state, size band
// and trade type. Shipper-own boxes are the exception and attract an
// ad-valorem rate on the declared cargo value.

// ContainerClass is the ownership/handling class of a container.
type ContainerClass string

const (
	ClassStandard   ContainerClass = "Standard"
	ClassMAFI       ContainerClass = "MAFI"
	ClassShipperOwn ContainerClass = "ShipperOwn"
)

// FillState is whether a container moves empty or laden.
type FillState string

const (
	FillEmpty FillState = "Empty"
	FillLaden FillState = "Laden"
)

// SizeBand buckets container lengths.
type SizeBand string

const (
	BandUpto20  SizeBand = "Upto20ft"
	Band20to40  SizeBand = "20to40ft"
	BandAbove40 SizeBand = "Above40ft"
)

// ContainerLot is a count of identical containers in one scenario.
type ContainerLot struct {
	Class    ContainerClass
	Fill     FillState
	Band     SizeBand
	Quantity int
}

// Ad-valorem percentages for shipper-own containers.
const (
	shipperOwnForeignPct = 0.4250
	shipperOwnCoastalPct = 0.2550
)

type scheduleKey struct {
	class ContainerClass
	fill  FillState
	band  SizeBand
	trade TradeType
}

// Fixed per-box rates in INR.
var containerSchedule = map[scheduleKey]float64{
	{ClassStandard, FillEmpty, BandUpto20, TradeCoastal}:  300,
	{ClassStandard, FillEmpty, BandUpto20, TradeForeign}:  450,
	{ClassStandard, FillEmpty, Band20to40, TradeCoastal}:  450,
	{ClassStandard, FillEmpty, Band20to40, TradeForeign}:  675,
	{ClassStandard, FillEmpty, BandAbove40, TradeCoastal}: 600,
	{ClassStandard, FillEmpty, BandAbove40, TradeForeign}: 900,
	{ClassStandard, FillLaden, BandUpto20, TradeCoastal}:  600,
	{ClassStandard, FillLaden, BandUpto20, TradeForeign}:  900,
	{ClassStandard, FillLaden, Band20to40, TradeCoastal}:  900,
	{ClassStandard, FillLaden, Band20to40, TradeForeign}:  1350,
	{ClassStandard, FillLaden, BandAbove40, TradeCoastal}: 1200,
	{ClassStandard, FillLaden, BandAbove40, TradeForeign}: 1800,
	{ClassMAFI, FillEmpty, BandUpto20, TradeCoastal}:      450,
	{ClassMAFI, FillEmpty, BandUpto20, TradeForeign}:      675,
	{ClassMAFI, FillEmpty, Band20to40, TradeCoastal}:      675,
	{ClassMAFI, FillEmpty, Band20to40, TradeForeign}:      1015,
	{ClassMAFI, FillEmpty, BandAbove40, TradeCoastal}:     900,
	{ClassMAFI, FillEmpty, BandAbove40, TradeForeign}:     1350,
	{ClassMAFI, FillLaden, BandUpto20, TradeCoastal}:      900,
	{ClassMAFI, FillLaden, BandUpto20, TradeForeign}:      1350,
	{ClassMAFI, FillLaden, Band20to40, TradeCoastal}:      1350,
	{ClassMAFI, FillLaden, Band20to40, TradeForeign}:      2025,
	{ClassMAFI, FillLaden, BandAbove40, TradeCoastal}:     1800,
	{ClassMAFI, FillLaden, BandAbove40, TradeForeign}:     2700,
}

// ContainerWharfage sums the per-box schedule rate across every lot.
// Shipper-own lots contribute the ad-valorem charge on the declared cargo
// value instead of a per-box rate; that charge applies once, not per lot.
func ContainerWharfage(lots []ContainerLot, trade TradeType, declaredValue float64) float64 {
	total := 0.0
	shipperOwn := false
	for _, lot := range lots {
		if lot.Quantity <= 0 {
			continue
		}
		if lot.Class == ClassShipperOwn {
			shipperOwn = true
			continue
		}
		rate := containerSchedule[scheduleKey{lot.Class, lot.Fill, lot.Band, trade}]
		total += float64(lot.Quantity) * rate
	}
	if shipperOwn {
		pct := shipperOwnForeignPct
		if trade == TradeCoastal {
			pct = shipperOwnCoastalPct
		}
		total += declaredValue * pct / 100
	}
	return total
}
