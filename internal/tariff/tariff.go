// Package tariff implements the pure rate-lookup and charge-computation
// functions of the port cost estimator. Every function maps scenario fields
// and in-memory rate tables to an amount in INR; a lookup that finds no
// matching record reports a miss instead of failing, and callers treat the
// missing contribution as zero.
package tariff

// TradeType distinguishes coastal and foreign trade. Foreign-trade rates are
// USD-denominated and get multiplied by the session exchange rate.
type TradeType string

const (
	TradeCoastal TradeType = "Coastal"
	TradeForeign TradeType = "Foreign"
)
