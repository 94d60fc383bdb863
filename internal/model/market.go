package model

import "time"

// MarketObservation is one dated row of the historical market series: the
// per-evaluation scalars the pipeline needs for a single day.
type MarketObservation struct {
	Date              time.Time
	PriceAUSDMMBtu    float64 // origin-market benchmark (e.g. TTF)
	PriceBUSDMMBtu    float64 // divert-market benchmark (e.g. JKM)
	FreightRateUSDDay float64
	FuelPriceUSDT     float64
	EUAPriceUSDT      float64
}
