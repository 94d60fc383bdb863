package data

// Offline/proxy market snapshot. Swapping this for a licensed market data
// feed must not touch engine logic, so provenance is carried alongside every
// scalar.

// ProxySource marks a scalar derived from configuration rather than a live
// feed.
const ProxySource = "proxy"

// SnapshotInputs are the configured scalars a proxy snapshot is built from.
type SnapshotInputs struct {
	PriceAUSDMMBtu float64
	// PriceBUSDMMBtu, when zero, is derived as PriceA + PriceBPremium.
	PriceBUSDMMBtu        float64
	PriceBPremiumUSDMMBtu float64
	FreightUSDDay         float64
	// FreightRegimeMultiplier scales the base freight rate; zero means 1.
	FreightRegimeMultiplier float64
	FuelUSDPerT             float64
	EUAUSDPerTCO2           float64
}

// Snapshot is one as-of set of per-evaluation market scalars.
type Snapshot struct {
	AsOf              string
	PriceAUSDMMBtu    float64
	PriceBUSDMMBtu    float64
	FreightRateUSDDay float64
	FuelPriceUSDT     float64
	EUAPriceUSDT      float64
	Provenance        map[string]string // scalar name -> source
}

// ProxySnapshot builds a snapshot from configured scalars.
func ProxySnapshot(in SnapshotInputs, asOf string) Snapshot {
	priceB := in.PriceBUSDMMBtu
	if priceB == 0 {
		priceB = in.PriceAUSDMMBtu + in.PriceBPremiumUSDMMBtu
	}
	mult := in.FreightRegimeMultiplier
	if mult == 0 {
		mult = 1
	}
	return Snapshot{
		AsOf:              asOf,
		PriceAUSDMMBtu:    in.PriceAUSDMMBtu,
		PriceBUSDMMBtu:    priceB,
		FreightRateUSDDay: in.FreightUSDDay * mult,
		FuelPriceUSDT:     in.FuelUSDPerT,
		EUAPriceUSDT:      in.EUAUSDPerTCO2,
		Provenance: map[string]string{
			"price_a": ProxySource,
			"price_b": ProxySource,
			"freight": ProxySource,
			"fuel":    ProxySource,
			"eua":     ProxySource,
		},
	}
}
