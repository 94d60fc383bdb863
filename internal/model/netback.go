package model

// NetbackResult is the margin waterfall for delivering one cargo to one
// destination: revenue at the destination price minus everything it cost to
// get there.
type NetbackResult struct {
	Destination          string
	PriceUSDMMBtu        float64
	DeliveredEnergyMMBtu float64
	RevenueUSD           float64
	VoyageCostUSD        float64 // fuel + time charter, excluding carbon
	CarbonCostUSD        float64 // reported separately for the cost breakdown
	NetbackUSD           float64
	Voyage               VoyageDetails
}

// ComputeNetback prices a delivered cargo against a destination benchmark.
func ComputeNetback(destination string, priceUSDMMBtu float64, v VoyageDetails) NetbackResult {
	revenue := priceUSDMMBtu * v.DeliveredEnergyMMBtu
	return NetbackResult{
		Destination:          destination,
		PriceUSDMMBtu:        priceUSDMMBtu,
		DeliveredEnergyMMBtu: v.DeliveredEnergyMMBtu,
		RevenueUSD:           revenue,
		VoyageCostUSD:        v.TotalVoyageCostUSD - v.CarbonCostUSD,
		CarbonCostUSD:        v.CarbonCostUSD,
		NetbackUSD:           revenue - v.TotalVoyageCostUSD,
		Voyage:               v,
	}
}

// CompareQuery prices one cargo against two candidate destinations with the
// same vessel, fuel and carbon inputs but destination-specific distance and
// price. Destination B is the divert candidate.
type CompareQuery struct {
	LoadPort     string
	PortA        string
	PortB        string
	DestinationA string // label, e.g. "Europe"; defaults to PortA
	DestinationB string // label, e.g. "Asia"; defaults to PortB

	VesselClass     string
	CargoCapacityM3 float64

	PriceAUSDMMBtu    float64
	PriceBUSDMMBtu    float64
	FreightRateUSDDay float64
	FuelPriceUSDT     float64
	EUAPriceUSDT      float64
	FuelType          FuelType
}

// CompareNetbacks runs the voyage model and netback calculation once per
// destination and returns the results in (A, B) order. No state is shared
// between the two legs; routes and fuel burn differ.
func CompareNetbacks(ref RefData, q CompareQuery) (NetbackResult, NetbackResult, error) {
	labelA := q.DestinationA
	if labelA == "" {
		labelA = q.PortA
	}
	labelB := q.DestinationB
	if labelB == "" {
		labelB = q.PortB
	}

	voyageA, err := ComputeVoyage(ref, VoyageQuery{
		LoadPort:          q.LoadPort,
		DischargePort:     q.PortA,
		VesselClass:       q.VesselClass,
		CargoCapacityM3:   q.CargoCapacityM3,
		FreightRateUSDDay: q.FreightRateUSDDay,
		FuelPriceUSDT:     q.FuelPriceUSDT,
		EUAPriceUSDT:      q.EUAPriceUSDT,
		FuelType:          q.FuelType,
	})
	if err != nil {
		return NetbackResult{}, NetbackResult{}, err
	}

	voyageB, err := ComputeVoyage(ref, VoyageQuery{
		LoadPort:          q.LoadPort,
		DischargePort:     q.PortB,
		VesselClass:       q.VesselClass,
		CargoCapacityM3:   q.CargoCapacityM3,
		FreightRateUSDDay: q.FreightRateUSDDay,
		FuelPriceUSDT:     q.FuelPriceUSDT,
		EUAPriceUSDT:      q.EUAPriceUSDT,
		FuelType:          q.FuelType,
	})
	if err != nil {
		return NetbackResult{}, NetbackResult{}, err
	}

	return ComputeNetback(labelA, q.PriceAUSDMMBtu, voyageA),
		ComputeNetback(labelB, q.PriceBUSDMMBtu, voyageB),
		nil
}
