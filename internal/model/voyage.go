package model

// LNG cargo conversion constants.
const (
	LNGDensityTPerM3       = 0.45 // tonne per m³
	EnergyContentMMBtuPerT = 52.0 // MMBtu per tonne LNG
	HoursPerDay            = 24.0
)

// VoyageQuery describes one laden voyage leg to be priced.
type VoyageQuery struct {
	LoadPort          string
	DischargePort     string
	VesselClass       string
	CargoCapacityM3   float64
	FreightRateUSDDay float64
	FuelPriceUSDT     float64
	EUAPriceUSDT      float64
	FuelType          FuelType
}

// VoyageDetails is the full cost breakdown of one laden leg. It is a value
// object computed fresh per call and never mutated.
type VoyageDetails struct {
	DistanceNM           float64
	VoyageDays           float64
	BoilOffM3            float64
	DeliveredCargoM3     float64
	DeliveredEnergyMMBtu float64
	FuelConsumedTonnes   float64
	FuelCostUSD          float64
	TimeCharterCostUSD   float64
	CarbonCostUSD        float64
	TotalVoyageCostUSD   float64
}

// ComputeVoyage prices a single laden leg. Only the laden leg is modeled;
// the ballast return is out of scope.
//
// Delivered cargo can go negative when boil-off exceeds capacity (a vessel
// too slow for the route). That is a valid computed value and is surfaced
// as-is: clamping here would mask a genuine reference-data problem.
func ComputeVoyage(ref RefData, q VoyageQuery) (VoyageDetails, error) {
	route, err := ref.RouteFor(q.LoadPort, q.DischargePort)
	if err != nil {
		return VoyageDetails{}, err
	}
	vessel, err := ref.VesselFor(q.VesselClass)
	if err != nil {
		return VoyageDetails{}, err
	}

	voyageDays := route.DistanceNM / (vessel.LadenSpeedKn * HoursPerDay)

	// Boil-off rate is percent per day.
	boilOffM3 := q.CargoCapacityM3 * (vessel.BoilOffPctPerDay / 100) * voyageDays
	deliveredM3 := q.CargoCapacityM3 - boilOffM3
	deliveredEnergy := deliveredM3 * LNGDensityTPerM3 * EnergyContentMMBtuPerT

	fuelTonnes := vessel.FuelConsumptionTPDLaden * voyageDays
	fuelCost := fuelTonnes * q.FuelPriceUSDT
	charterCost := q.FreightRateUSDDay * voyageDays

	emissionsTCO2 := fuelTonnes * ref.Carbon.CO2Factor(q.FuelType)
	carbonCost := emissionsTCO2 * q.EUAPriceUSDT

	return VoyageDetails{
		DistanceNM:           route.DistanceNM,
		VoyageDays:           voyageDays,
		BoilOffM3:            boilOffM3,
		DeliveredCargoM3:     deliveredM3,
		DeliveredEnergyMMBtu: deliveredEnergy,
		FuelConsumedTonnes:   fuelTonnes,
		FuelCostUSD:          fuelCost,
		TimeCharterCostUSD:   charterCost,
		CarbonCostUSD:        carbonCost,
		TotalVoyageCostUSD:   fuelCost + charterCost + carbonCost,
	}, nil
}
