package model

// Route is one row of the routes reference table: a (load, discharge) port
// pair and its distance in nautical miles.
type Route struct {
	LoadPort      string
	DischargePort string
	DistanceNM    float64
}

// Vessel describes one vessel class.
// Units:
// - CargoCapacityM3: m³
// - speeds: knots
// - BoilOffPctPerDay: percent per day (0.10 means 0.10%/day, not a fraction)
// - fuel consumption: tonnes per day
type Vessel struct {
	VesselClass               string
	CargoCapacityM3           float64
	LadenSpeedKn              float64
	BallastSpeedKn            float64
	BoilOffPctPerDay          float64
	FuelConsumptionTPDLaden   float64
	FuelConsumptionTPDBallast float64
}

// CarbonParams is the static carbon scalar set keyed by parameter name.
type CarbonParams map[string]float64

// Parameter keys expected in carbon_params.csv.
const (
	ParamEUAPriceUSDPerT = "EUA_price_USD_per_t"
	ParamCO2FactorVLSFO  = "CO2_factor_VLSFO_tCO2_per_t_fuel"
	ParamCO2FactorLNG    = "CO2_factor_LNG_tCO2_per_t_fuel"
)

// FuelType selects which CO2 emission factor applies to voyage fuel burn.
type FuelType string

const (
	FuelVLSFO FuelType = "VLSFO"
	FuelLNG   FuelType = "LNG" // boil-off burned as fuel
)

// CO2Factor returns the emission factor (tCO2 per tonne fuel) for a fuel type.
func (c CarbonParams) CO2Factor(ft FuelType) float64 {
	if ft == FuelLNG {
		return c[ParamCO2FactorLNG]
	}
	return c[ParamCO2FactorVLSFO]
}

// RefData bundles the static reference tables. It is read-only after load and
// safe to share across concurrent evaluations without locking.
type RefData struct {
	Routes  []Route
	Vessels []Vessel
	Carbon  CarbonParams
}

// RouteFor returns the route for an exact (load, discharge) pair.
func (r RefData) RouteFor(loadPort, dischargePort string) (Route, error) {
	for _, rt := range r.Routes {
		if rt.LoadPort == loadPort && rt.DischargePort == dischargePort {
			return rt, nil
		}
	}
	return Route{}, &NotFoundError{Kind: "route", Key: loadPort + " -> " + dischargePort}
}

// VesselFor returns the vessel definition for a class.
func (r RefData) VesselFor(class string) (Vessel, error) {
	for _, v := range r.Vessels {
		if v.VesselClass == class {
			return v, nil
		}
	}
	return Vessel{}, &NotFoundError{Kind: "vessel", Key: class}
}
