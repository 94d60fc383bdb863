package models

// DecideRequest asks for one netback comparison and diversion decision.
// Market scalars are optional; zero values fall back to the configured
// proxy snapshot.
type DecideRequest struct {
	Voyage VoyageRequest  `json:"voyage"`
	Market *MarketRequest `json:"market,omitempty"`
	Params *ParamsRequest `json:"params,omitempty"`
	Save   bool           `json:"save,omitempty"`
}

// StressRequest runs the decision plus the stress battery. Shock sizes
// are optional overrides of the configured magnitudes.
type StressRequest struct {
	Voyage VoyageRequest  `json:"voyage"`
	Market *MarketRequest `json:"market,omitempty"`
	Params *ParamsRequest `json:"params,omitempty"`
	Shocks *ShocksRequest `json:"shocks,omitempty"`
}

// BacktestRequest replays the decision rule over the historical series.
type BacktestRequest struct {
	Voyage        VoyageRequest  `json:"voyage"`
	Params        *ParamsRequest `json:"params,omitempty"`
	HistoryFile   string         `json:"history_file,omitempty"`
	IncludeCurve  bool           `json:"include_equity_curve,omitempty"`
	IncludeLedger bool           `json:"include_ledger,omitempty"`
	Save          bool           `json:"save,omitempty"`
}

// VoyageRequest identifies the cargo and the two candidate destinations.
// Empty fields fall back to the configured voyage.
type VoyageRequest struct {
	LoadPort        string  `json:"load_port,omitempty"`
	PortA           string  `json:"port_a,omitempty"`
	PortB           string  `json:"port_b,omitempty"`
	DestinationA    string  `json:"destination_a,omitempty"`
	DestinationB    string  `json:"destination_b,omitempty"`
	InstrumentA     string  `json:"instrument_a,omitempty"`
	InstrumentB     string  `json:"instrument_b,omitempty"`
	VesselClass     string  `json:"vessel_class,omitempty"`
	CargoCapacityM3 float64 `json:"cargo_capacity_m3,omitempty"`
	FuelType        string  `json:"fuel_type,omitempty"`
}

// MarketRequest overrides individual proxy market scalars.
type MarketRequest struct {
	PriceAUSDMMBtu    float64 `json:"price_a_usd_mmbtu,omitempty"`
	PriceBUSDMMBtu    float64 `json:"price_b_usd_mmbtu,omitempty"`
	FreightRateUSDDay float64 `json:"freight_usd_day,omitempty"`
	FuelPriceUSDT     float64 `json:"fuel_usd_per_t,omitempty"`
	EUAPriceUSDT      float64 `json:"eua_usd_per_tco2,omitempty"`
}

// ParamsRequest overrides the decision-rule knobs. Pointers distinguish
// "not supplied" from a deliberate zero.
type ParamsRequest struct {
	BasisHaircutPct   *float64 `json:"basis_haircut_pct,omitempty"`
	OpsBufferUSD      *float64 `json:"ops_buffer_usd,omitempty"`
	DecisionBufferUSD *float64 `json:"decision_buffer_usd,omitempty"`
	CoveragePct       *float64 `json:"coverage_pct,omitempty"`
	LotAMMBtu         *float64 `json:"lot_a_mmbtu,omitempty"`
	LotBMMBtu         *float64 `json:"lot_b_mmbtu,omitempty"`
}

// ShocksRequest overrides the stress shock magnitudes.
type ShocksRequest struct {
	SpreadUSD     *float64 `json:"spread_usd,omitempty"`
	FreightUSDDay *float64 `json:"freight_usd_day,omitempty"`
	EUAUSD        *float64 `json:"eua_usd,omitempty"`
}
