package models

// DecideResponse is the trade pack returned by POST /api/v1/decide.
type DecideResponse struct {
	RunID        string          `json:"run_id,omitempty"`
	AsOf         string          `json:"as_of"`
	Decision     string          `json:"decision"`
	DestinationA NetbackResponse `json:"destination_a"`
	DestinationB NetbackResponse `json:"destination_b"`
	Economics    Economics       `json:"economics"`
	Hedge        *HedgeResponse  `json:"hedge,omitempty"`
}

// NetbackResponse is one destination's netback decomposition.
type NetbackResponse struct {
	Destination     string  `json:"destination"`
	VoyageDays      float64 `json:"voyage_days"`
	DeliveredMMBtu  float64 `json:"delivered_energy_mmbtu"`
	RevenueUSD      float64 `json:"revenue_usd"`
	VoyageCostUSD   float64 `json:"voyage_cost_usd"`
	CarbonCostUSD   float64 `json:"carbon_cost_usd"`
	NetbackUSD      float64 `json:"netback_usd"`
	NetbackUSDMMBtu float64 `json:"netback_usd_mmbtu"`
}

// Economics carries the decision-rule arithmetic.
type Economics struct {
	DeltaNetbackRawUSD float64 `json:"delta_netback_raw_usd"`
	DeltaNetbackAdjUSD float64 `json:"delta_netback_adj_usd"`
	BasisHaircutPct    float64 `json:"basis_haircut_pct"`
	OpsBufferUSD       float64 `json:"ops_buffer_usd"`
	DecisionBufferUSD  float64 `json:"decision_buffer_usd"`
}

// HedgeResponse is present only on DIVERT.
type HedgeResponse struct {
	HedgeEnergyMMBtu float64       `json:"hedge_energy_mmbtu"`
	Legs             []LegResponse `json:"legs"`
}

type LegResponse struct {
	Side       string `json:"side"`
	Instrument string `json:"instrument"`
	Lots       int    `json:"lots"`
}

// StressResponse is the stress battery returned by POST /api/v1/stress.
type StressResponse struct {
	BaseDecision          string             `json:"base_decision"`
	BaseDeltaAdjUSD       float64            `json:"base_delta_netback_adj_usd"`
	Scenarios             []ScenarioResponse `json:"scenarios"`
	WorstCasePnLImpactUSD float64            `json:"worst_case_pnl_impact_usd"`
	ScenariosCausingFlip  []string           `json:"scenarios_causing_decision_flip"`
}

type ScenarioResponse struct {
	Name                string  `json:"name"`
	SpreadShockUSD      float64 `json:"spread_shock_usd"`
	FreightShockUSDDay  float64 `json:"freight_shock_usd_day"`
	EUAShockUSD         float64 `json:"eua_shock_usd"`
	StressedDeltaAdjUSD float64 `json:"stressed_delta_netback_adj_usd"`
	PnLImpactUSD        float64 `json:"pnl_impact_usd"`
	StressedDecision    string  `json:"stressed_decision"`
	DecisionFlipped     bool    `json:"decision_flipped"`
}

// BacktestResponse is returned by POST /api/v1/backtest.
type BacktestResponse struct {
	RunID       string                `json:"run_id,omitempty"`
	Summary     BacktestSummary       `json:"summary"`
	EquityCurve []EquityPointResponse `json:"equity_curve,omitempty"`
	Ledger      []LedgerRowResponse   `json:"ledger,omitempty"`
}

type BacktestSummary struct {
	TotalObservations int      `json:"total_observations"`
	TriggeredTrades   int      `json:"triggered_trades"`
	HitRatePct        float64  `json:"hit_rate_pct"`
	AverageUpliftUSD  float64  `json:"average_uplift_usd"`
	TotalUpliftUSD    float64  `json:"total_uplift_usd"`
	MaxDrawdownUSD    float64  `json:"max_drawdown_usd"`
	SharpeRatio       *float64 `json:"sharpe_ratio"`
}

type EquityPointResponse struct {
	Date             string  `json:"date"`
	PnLUSD           float64 `json:"pnl_usd"`
	CumulativePnLUSD float64 `json:"cumulative_pnl_usd"`
}

type LedgerRowResponse struct {
	Date        string  `json:"date"`
	Decision    string  `json:"decision"`
	DeltaRawUSD float64 `json:"delta_raw_usd"`
	DeltaAdjUSD float64 `json:"delta_adj_usd"`
	NetbackAUSD float64 `json:"netback_a_usd"`
	NetbackBUSD float64 `json:"netback_b_usd"`
}

// RouteInfo describes one reference route.
type RouteInfo struct {
	LoadPort      string  `json:"load_port"`
	DischargePort string  `json:"discharge_port"`
	DistanceNM    float64 `json:"distance_nm"`
}

// VesselInfo describes one reference vessel class.
type VesselInfo struct {
	VesselClass               string  `json:"vessel_class"`
	CargoCapacityM3           float64 `json:"cargo_capacity_m3"`
	LadenSpeedKn              float64 `json:"laden_speed_kn"`
	BallastSpeedKn            float64 `json:"ballast_speed_kn"`
	BoilOffPctPerDay          float64 `json:"boil_off_pct_per_day"`
	FuelConsumptionTPDLaden   float64 `json:"fuel_consumption_tpd_laden"`
	FuelConsumptionTPDBallast float64 `json:"fuel_consumption_tpd_ballast"`
}

// RunInfo is one stored decision run.
type RunInfo struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"created_at"`
	Decision    string  `json:"decision"`
	NetbackAUSD float64 `json:"netback_a_usd"`
	NetbackBUSD float64 `json:"netback_b_usd"`
	DeltaAdjUSD float64 `json:"delta_adj_usd"`
	LotsA       int     `json:"lots_a"`
	LotsB       int     `json:"lots_b"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
