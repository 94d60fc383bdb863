package report

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/risk"
)

// JSON report shapes. These are the desk-facing artifacts; monetary values
// are rounded to cents on the way out, the engine keeps full precision.

type TradePackReport struct {
	Timestamp          string       `json:"timestamp"`
	Decision           string       `json:"decision"`
	NetbackAUSD        float64      `json:"netback_a_usd"`
	NetbackBUSD        float64      `json:"netback_b_usd"`
	DeltaNetbackRawUSD float64      `json:"delta_netback_raw_usd"`
	DeltaNetbackAdjUSD float64      `json:"delta_netback_adj_usd"`
	DecisionBufferUSD  float64      `json:"decision_buffer_usd"`
	BasisHaircutPct    float64      `json:"basis_haircut_pct"`
	OpsBufferUSD       float64      `json:"ops_buffer_usd"`
	Hedge              *HedgeReport `json:"hedge,omitempty"`
}

type HedgeReport struct {
	Legs             []LegReport `json:"legs"`
	HedgeEnergyMMBtu float64     `json:"hedge_energy_mmbtu"`
}

type LegReport struct {
	Side       string `json:"side"`
	Instrument string `json:"instrument"`
	Lots       int    `json:"lots"`
}

type RiskReport struct {
	BaseDecision          string           `json:"base_decision"`
	BaseDeltaAdjUSD       float64          `json:"base_delta_netback_adj_usd"`
	WorstCasePnLImpactUSD float64          `json:"worst_case_pnl_impact_usd"`
	ScenariosCausingFlip  []string         `json:"scenarios_causing_decision_flip"`
	Scenarios             []ScenarioReport `json:"stress_scenarios"`
}

type ScenarioReport struct {
	Name                string  `json:"scenario_name"`
	SpreadShockUSD      float64 `json:"spread_shock_usd"`
	FreightShockUSDDay  float64 `json:"freight_shock_usd_day"`
	EUAShockUSD         float64 `json:"eua_shock_usd"`
	PnLImpactUSD        float64 `json:"pnl_impact_usd"`
	StressedDeltaAdjUSD float64 `json:"stressed_delta_netback_adj_usd"`
	DecisionFlipped     bool    `json:"decision_flipped"`
	StressedDecision    string  `json:"stressed_decision"`
}

type BacktestReport struct {
	Summary     BacktestSummary `json:"backtest_summary"`
	EquityCurve []EquityRow     `json:"equity_curve"`
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

type EquityRow struct {
	Date             string  `json:"date"`
	CumulativePnLUSD float64 `json:"cumulative_pnl_usd"`
}

// SaveTradePack writes a timestamped trade-pack JSON into dir and returns
// the path.
func SaveTradePack(dir string, pack decision.TradePack) (string, error) {
	return save(dir, "trade_pack", BuildTradePackReport(pack, time.Now().UTC()))
}

// SaveRiskReport writes a timestamped risk-report JSON into dir.
func SaveRiskReport(dir string, pack risk.Pack) (string, error) {
	return save(dir, "risk_report", BuildRiskReport(pack))
}

// SaveBacktestReport writes a timestamped backtest-report JSON into dir,
// plus the equity curve and decision history as sibling CSVs.
func SaveBacktestReport(dir string, res backtest.Result) (string, error) {
	path, err := save(dir, "backtest_report", BuildBacktestReport(res))
	if err != nil {
		return "", err
	}
	ts := timestamp()
	curvePath := filepath.Join(dir, fmt.Sprintf("equity_curve_%s.csv", ts))
	if err := backtest.WriteEquityCurveCSV(curvePath, res.EquityCurve); err != nil {
		return "", err
	}
	historyPath := filepath.Join(dir, fmt.Sprintf("decision_history_%s.csv", ts))
	if err := backtest.WriteHistoryCSV(historyPath, res.History); err != nil {
		return "", err
	}
	return path, nil
}

// BuildTradePackReport flattens a trade pack into the desk report shape.
// The hedge section appears only on DIVERT.
func BuildTradePackReport(pack decision.TradePack, asOf time.Time) TradePackReport {
	r := TradePackReport{
		Timestamp:          asOf.Format(time.RFC3339),
		Decision:           string(pack.Decision.Decision),
		NetbackAUSD:        round2(pack.DestinationA.NetbackUSD),
		NetbackBUSD:        round2(pack.DestinationB.NetbackUSD),
		DeltaNetbackRawUSD: round2(pack.Decision.DeltaNetbackRawUSD),
		DeltaNetbackAdjUSD: round2(pack.Decision.DeltaNetbackAdjUSD),
		DecisionBufferUSD:  round2(pack.Decision.DecisionBufferUSD),
		BasisHaircutPct:    pack.Decision.BasisHaircutPct,
		OpsBufferUSD:       round2(pack.Decision.OpsBufferUSD),
	}
	if len(pack.HedgeLegs) > 0 {
		h := &HedgeReport{HedgeEnergyMMBtu: round2(pack.Decision.HedgeEnergyMMBtu)}
		for _, leg := range pack.HedgeLegs {
			h.Legs = append(h.Legs, LegReport{Side: leg.Side, Instrument: leg.Instrument, Lots: leg.Lots})
		}
		r.Hedge = h
	}
	return r
}

func BuildRiskReport(pack risk.Pack) RiskReport {
	r := RiskReport{
		BaseDecision:          string(pack.Base.Decision),
		BaseDeltaAdjUSD:       round2(pack.Base.DeltaNetbackAdjUSD),
		WorstCasePnLImpactUSD: round2(pack.WorstCasePnLImpactUSD),
		ScenariosCausingFlip:  pack.ScenariosCausingFlip,
	}
	for _, sr := range pack.Results {
		r.Scenarios = append(r.Scenarios, ScenarioReport{
			Name:                sr.Scenario.Name(),
			SpreadShockUSD:      sr.Scenario.SpreadShockUSD,
			FreightShockUSDDay:  sr.Scenario.FreightShockUSDDay,
			EUAShockUSD:         sr.Scenario.EUAShockUSD,
			PnLImpactUSD:        round2(sr.PnLImpactUSD),
			StressedDeltaAdjUSD: round2(sr.StressedDeltaAdjUSD),
			DecisionFlipped:     sr.DecisionChange,
			StressedDecision:    string(sr.StressedDecision),
		})
	}
	return r
}

func BuildBacktestReport(res backtest.Result) BacktestReport {
	m := res.Metrics
	r := BacktestReport{
		Summary: BacktestSummary{
			TotalObservations: m.TotalObservations,
			TriggeredTrades:   m.TriggeredTrades,
			HitRatePct:        round2(m.HitRate * 100),
			AverageUpliftUSD:  round2(m.AverageUpliftUSD),
			TotalUpliftUSD:    round2(m.TotalUpliftUSD),
			MaxDrawdownUSD:    round2(m.MaxDrawdownUSD),
			SharpeRatio:       m.SharpeRatio,
		},
	}
	for _, p := range res.EquityCurve {
		r.EquityCurve = append(r.EquityCurve, EquityRow{
			Date:             p.Date.Format("2006-01-02"),
			CumulativePnLUSD: round2(p.CumulativePnLUSD),
		})
	}
	return r
}

func save(dir, prefix string, v any) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, timestamp()))
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func timestamp() string {
	return time.Now().UTC().Format("20060102_150405")
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
