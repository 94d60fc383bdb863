package backtest

import (
	"time"

	"lng-diversion/internal/decision"
)

// DayDecision is one chronological observation of the decision pipeline:
// the per-day outputs the backtester aggregates.
type DayDecision struct {
	Date        time.Time
	Decision    decision.Decision
	DeltaRawUSD float64
	DeltaAdjUSD float64
	NetbackAUSD float64
	NetbackBUSD float64
}

// EquityPoint is one point of the cumulative P&L curve. PnL is the adjusted
// uplift when the day triggered, zero otherwise (no trade, no P&L).
type EquityPoint struct {
	Date             time.Time
	PnLUSD           float64
	CumulativePnLUSD float64
}

// Metrics summarizes a historical run of the decision rule.
type Metrics struct {
	TotalObservations int
	TriggeredTrades   int
	HitRate           float64
	AverageUpliftUSD  float64 // mean adjusted uplift over triggered days only
	TotalUpliftUSD    float64
	MaxDrawdownUSD    float64
	SharpeRatio       *float64 // nil means insufficient data, never 0 or NaN
}

// Result is the full backtest artifact: metrics plus the equity curve and
// the decision history it was derived from.
type Result struct {
	Metrics     Metrics
	EquityCurve []EquityPoint
	History     []DayDecision
}
