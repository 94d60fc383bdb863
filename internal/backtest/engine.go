package backtest

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"lng-diversion/internal/decision"
)

// ErrNoObservations is returned when a backtest is invoked with an empty
// series.
var ErrNoObservations = errors.New("backtest: no observations")

const (
	minObsForSharpe    = 5
	tradingDaysPerYear = 252
)

// Run aggregates a chronologically ordered series of daily decisions.
//
// Triggered means decision == DIVERT. Uplift metrics are conditional on
// triggering: non-triggered days contribute zero P&L, so they measure what
// the rule earned when it fired, not unconditional expectancy. The
// cumulative-sum and drawdown passes are order-sensitive; the caller owns
// the chronological sort.
func Run(days []DayDecision) (Result, error) {
	if len(days) == 0 {
		return Result{}, ErrNoObservations
	}

	pnl := make([]float64, len(days))
	curve := make([]EquityPoint, len(days))
	triggered := 0
	totalUplift := 0.0
	cum := 0.0

	for i, d := range days {
		if d.Decision == decision.Divert {
			triggered++
			totalUplift += d.DeltaAdjUSD
			pnl[i] = d.DeltaAdjUSD
		}
		cum += pnl[i]
		curve[i] = EquityPoint{Date: d.Date, PnLUSD: pnl[i], CumulativePnLUSD: cum}
	}

	m := Metrics{
		TotalObservations: len(days),
		TriggeredTrades:   triggered,
		HitRate:           float64(triggered) / float64(len(days)),
		TotalUpliftUSD:    totalUplift,
		MaxDrawdownUSD:    maxDrawdown(curve),
	}
	if triggered > 0 {
		m.AverageUpliftUSD = totalUplift / float64(triggered)
	}
	if s, ok := sharpe(pnl); ok {
		m.SharpeRatio = &s
	}

	return Result{Metrics: m, EquityCurve: curve, History: days}, nil
}

// maxDrawdown is the largest peak-to-trough decline of the cumulative P&L,
// a non-negative number; zero for a monotonically non-decreasing curve.
func maxDrawdown(curve []EquityPoint) float64 {
	peak := math.Inf(-1)
	maxDD := 0.0
	for _, p := range curve {
		if p.CumulativePnLUSD > peak {
			peak = p.CumulativePnLUSD
		}
		if dd := peak - p.CumulativePnLUSD; dd > maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// sharpe annualizes mean/stddev of daily P&L across all observations,
// triggered or not. Reported only with at least five observations and
// nonzero dispersion; otherwise callers must treat it as "insufficient
// data", not zero.
func sharpe(pnl []float64) (float64, bool) {
	if len(pnl) < minObsForSharpe {
		return 0, false
	}
	sd := stat.StdDev(pnl, nil)
	if sd == 0 || math.IsNaN(sd) {
		return 0, false
	}
	return stat.Mean(pnl, nil) / sd * math.Sqrt(tradingDaysPerYear), true
}
