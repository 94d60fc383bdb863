package backtest

import (
	"fmt"

	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
)

// StaticQuery fixes the cargo, routes and hedge instruments across a
// historical run; the per-day market scalars come from each observation.
type StaticQuery struct {
	LoadPort     string
	PortA        string
	PortB        string
	DestinationA string
	DestinationB string
	InstrumentA  string
	InstrumentB  string

	VesselClass     string
	CargoCapacityM3 float64
	FuelType        model.FuelType
	CoveragePct     float64
}

// RunSeries runs the full pipeline once per historical observation and
// aggregates the resulting decisions. Observations must already be in
// chronological order. Each row is an independent pure computation over the
// shared read-only reference data.
func RunSeries(ref model.RefData, obs []model.MarketObservation, q StaticQuery, p decision.Params) (Result, error) {
	if len(obs) == 0 {
		return Result{}, ErrNoObservations
	}

	days := make([]DayDecision, 0, len(obs))
	for _, o := range obs {
		pack, err := decision.Evaluate(ref, decision.EvaluateQuery{
			CompareQuery: model.CompareQuery{
				LoadPort:          q.LoadPort,
				PortA:             q.PortA,
				PortB:             q.PortB,
				DestinationA:      q.DestinationA,
				DestinationB:      q.DestinationB,
				VesselClass:       q.VesselClass,
				CargoCapacityM3:   q.CargoCapacityM3,
				PriceAUSDMMBtu:    o.PriceAUSDMMBtu,
				PriceBUSDMMBtu:    o.PriceBUSDMMBtu,
				FreightRateUSDDay: o.FreightRateUSDDay,
				FuelPriceUSDT:     o.FuelPriceUSDT,
				EUAPriceUSDT:      o.EUAPriceUSDT,
				FuelType:          q.FuelType,
			},
			InstrumentA: q.InstrumentA,
			InstrumentB: q.InstrumentB,
			CoveragePct: q.CoveragePct,
		}, p)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate %s: %w", o.Date.Format("2006-01-02"), err)
		}

		days = append(days, DayDecision{
			Date:        o.Date,
			Decision:    pack.Decision.Decision,
			DeltaRawUSD: pack.Decision.DeltaNetbackRawUSD,
			DeltaAdjUSD: pack.Decision.DeltaNetbackAdjUSD,
			NetbackAUSD: pack.DestinationA.NetbackUSD,
			NetbackBUSD: pack.DestinationB.NetbackUSD,
		})
	}

	return Run(days)
}
