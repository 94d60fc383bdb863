package decision

import (
	"math"

	"lng-diversion/internal/model"
)

// HedgeLeg is one directional paper leg of the spread hedge.
type HedgeLeg struct {
	Side       string // "BUY" or "SELL"
	Instrument string // benchmark label, e.g. "JKM"
	Lots       int
}

// EvaluateQuery is the full input set for one end-to-end evaluation.
type EvaluateQuery struct {
	model.CompareQuery

	InstrumentA string // paper benchmark at destination A, e.g. "TTF"
	InstrumentB string // paper benchmark at destination B, e.g. "JKM"
	CoveragePct float64
}

// TradePack is the complete, typed result of one evaluation: inputs, the
// netback per destination, the decision and the hedge legs.
type TradePack struct {
	Inputs       EvaluateQuery
	DestinationA model.NetbackResult
	DestinationB model.NetbackResult
	Decision     Result
	HedgeLegs    []HedgeLeg
}

// Evaluate runs the whole pipeline for one cargo: both netbacks, the
// decision rule and hedge sizing.
//
// Hedge energy is the larger delivered energy of the two legs scaled by the
// coverage ratio. Sizing off the max keeps the paper position conservative
// relative to whichever destination the cargo ends up at.
func Evaluate(ref model.RefData, q EvaluateQuery, p Params) (TradePack, error) {
	if q.CoveragePct < 0 || q.CoveragePct > 1 {
		return TradePack{}, &model.InvalidConfigError{Param: "coverage_pct", Msg: "must be in [0,1]"}
	}

	a, b, err := model.CompareNetbacks(ref, q.CompareQuery)
	if err != nil {
		return TradePack{}, err
	}

	hedgeEnergy := math.Max(a.DeliveredEnergyMMBtu, b.DeliveredEnergyMMBtu) * q.CoveragePct

	res, err := Decide(a.NetbackUSD, b.NetbackUSD, hedgeEnergy, p)
	if err != nil {
		return TradePack{}, err
	}

	return TradePack{
		Inputs:       q,
		DestinationA: a,
		DestinationB: b,
		Decision:     res,
		HedgeLegs:    res.HedgeLegs(q.InstrumentA, q.InstrumentB),
	}, nil
}

// HedgeLegs returns the paper legs for a result. Legs exist only on DIVERT:
// long the divert-market benchmark and short the origin benchmark, locking
// the spread the physical cargo is moving onto. A KEEP carries no hedge.
func (r Result) HedgeLegs(instrumentA, instrumentB string) []HedgeLeg {
	if r.Decision != Divert {
		return nil
	}
	return []HedgeLeg{
		{Side: "BUY", Instrument: instrumentB, Lots: r.LotsB},
		{Side: "SELL", Instrument: instrumentA, Lots: r.LotsA},
	}
}
