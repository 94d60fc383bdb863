package decision

import (
	"math"

	"lng-diversion/internal/model"
)

// Decision is the divert-or-keep verdict.
// Keep these values stable; they are written to CSV and SQLite.
type Decision string

const (
	Divert Decision = "DIVERT"
	Keep   Decision = "KEEP"
)

// DefaultLotMMBtu is the standard contract size used when a lot size is not
// configured.
const DefaultLotMMBtu = 10000.0

// Params are the decision-rule knobs. All of them are plain values; the rule
// itself is a pure function of its inputs.
type Params struct {
	BasisHaircutPct   float64 // fraction in [0,1]
	OpsBufferUSD      float64 // flat deduction for demurrage/operational friction
	DecisionBufferUSD float64 // minimum adjusted uplift required to divert
	LotSizeAMMBtu     float64 // contract size on benchmark A; 0 means default
	LotSizeBMMBtu     float64 // contract size on benchmark B; 0 means default
}

func (p Params) withDefaults() Params {
	if p.LotSizeAMMBtu == 0 {
		p.LotSizeAMMBtu = DefaultLotMMBtu
	}
	if p.LotSizeBMMBtu == 0 {
		p.LotSizeBMMBtu = DefaultLotMMBtu
	}
	return p
}

// Validate rejects parameters outside their domain before any computation
// runs. Values are never clamped.
func (p Params) Validate() error {
	if p.BasisHaircutPct < 0 || p.BasisHaircutPct > 1 {
		return &model.InvalidConfigError{Param: "basis_haircut_pct", Msg: "must be in [0,1]"}
	}
	if p.OpsBufferUSD <= 0 {
		return &model.InvalidConfigError{Param: "ops_buffer_usd", Msg: "must be > 0"}
	}
	if p.DecisionBufferUSD <= 0 {
		return &model.InvalidConfigError{Param: "decision_buffer_usd", Msg: "must be > 0"}
	}
	if p.LotSizeAMMBtu <= 0 {
		return &model.InvalidConfigError{Param: "lot_a_mmbtu", Msg: "must be > 0"}
	}
	if p.LotSizeBMMBtu <= 0 {
		return &model.InvalidConfigError{Param: "lot_b_mmbtu", Msg: "must be > 0"}
	}
	return nil
}

// Result is the outcome of the decision rule plus hedge sizing.
type Result struct {
	DeltaNetbackRawUSD float64
	DeltaNetbackAdjUSD float64
	BasisHaircutPct    float64
	OpsBufferUSD       float64
	DecisionBufferUSD  float64
	Decision           Decision
	HedgeEnergyMMBtu   float64
	LotsA              int
	LotsB              int
}

// Decide applies the diversion rule:
//
//	deltaRaw = netbackB - netbackA
//	deltaAdj = deltaRaw * (1 - haircut) - opsBuffer
//	DIVERT iff deltaAdj >= decisionBuffer, else KEEP
//
// The threshold comparison is inclusive: a delta exactly equal to the buffer
// diverts. Lot counts are floored, never rounded up, so the hedge can only
// undershoot the physical exposure.
func Decide(netbackAUSD, netbackBUSD, hedgeEnergyMMBtu float64, p Params) (Result, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	deltaRaw := netbackBUSD - netbackAUSD
	deltaAdj := deltaRaw*(1-p.BasisHaircutPct) - p.OpsBufferUSD

	verdict := Keep
	if deltaAdj >= p.DecisionBufferUSD {
		verdict = Divert
	}

	return Result{
		DeltaNetbackRawUSD: deltaRaw,
		DeltaNetbackAdjUSD: deltaAdj,
		BasisHaircutPct:    p.BasisHaircutPct,
		OpsBufferUSD:       p.OpsBufferUSD,
		DecisionBufferUSD:  p.DecisionBufferUSD,
		Decision:           verdict,
		HedgeEnergyMMBtu:   hedgeEnergyMMBtu,
		LotsA:              lotsFor(hedgeEnergyMMBtu, p.LotSizeAMMBtu),
		LotsB:              lotsFor(hedgeEnergyMMBtu, p.LotSizeBMMBtu),
	}, nil
}

// lotsFor floors the energy/lot quotient. A degenerate negative hedge energy
// sizes to zero lots rather than a negative hedge.
func lotsFor(energyMMBtu, lotMMBtu float64) int {
	lots := int(math.Floor(energyMMBtu / lotMMBtu))
	if lots < 0 {
		return 0
	}
	return lots
}
