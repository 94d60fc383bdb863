package risk

import (
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
)

// Kind enumerates the fixed stress battery. The set and its names are part
// of the contract; only the shock magnitudes are configuration-driven.
type Kind int

const (
	SpreadCollapse Kind = iota
	SpreadWiden
	FreightSpike
	FreightDrop
	EUASpike
	CombinedAdverse

	numKinds
)

func (k Kind) Name() string {
	switch k {
	case SpreadCollapse:
		return "Spread Collapse"
	case SpreadWiden:
		return "Spread Widen"
	case FreightSpike:
		return "Freight Spike"
	case FreightDrop:
		return "Freight Drop"
	case EUASpike:
		return "EUA Spike"
	case CombinedAdverse:
		return "Combined Adverse"
	default:
		return "Unknown"
	}
}

// Shocks holds the configured shock magnitudes. All must be non-negative;
// direction is owned by the scenario, not the configuration.
type Shocks struct {
	SpreadUSD     float64
	FreightUSDDay float64
	EUAUSD        float64
}

func (s Shocks) Validate() error {
	if s.SpreadUSD < 0 {
		return &model.InvalidConfigError{Param: "stress_spread_usd", Msg: "must be >= 0"}
	}
	if s.FreightUSDDay < 0 {
		return &model.InvalidConfigError{Param: "stress_freight_usd_per_day", Msg: "must be >= 0"}
	}
	if s.EUAUSD < 0 {
		return &model.InvalidConfigError{Param: "stress_eua_usd", Msg: "must be >= 0"}
	}
	return nil
}

// Scenario is one named perturbation, applied additively to the B-price,
// the freight rate and the EUA price respectively.
type Scenario struct {
	Kind               Kind
	SpreadShockUSD     float64
	FreightShockUSDDay float64
	EUAShockUSD        float64
}

func (s Scenario) Name() string { return s.Kind.Name() }

// Scenarios expands the configured magnitudes into the six-scenario battery.
func Scenarios(s Shocks) [numKinds]Scenario {
	return [numKinds]Scenario{
		{Kind: SpreadCollapse, SpreadShockUSD: -s.SpreadUSD},
		{Kind: SpreadWiden, SpreadShockUSD: s.SpreadUSD},
		{Kind: FreightSpike, FreightShockUSDDay: s.FreightUSDDay},
		{Kind: FreightDrop, FreightShockUSDDay: -s.FreightUSDDay},
		{Kind: EUASpike, EUAShockUSD: s.EUAUSD},
		{Kind: CombinedAdverse, SpreadShockUSD: -s.SpreadUSD, FreightShockUSDDay: s.FreightUSDDay, EUAShockUSD: s.EUAUSD},
	}
}

// Result is the outcome of one stressed recomputation.
type Result struct {
	Scenario            Scenario
	BaseDeltaAdjUSD     float64
	StressedDeltaAdjUSD float64
	PnLImpactUSD        float64 // stressed minus base
	DecisionChange      bool
	BaseDecision        decision.Decision
	StressedDecision    decision.Decision
}

// Pack aggregates the whole stress battery against one base decision.
type Pack struct {
	Base                  decision.Result
	Results               []Result
	WorstCasePnLImpactUSD float64
	ScenariosCausingFlip  []string
}

// RunStressTest recomputes both netbacks and a fresh decision under each
// scenario, using the same rule parameters as the base case. Hedge sizing is
// held at the base hedge energy; the stress quantifies delta sensitivity,
// not resizing. Stateless and order-independent.
func RunStressTest(ref model.RefData, q model.CompareQuery, base decision.Result, p decision.Params, shocks Shocks) (Pack, error) {
	if err := shocks.Validate(); err != nil {
		return Pack{}, err
	}

	pack := Pack{Base: base}
	for _, sc := range Scenarios(shocks) {
		sq := q
		sq.PriceBUSDMMBtu += sc.SpreadShockUSD
		sq.FreightRateUSDDay += sc.FreightShockUSDDay
		sq.EUAPriceUSDT += sc.EUAShockUSD

		a, b, err := model.CompareNetbacks(ref, sq)
		if err != nil {
			return Pack{}, err
		}

		stressed, err := decision.Decide(a.NetbackUSD, b.NetbackUSD, base.HedgeEnergyMMBtu, p)
		if err != nil {
			return Pack{}, err
		}

		pack.Results = append(pack.Results, Result{
			Scenario:            sc,
			BaseDeltaAdjUSD:     base.DeltaNetbackAdjUSD,
			StressedDeltaAdjUSD: stressed.DeltaNetbackAdjUSD,
			PnLImpactUSD:        stressed.DeltaNetbackAdjUSD - base.DeltaNetbackAdjUSD,
			DecisionChange:      stressed.Decision != base.Decision,
			BaseDecision:        base.Decision,
			StressedDecision:    stressed.Decision,
		})
	}

	pack.WorstCasePnLImpactUSD = pack.Results[0].PnLImpactUSD
	for _, r := range pack.Results {
		if r.PnLImpactUSD < pack.WorstCasePnLImpactUSD {
			pack.WorstCasePnLImpactUSD = r.PnLImpactUSD
		}
		if r.DecisionChange {
			pack.ScenariosCausingFlip = append(pack.ScenariosCausingFlip, r.Scenario.Name())
		}
	}

	return pack, nil
}
