package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
)

func testRef() model.RefData {
	return model.RefData{
		Routes: []model.Route{
			{LoadPort: "US_Gulf", DischargePort: "Rotterdam", DistanceNM: 5000},
			{LoadPort: "US_Gulf", DischargePort: "Tokyo", DistanceNM: 9500},
		},
		Vessels: []model.Vessel{
			{
				VesselClass:               "TFDE",
				CargoCapacityM3:           174000,
				LadenSpeedKn:              19.5,
				BallastSpeedKn:            19.0,
				BoilOffPctPerDay:          0.10,
				FuelConsumptionTPDLaden:   130,
				FuelConsumptionTPDBallast: 115,
			},
		},
		Carbon: model.CarbonParams{
			model.ParamEUAPriceUSDPerT: 74.40,
			model.ParamCO2FactorVLSFO:  3.114,
			model.ParamCO2FactorLNG:    2.750,
		},
	}
}

func testQuery() model.CompareQuery {
	return model.CompareQuery{
		LoadPort:          "US_Gulf",
		PortA:             "Rotterdam",
		PortB:             "Tokyo",
		DestinationA:      "Europe",
		DestinationB:      "Asia",
		VesselClass:       "TFDE",
		CargoCapacityM3:   174000,
		PriceAUSDMMBtu:    35.69,
		PriceBUSDMMBtu:    38.44,
		FreightRateUSDDay: 85000,
		FuelPriceUSDT:     583,
		EUAPriceUSDT:      74.40,
		FuelType:          model.FuelVLSFO,
	}
}

func testParams() decision.Params {
	return decision.Params{
		BasisHaircutPct:   0.05,
		OpsBufferUSD:      50000,
		DecisionBufferUSD: 500000,
	}
}

func testShocks() Shocks {
	return Shocks{SpreadUSD: 2.0, FreightUSDDay: 25000, EUAUSD: 15}
}

func baseDecision(t *testing.T, q model.CompareQuery) decision.Result {
	t.Helper()
	a, b, err := model.CompareNetbacks(testRef(), q)
	require.NoError(t, err)
	res, err := decision.Decide(a.NetbackUSD, b.NetbackUSD, 3_200_000, testParams())
	require.NoError(t, err)
	return res
}

func TestScenariosCoverTheFullBattery(t *testing.T) {
	scenarios := Scenarios(testShocks())

	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"Spread Collapse",
		"Spread Widen",
		"Freight Spike",
		"Freight Drop",
		"EUA Spike",
		"Combined Adverse",
	}, names)

	// Direction is owned by the scenario.
	assert.Equal(t, -2.0, scenarios[0].SpreadShockUSD)
	assert.Equal(t, 2.0, scenarios[1].SpreadShockUSD)
	assert.Equal(t, 25000.0, scenarios[2].FreightShockUSDDay)
	assert.Equal(t, -25000.0, scenarios[3].FreightShockUSDDay)
	assert.Equal(t, 15.0, scenarios[4].EUAShockUSD)

	combined := scenarios[5]
	assert.Equal(t, -2.0, combined.SpreadShockUSD)
	assert.Equal(t, 25000.0, combined.FreightShockUSDDay)
	assert.Equal(t, 15.0, combined.EUAShockUSD)
}

func TestRunStressTestFlipsOnSpreadCollapse(t *testing.T) {
	q := testQuery()
	base := baseDecision(t, q)
	require.Equal(t, decision.Divert, base.Decision)

	pack, err := RunStressTest(testRef(), q, base, testParams(), testShocks())
	require.NoError(t, err)
	require.Len(t, pack.Results, 6)

	byName := map[string]Result{}
	for _, r := range pack.Results {
		byName[r.Scenario.Name()] = r
	}

	// A $2 collapse wipes out a ~$7.7M raw uplift.
	assert.Equal(t, decision.Keep, byName["Spread Collapse"].StressedDecision)
	assert.True(t, byName["Spread Collapse"].DecisionChange)
	assert.Negative(t, byName["Spread Collapse"].PnLImpactUSD)

	assert.Equal(t, decision.Divert, byName["Spread Widen"].StressedDecision)
	assert.Positive(t, byName["Spread Widen"].PnLImpactUSD)

	// Freight hits the longer leg harder, not enough to flip here.
	assert.Negative(t, byName["Freight Spike"].PnLImpactUSD)
	assert.Equal(t, decision.Divert, byName["Freight Spike"].StressedDecision)
	assert.Positive(t, byName["Freight Drop"].PnLImpactUSD)

	assert.Negative(t, byName["EUA Spike"].PnLImpactUSD)
	assert.Equal(t, decision.Divert, byName["EUA Spike"].StressedDecision)

	combined := byName["Combined Adverse"]
	assert.True(t, combined.DecisionChange)
	assert.Equal(t, []string{"Spread Collapse", "Combined Adverse"}, pack.ScenariosCausingFlip)

	// Combined stacks every adverse shock, so it is the worst case.
	assert.Equal(t, combined.PnLImpactUSD, pack.WorstCasePnLImpactUSD)
	for _, r := range pack.Results {
		assert.GreaterOrEqual(t, r.PnLImpactUSD, pack.WorstCasePnLImpactUSD)
	}
}

func TestRunStressTestKeepFlipsToDivertOnWiden(t *testing.T) {
	q := testQuery()
	q.PriceBUSDMMBtu = q.PriceAUSDMMBtu + 0.50
	base := baseDecision(t, q)
	require.Equal(t, decision.Keep, base.Decision)

	pack, err := RunStressTest(testRef(), q, base, testParams(), testShocks())
	require.NoError(t, err)

	for _, r := range pack.Results {
		if r.Scenario.Kind == SpreadWiden {
			assert.Equal(t, decision.Divert, r.StressedDecision)
			assert.True(t, r.DecisionChange)
		}
	}
	assert.Contains(t, pack.ScenariosCausingFlip, "Spread Widen")
}

func TestRunStressTestPreservesBase(t *testing.T) {
	q := testQuery()
	base := baseDecision(t, q)

	pack, err := RunStressTest(testRef(), q, base, testParams(), testShocks())
	require.NoError(t, err)
	assert.Equal(t, base, pack.Base)
}

func TestRunStressTestIsOrderIndependent(t *testing.T) {
	q := testQuery()
	base := baseDecision(t, q)

	first, err := RunStressTest(testRef(), q, base, testParams(), testShocks())
	require.NoError(t, err)
	second, err := RunStressTest(testRef(), q, base, testParams(), testShocks())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShocksValidation(t *testing.T) {
	cases := []struct {
		name   string
		shocks Shocks
		param  string
	}{
		{"negative spread", Shocks{SpreadUSD: -1}, "stress_spread_usd"},
		{"negative freight", Shocks{FreightUSDDay: -1}, "stress_freight_usd_per_day"},
		{"negative eua", Shocks{EUAUSD: -1}, "stress_eua_usd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.shocks.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.param)
		})
	}

	assert.NoError(t, Shocks{}.Validate())
}

func TestRunStressTestRejectsNegativeShocks(t *testing.T) {
	q := testQuery()
	base := baseDecision(t, q)
	_, err := RunStressTest(testRef(), q, base, testParams(), Shocks{SpreadUSD: -2})
	require.Error(t, err)
}
