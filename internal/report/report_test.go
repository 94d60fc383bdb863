package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/data"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
	"lng-diversion/internal/risk"
)

func testPack(verdict decision.Decision) decision.TradePack {
	res := decision.Result{
		Decision:           verdict,
		DeltaNetbackRawUSD: 7_736_686.12,
		DeltaNetbackAdjUSD: 7_299_851.81,
		BasisHaircutPct:    0.05,
		OpsBufferUSD:       50000,
		DecisionBufferUSD:  500000,
		HedgeEnergyMMBtu:   3_222_480,
		LotsA:              322,
		LotsB:              322,
	}
	return decision.TradePack{
		Inputs: decision.EvaluateQuery{
			CompareQuery: model.CompareQuery{
				LoadPort: "US_Gulf", PortA: "Rotterdam", PortB: "Tokyo",
				VesselClass: "TFDE", CargoCapacityM3: 174000,
			},
			InstrumentA: "TTF",
			InstrumentB: "JKM",
		},
		DestinationA: model.NetbackResult{Destination: "Europe", NetbackUSD: 141_723_271},
		DestinationB: model.NetbackResult{Destination: "Asia", NetbackUSD: 149_459_957},
		Decision:     res,
		HedgeLegs:    res.HedgeLegs("TTF", "JKM"),
	}
}

func TestBuildTradePackReport(t *testing.T) {
	asOf := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	r := BuildTradePackReport(testPack(decision.Divert), asOf)

	assert.Equal(t, "DIVERT", r.Decision)
	assert.Equal(t, asOf.Format(time.RFC3339), r.Timestamp)
	assert.InDelta(t, 7_736_686.12, r.DeltaNetbackRawUSD, 0.005)
	require.NotNil(t, r.Hedge)
	require.Len(t, r.Hedge.Legs, 2)
	assert.Equal(t, "BUY", r.Hedge.Legs[0].Side)
}

func TestBuildTradePackReportNoHedgeOnKeep(t *testing.T) {
	r := BuildTradePackReport(testPack(decision.Keep), time.Now())
	assert.Nil(t, r.Hedge)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "\"hedge\"")
}

func TestSaveTradePackWritesJSON(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveTradePack(dir, testPack(decision.Divert))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got TradePackReport
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "DIVERT", got.Decision)
}

func TestSaveBacktestReportWritesCurveCSV(t *testing.T) {
	dir := t.TempDir()
	res := backtest.Result{
		Metrics: backtest.Metrics{TotalObservations: 2, TriggeredTrades: 1, HitRate: 0.5},
		EquityCurve: []backtest.EquityPoint{
			{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), PnLUSD: 100, CumulativePnLUSD: 100},
			{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), PnLUSD: 0, CumulativePnLUSD: 100},
		},
	}

	_, err := SaveBacktestReport(dir, res)
	require.NoError(t, err)

	entries, err := filepath.Glob(filepath.Join(dir, "equity_curve_*.csv"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConsoleTradeNote(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	snap := data.ProxySnapshot(data.SnapshotInputs{
		PriceAUSDMMBtu: 35.69, PriceBUSDMMBtu: 38.44,
		FreightUSDDay: 85000, FuelUSDPerT: 583, EUAUSDPerTCO2: 74.40,
	}, "2025-06-04")

	c.TradeNote(testPack(decision.Divert), snap)

	out := buf.String()
	assert.Contains(t, out, "DIVERT")
	assert.Contains(t, out, "Europe")
	assert.Contains(t, out, "JKM")
	assert.Contains(t, out, "322")
}

func TestConsoleStressTable(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.StressTable(risk.Pack{
		Base: decision.Result{Decision: decision.Divert, DeltaNetbackAdjUSD: 7_299_852},
		Results: []risk.Result{
			{
				Scenario:         risk.Scenario{Kind: risk.SpreadCollapse, SpreadShockUSD: -2},
				PnLImpactUSD:     -7_579_005,
				DecisionChange:   true,
				StressedDecision: decision.Keep,
			},
		},
		WorstCasePnLImpactUSD: -7_579_005,
		ScenariosCausingFlip:  []string{"Spread Collapse"},
	})

	out := buf.String()
	assert.Contains(t, out, "Spread Collapse")
	assert.Contains(t, out, "FLIP")
}

func TestConsoleBacktestSummaryInsufficientSharpe(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	c.BacktestSummary(backtest.Result{Metrics: backtest.Metrics{TotalObservations: 3}})
	assert.Contains(t, buf.String(), "n/a (insufficient data)")
}
