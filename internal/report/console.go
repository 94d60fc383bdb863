package report

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/data"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/risk"
)

// Console renders desk-readable summaries of the engine outputs.
type Console struct {
	out io.Writer
}

func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter builds a console for tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// TradeNote prints the diversion trade note: market snapshot, netback
// comparison, the verdict and any hedge legs.
func (c *Console) TradeNote(pack decision.TradePack, snap data.Snapshot) {
	q := pack.Inputs
	fmt.Fprintf(c.out, "LNG DIVERSION TRADE NOTE\n")
	fmt.Fprintf(c.out, "Route: %s -> %s (%s) vs %s (%s)\n",
		q.LoadPort, q.PortA, q.InstrumentA, q.PortB, q.InstrumentB)
	fmt.Fprintf(c.out, "Vessel: %s | Cargo: %.0f m3 | As of: %s\n\n",
		q.VesselClass, q.CargoCapacityM3, snap.AsOf)

	market := tablewriter.NewWriter(c.out)
	market.Header("Scalar", "Value", "Source")
	market.Append(q.InstrumentA, fmt.Sprintf("$%.2f/MMBtu", snap.PriceAUSDMMBtu), snap.Provenance["price_a"])
	market.Append(q.InstrumentB, fmt.Sprintf("$%.2f/MMBtu", snap.PriceBUSDMMBtu), snap.Provenance["price_b"])
	market.Append("Freight", fmt.Sprintf("$%.0f/day", snap.FreightRateUSDDay), snap.Provenance["freight"])
	market.Append("Fuel", fmt.Sprintf("$%.0f/t", snap.FuelPriceUSDT), snap.Provenance["fuel"])
	market.Append("EUA", fmt.Sprintf("$%.2f/tCO2", snap.EUAPriceUSDT), snap.Provenance["eua"])
	market.Render()

	netbacks := tablewriter.NewWriter(c.out)
	netbacks.Header("Destination", "Revenue", "Voyage cost", "Carbon", "Netback")
	netbacks.Append(pack.DestinationA.Destination,
		usd(pack.DestinationA.RevenueUSD), usd(pack.DestinationA.VoyageCostUSD),
		usd(pack.DestinationA.CarbonCostUSD), usd(pack.DestinationA.NetbackUSD))
	netbacks.Append(pack.DestinationB.Destination,
		usd(pack.DestinationB.RevenueUSD), usd(pack.DestinationB.VoyageCostUSD),
		usd(pack.DestinationB.CarbonCostUSD), usd(pack.DestinationB.NetbackUSD))
	netbacks.Render()

	d := pack.Decision
	fmt.Fprintf(c.out, "\nRaw uplift:      %s\n", usd(d.DeltaNetbackRawUSD))
	fmt.Fprintf(c.out, "Adjusted uplift: %s (haircut %.1f%%, ops %s, threshold %s)\n",
		usd(d.DeltaNetbackAdjUSD), d.BasisHaircutPct*100, usd(d.OpsBufferUSD), usd(d.DecisionBufferUSD))
	fmt.Fprintf(c.out, "Decision: %s\n", d.Decision)

	if len(pack.HedgeLegs) == 0 {
		fmt.Fprintf(c.out, "Hedge: none\n")
		return
	}
	fmt.Fprintf(c.out, "Hedge (%.0f MMBtu):", d.HedgeEnergyMMBtu)
	for _, leg := range pack.HedgeLegs {
		fmt.Fprintf(c.out, " %s %s %d lots |", leg.Side, leg.Instrument, leg.Lots)
	}
	fmt.Fprintln(c.out)
}

// StressTable prints the stress battery with PnL impacts and flips.
func (c *Console) StressTable(pack risk.Pack) {
	fmt.Fprintf(c.out, "STRESS TEST (base decision: %s, base adj uplift %s)\n",
		pack.Base.Decision, usd(pack.Base.DeltaNetbackAdjUSD))

	table := tablewriter.NewWriter(c.out)
	table.Header("Scenario", "Spread", "Freight", "EUA", "PnL impact", "Decision")
	for _, r := range pack.Results {
		verdict := string(r.StressedDecision)
		if r.DecisionChange {
			verdict += " (FLIP)"
		}
		table.Append(
			r.Scenario.Name(),
			fmt.Sprintf("%+.2f", r.Scenario.SpreadShockUSD),
			fmt.Sprintf("%+.0f", r.Scenario.FreightShockUSDDay),
			fmt.Sprintf("%+.2f", r.Scenario.EUAShockUSD),
			usd(r.PnLImpactUSD),
			verdict,
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "Worst case PnL impact: %s\n", usd(pack.WorstCasePnLImpactUSD))
	if len(pack.ScenariosCausingFlip) == 0 {
		fmt.Fprintln(c.out, "No scenario flips the decision")
	} else {
		fmt.Fprintf(c.out, "Scenarios causing flip: %v\n", pack.ScenariosCausingFlip)
	}
}

// BacktestSummary prints the rule-validation metrics. The numbers measure
// trigger frequency and conditional uplift, not tradable P&L: there is no
// slippage, basis risk or hedging cost in them.
func (c *Console) BacktestSummary(res backtest.Result) {
	m := res.Metrics
	fmt.Fprintf(c.out, "RULE VALIDATION (backtest)\n")

	table := tablewriter.NewWriter(c.out)
	table.Header("Metric", "Value")
	table.Append("Observations", fmt.Sprintf("%d", m.TotalObservations))
	table.Append("Triggered trades", fmt.Sprintf("%d", m.TriggeredTrades))
	table.Append("Hit rate", fmt.Sprintf("%.1f%%", m.HitRate*100))
	table.Append("Average uplift", usd(m.AverageUpliftUSD))
	table.Append("Total uplift", usd(m.TotalUpliftUSD))
	table.Append("Max drawdown", usd(m.MaxDrawdownUSD))
	if m.SharpeRatio != nil {
		table.Append("Sharpe (ann.)", fmt.Sprintf("%.3f", *m.SharpeRatio))
	} else {
		table.Append("Sharpe (ann.)", "n/a (insufficient data)")
	}
	table.Render()
}

func usd(x float64) string {
	return fmt.Sprintf("$%.0f", x)
}
