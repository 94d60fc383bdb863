package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// WriteEquityCurveCSV writes the date/pnl/cumulative_pnl series.
func WriteEquityCurveCSV(path string, curve []EquityPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "pnl_usd", "cumulative_pnl_usd"}); err != nil {
		return err
	}
	for _, p := range curve {
		row := []string{
			fmtDate(p.Date),
			fmtFloat(p.PnLUSD),
			fmtFloat(p.CumulativePnLUSD),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteHistoryCSV writes the full per-day decision history.
func WriteHistoryCSV(path string, days []DayDecision) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date",
		"decision",
		"delta_netback_raw_usd",
		"delta_netback_adj_usd",
		"netback_a_usd",
		"netback_b_usd",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range days {
		row := []string{
			fmtDate(d.Date),
			string(d.Decision),
			fmtFloat(d.DeltaRawUSD),
			fmtFloat(d.DeltaAdjUSD),
			fmtFloat(d.NetbackAUSD),
			fmtFloat(d.NetbackBUSD),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
