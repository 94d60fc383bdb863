package backtest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteEquityCurveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.csv")
	curve := []EquityPoint{
		{Date: day(1), PnLUSD: 100, CumulativePnLUSD: 100},
		{Date: day(2), PnLUSD: 0, CumulativePnLUSD: 100},
		{Date: day(3), PnLUSD: -25.5, CumulativePnLUSD: 74.5},
	}
	require.NoError(t, WriteEquityCurveCSV(path, curve))

	rows := readRows(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"date", "pnl_usd", "cumulative_pnl_usd"}, rows[0])
	assert.Equal(t, []string{"2025-06-01", "100.00", "100.00"}, rows[1])
	assert.Equal(t, []string{"2025-06-03", "-25.50", "74.50"}, rows[3])
}

func TestWriteHistoryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	days := []DayDecision{
		{Date: day(1), Decision: "DIVERT", DeltaRawUSD: 1000, DeltaAdjUSD: 900, NetbackAUSD: 5000, NetbackBUSD: 6000},
		{Date: day(2), Decision: "KEEP", DeltaRawUSD: -10, DeltaAdjUSD: -59.5, NetbackAUSD: 5000, NetbackBUSD: 4990},
	}
	require.NoError(t, WriteHistoryCSV(path, days))

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"date", "decision", "delta_netback_raw_usd", "delta_netback_adj_usd",
		"netback_a_usd", "netback_b_usd",
	}, rows[0])
	assert.Equal(t, "DIVERT", rows[1][1])
	assert.Equal(t, "-59.50", rows[2][3])
}
