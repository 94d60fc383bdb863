package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/decision"
)

const schema = `
CREATE TABLE IF NOT EXISTS decision_runs (
    id             TEXT PRIMARY KEY,
    created_at     DATETIME NOT NULL,
    decision       TEXT     NOT NULL,
    netback_a_usd  REAL     NOT NULL,
    netback_b_usd  REAL     NOT NULL,
    delta_raw_usd  REAL     NOT NULL,
    delta_adj_usd  REAL     NOT NULL,
    hedge_mmbtu    REAL     NOT NULL,
    lots_a         INTEGER  NOT NULL,
    lots_b         INTEGER  NOT NULL
);

CREATE TABLE IF NOT EXISTS backtest_runs (
    id               TEXT PRIMARY KEY,
    created_at       DATETIME NOT NULL,
    observations     INTEGER  NOT NULL,
    triggered        INTEGER  NOT NULL,
    hit_rate         REAL     NOT NULL,
    total_uplift_usd REAL     NOT NULL,
    max_drawdown_usd REAL     NOT NULL,
    sharpe_ratio     REAL
);

CREATE INDEX IF NOT EXISTS idx_decision_runs_at ON decision_runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_backtest_runs_at ON backtest_runs(created_at DESC);
`

// Store persists run history in SQLite (pure Go driver, no CGo).
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at the given DSN and applies the
// schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveDecision records one evaluation and returns its run ID.
func (s *Store) SaveDecision(ctx context.Context, pack decision.TradePack) (string, error) {
	id := uuid.NewString()
	d := pack.Decision
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decision_runs
		(id, created_at, decision, netback_a_usd, netback_b_usd, delta_raw_usd, delta_adj_usd, hedge_mmbtu, lots_a, lots_b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), string(d.Decision),
		pack.DestinationA.NetbackUSD, pack.DestinationB.NetbackUSD,
		d.DeltaNetbackRawUSD, d.DeltaNetbackAdjUSD,
		d.HedgeEnergyMMBtu, d.LotsA, d.LotsB,
	)
	if err != nil {
		return "", fmt.Errorf("storage: save decision run: %w", err)
	}
	return id, nil
}

// SaveBacktest records one backtest summary and returns its run ID.
func (s *Store) SaveBacktest(ctx context.Context, m backtest.Metrics) (string, error) {
	id := uuid.NewString()
	var sharpe sql.NullFloat64
	if m.SharpeRatio != nil {
		sharpe = sql.NullFloat64{Float64: *m.SharpeRatio, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO backtest_runs
		(id, created_at, observations, triggered, hit_rate, total_uplift_usd, max_drawdown_usd, sharpe_ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), m.TotalObservations, m.TriggeredTrades,
		m.HitRate, m.TotalUpliftUSD, m.MaxDrawdownUSD, sharpe,
	)
	if err != nil {
		return "", fmt.Errorf("storage: save backtest run: %w", err)
	}
	return id, nil
}

// DecisionRun is one stored evaluation summary.
type DecisionRun struct {
	ID          string
	CreatedAt   time.Time
	Decision    string
	NetbackAUSD float64
	NetbackBUSD float64
	DeltaRawUSD float64
	DeltaAdjUSD float64
	HedgeMMBtu  float64
	LotsA       int
	LotsB       int
}

// RecentDecisions returns the newest decision runs, most recent first.
func (s *Store) RecentDecisions(ctx context.Context, limit int) ([]DecisionRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, decision, netback_a_usd, netback_b_usd,
		       delta_raw_usd, delta_adj_usd, hedge_mmbtu, lots_a, lots_b
		FROM decision_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: list decision runs: %w", err)
	}
	defer rows.Close()

	var out []DecisionRun
	for rows.Next() {
		var r DecisionRun
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Decision,
			&r.NetbackAUSD, &r.NetbackBUSD, &r.DeltaRawUSD, &r.DeltaAdjUSD,
			&r.HedgeMMBtu, &r.LotsA, &r.LotsB); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
