package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/data"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
	"lng-diversion/internal/risk"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Voyage   VoyageConfig   `yaml:"voyage"`
	Market   MarketConfig   `yaml:"market"`
	Decision DecisionConfig `yaml:"decision"`
	Stress   StressConfig   `yaml:"stress"`
	Data     DataConfig     `yaml:"data"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// VoyageConfig fixes the cargo and the two candidate destinations.
type VoyageConfig struct {
	LoadPort        string  `yaml:"load_port"`
	PortA           string  `yaml:"port_a"`
	PortB           string  `yaml:"port_b"`
	DestinationA    string  `yaml:"destination_a"`
	DestinationB    string  `yaml:"destination_b"`
	InstrumentA     string  `yaml:"instrument_a"`
	InstrumentB     string  `yaml:"instrument_b"`
	VesselClass     string  `yaml:"vessel_class"`
	CargoCapacityM3 float64 `yaml:"cargo_capacity_m3"`
	FuelType        string  `yaml:"fuel_type"` // VLSFO | LNG
}

// MarketConfig holds the proxy market scalars used when no live prices are
// supplied.
type MarketConfig struct {
	PriceAUSDMMBtu          float64 `yaml:"price_a_usd_mmbtu"`
	PriceBUSDMMBtu          float64 `yaml:"price_b_usd_mmbtu"`
	PriceBPremiumUSDMMBtu   float64 `yaml:"price_b_premium_usd_mmbtu"`
	FreightUSDDay           float64 `yaml:"freight_usd_day"`
	FreightRegimeMultiplier float64 `yaml:"freight_regime_multiplier"`
	FuelUSDPerT             float64 `yaml:"fuel_usd_per_t"`
	EUAUSDPerTCO2           float64 `yaml:"eua_usd_per_tco2"`
}

// DecisionConfig carries the decision-rule knobs.
type DecisionConfig struct {
	BasisHaircutPct   float64 `yaml:"basis_haircut_pct"`
	OpsBufferUSD      float64 `yaml:"ops_buffer_usd"`
	DecisionBufferUSD float64 `yaml:"decision_buffer_usd"`
	CoveragePct       float64 `yaml:"coverage_pct"`
	LotAMMBtu         float64 `yaml:"lot_a_mmbtu"`
	LotBMMBtu         float64 `yaml:"lot_b_mmbtu"`
}

// StressConfig carries the stress shock magnitudes.
type StressConfig struct {
	SpreadUSD     float64 `yaml:"spread_usd"`
	FreightUSDDay float64 `yaml:"freight_usd_day"`
	EUAUSD        float64 `yaml:"eua_usd"`
}

// DataConfig points at the reference and historical data files.
type DataConfig struct {
	Dir         string `yaml:"dir"`
	HistoryFile string `yaml:"history_file"`
	ReportsDir  string `yaml:"reports_dir"`
}

// StorageConfig controls run-history persistence.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite file path, or ":memory:"
}

// LogConfig controls log verbosity.
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Load reads the YAML config, applies .env/environment overrides, fills
// defaults and validates eagerly so bad parameters fail before any
// computation runs.
func Load(path string) (*Config, error) {
	// Load .env if present; missing file is fine.
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STORAGE_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Voyage.FuelType == "" {
		cfg.Voyage.FuelType = string(model.FuelVLSFO)
	}
	if cfg.Decision.LotAMMBtu == 0 {
		cfg.Decision.LotAMMBtu = decision.DefaultLotMMBtu
	}
	if cfg.Decision.LotBMMBtu == 0 {
		cfg.Decision.LotBMMBtu = decision.DefaultLotMMBtu
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Data.HistoryFile == "" {
		cfg.Data.HistoryFile = cfg.Data.Dir + "/" + data.HistoryFile
	}
	if cfg.Data.ReportsDir == "" {
		cfg.Data.ReportsDir = "reports"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "lng-diversion.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate delegates to the domain owners of each parameter set.
func (c *Config) Validate() error {
	if err := c.DecisionParams().Validate(); err != nil {
		return err
	}
	if err := c.StressShocks().Validate(); err != nil {
		return err
	}
	if c.Decision.CoveragePct < 0 || c.Decision.CoveragePct > 1 {
		return &model.InvalidConfigError{Param: "coverage_pct", Msg: "must be in [0,1]"}
	}
	if ft := model.FuelType(c.Voyage.FuelType); ft != model.FuelVLSFO && ft != model.FuelLNG {
		return &model.InvalidConfigError{Param: "fuel_type", Msg: "must be VLSFO or LNG"}
	}
	return nil
}

// DecisionParams returns the configured decision-rule parameters.
func (c *Config) DecisionParams() decision.Params {
	return decision.Params{
		BasisHaircutPct:   c.Decision.BasisHaircutPct,
		OpsBufferUSD:      c.Decision.OpsBufferUSD,
		DecisionBufferUSD: c.Decision.DecisionBufferUSD,
		LotSizeAMMBtu:     c.Decision.LotAMMBtu,
		LotSizeBMMBtu:     c.Decision.LotBMMBtu,
	}
}

// StressShocks returns the configured stress magnitudes.
func (c *Config) StressShocks() risk.Shocks {
	return risk.Shocks{
		SpreadUSD:     c.Stress.SpreadUSD,
		FreightUSDDay: c.Stress.FreightUSDDay,
		EUAUSD:        c.Stress.EUAUSD,
	}
}

// Snapshot builds the proxy market snapshot from the configured scalars.
func (c *Config) Snapshot(asOf string) data.Snapshot {
	return data.ProxySnapshot(data.SnapshotInputs{
		PriceAUSDMMBtu:          c.Market.PriceAUSDMMBtu,
		PriceBUSDMMBtu:          c.Market.PriceBUSDMMBtu,
		PriceBPremiumUSDMMBtu:   c.Market.PriceBPremiumUSDMMBtu,
		FreightUSDDay:           c.Market.FreightUSDDay,
		FreightRegimeMultiplier: c.Market.FreightRegimeMultiplier,
		FuelUSDPerT:             c.Market.FuelUSDPerT,
		EUAUSDPerTCO2:           c.Market.EUAUSDPerTCO2,
	}, asOf)
}

// EvaluateQuery combines the configured voyage with one market snapshot.
func (c *Config) EvaluateQuery(snap data.Snapshot) decision.EvaluateQuery {
	return decision.EvaluateQuery{
		CompareQuery: model.CompareQuery{
			LoadPort:          c.Voyage.LoadPort,
			PortA:             c.Voyage.PortA,
			PortB:             c.Voyage.PortB,
			DestinationA:      c.Voyage.DestinationA,
			DestinationB:      c.Voyage.DestinationB,
			VesselClass:       c.Voyage.VesselClass,
			CargoCapacityM3:   c.Voyage.CargoCapacityM3,
			PriceAUSDMMBtu:    snap.PriceAUSDMMBtu,
			PriceBUSDMMBtu:    snap.PriceBUSDMMBtu,
			FreightRateUSDDay: snap.FreightRateUSDDay,
			FuelPriceUSDT:     snap.FuelPriceUSDT,
			EUAPriceUSDT:      snap.EUAPriceUSDT,
			FuelType:          model.FuelType(c.Voyage.FuelType),
		},
		InstrumentA: c.Voyage.InstrumentA,
		InstrumentB: c.Voyage.InstrumentB,
		CoveragePct: c.Decision.CoveragePct,
	}
}

// StaticQuery returns the fixed part of a historical backtest run.
func (c *Config) StaticQuery() backtest.StaticQuery {
	return backtest.StaticQuery{
		LoadPort:        c.Voyage.LoadPort,
		PortA:           c.Voyage.PortA,
		PortB:           c.Voyage.PortB,
		DestinationA:    c.Voyage.DestinationA,
		DestinationB:    c.Voyage.DestinationB,
		InstrumentA:     c.Voyage.InstrumentA,
		InstrumentB:     c.Voyage.InstrumentB,
		VesselClass:     c.Voyage.VesselClass,
		CargoCapacityM3: c.Voyage.CargoCapacityM3,
		FuelType:        model.FuelType(c.Voyage.FuelType),
		CoveragePct:     c.Decision.CoveragePct,
	}
}
