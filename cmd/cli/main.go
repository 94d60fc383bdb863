package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"lng-diversion/internal/backtest"
	"lng-diversion/internal/config"
	"lng-diversion/internal/data"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
	"lng-diversion/internal/report"
	"lng-diversion/internal/risk"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "decide":
		cmdDecide(os.Args[2:])
	case "stress":
		cmdStress(os.Args[2:])
	case "backtest":
		cmdBacktest(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli decide --config examples/config.yaml [--save]")
	fmt.Println("  cli stress --config examples/config.yaml [--save]")
	fmt.Println("  cli backtest --config examples/config.yaml [--history data/history.csv] [--save]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - decide prints the trade note (netbacks, DIVERT/KEEP, hedge legs)")
	fmt.Println("  - stress runs the six-scenario battery against the base decision")
	fmt.Println("  - backtest replays the rule over the historical series")
	fmt.Println("  - --save writes timestamped JSON (and CSV for backtest) under the reports dir")
	fmt.Println("  - voyage/rule flags (--port-a, --vessel-class, --basis, --coverage, ...) override the config")
}

// common flags shared by all subcommands. Voyage and parameter flags
// override the configured values only when explicitly set.
type commonFlags struct {
	cfgPath string
	dataDir string
	save    bool

	loadPort       string
	portA          string
	portB          string
	vesselClass    string
	cargoM3        float64
	basis          float64
	opsBuffer      float64
	decisionBuffer float64
	coverage       float64
}

func addCommon(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.cfgPath, "config", "examples/config.yaml", "Path to YAML config")
	fs.StringVar(&c.dataDir, "data", "", "Override reference data directory")
	fs.BoolVar(&c.save, "save", false, "Write timestamped report files")

	fs.StringVar(&c.loadPort, "load-port", "", "Override load port")
	fs.StringVar(&c.portA, "port-a", "", "Override destination A discharge port")
	fs.StringVar(&c.portB, "port-b", "", "Override destination B discharge port")
	fs.StringVar(&c.vesselClass, "vessel-class", "", "Override vessel class")
	fs.Float64Var(&c.cargoM3, "cargo-m3", 0, "Override cargo capacity (m3)")
	fs.Float64Var(&c.basis, "basis", 0, "Override basis haircut fraction")
	fs.Float64Var(&c.opsBuffer, "ops-buffer", 0, "Override ops buffer (USD)")
	fs.Float64Var(&c.decisionBuffer, "decision-buffer", 0, "Override decision buffer (USD)")
	fs.Float64Var(&c.coverage, "coverage", 0, "Override hedge coverage fraction")
	return c
}

// applyOverrides folds explicitly set flags into the loaded config.
// flag.Visit only reports flags present on the command line, so a configured
// zero is distinguishable from an absent flag.
func (c *commonFlags) applyOverrides(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "load-port":
			cfg.Voyage.LoadPort = c.loadPort
		case "port-a":
			cfg.Voyage.PortA = c.portA
		case "port-b":
			cfg.Voyage.PortB = c.portB
		case "vessel-class":
			cfg.Voyage.VesselClass = c.vesselClass
		case "cargo-m3":
			cfg.Voyage.CargoCapacityM3 = c.cargoM3
		case "basis":
			cfg.Decision.BasisHaircutPct = c.basis
		case "ops-buffer":
			cfg.Decision.OpsBufferUSD = c.opsBuffer
		case "decision-buffer":
			cfg.Decision.DecisionBufferUSD = c.decisionBuffer
		case "coverage":
			cfg.Decision.CoveragePct = c.coverage
		}
	})
}

func load(c *commonFlags) (*config.Config, model.RefData) {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", c.cfgPath).Msg("load config")
	}
	if c.dataDir != "" {
		cfg.Data.Dir = c.dataDir
	}
	ref, err := data.LoadRefData(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Data.Dir).Msg("load reference data")
	}
	return cfg, ref
}

func cmdDecide(args []string) {
	fs := flag.NewFlagSet("decide", flag.ExitOnError)
	common := addCommon(fs)
	_ = fs.Parse(args)

	cfg, ref := load(common)
	common.applyOverrides(fs, cfg)
	snap := cfg.Snapshot(time.Now().UTC().Format("2006-01-02"))
	q := cfg.EvaluateQuery(snap)

	pack, err := decision.Evaluate(ref, q, cfg.DecisionParams())
	if err != nil {
		log.Fatal().Err(err).Msg("evaluate")
	}

	report.NewConsole().TradeNote(pack, snap)

	if common.save {
		path, err := report.SaveTradePack(cfg.Data.ReportsDir, pack)
		if err != nil {
			log.Fatal().Err(err).Msg("save trade pack")
		}
		fmt.Printf("\nWrote %s\n", path)
	}
}

func cmdStress(args []string) {
	fs := flag.NewFlagSet("stress", flag.ExitOnError)
	common := addCommon(fs)
	_ = fs.Parse(args)

	cfg, ref := load(common)
	common.applyOverrides(fs, cfg)
	snap := cfg.Snapshot(time.Now().UTC().Format("2006-01-02"))
	q := cfg.EvaluateQuery(snap)

	base, err := decision.Evaluate(ref, q, cfg.DecisionParams())
	if err != nil {
		log.Fatal().Err(err).Msg("evaluate")
	}

	pack, err := risk.RunStressTest(ref, q.CompareQuery, base.Decision, cfg.DecisionParams(), cfg.StressShocks())
	if err != nil {
		log.Fatal().Err(err).Msg("stress test")
	}

	report.NewConsole().StressTable(pack)

	if common.save {
		path, err := report.SaveRiskReport(cfg.Data.ReportsDir, pack)
		if err != nil {
			log.Fatal().Err(err).Msg("save risk report")
		}
		fmt.Printf("\nWrote %s\n", path)
	}
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	common := addCommon(fs)
	historyPath := fs.String("history", "", "Path to historical series CSV (defaults to config)")
	_ = fs.Parse(args)

	cfg, ref := load(common)
	common.applyOverrides(fs, cfg)
	path := *historyPath
	if path == "" {
		path = cfg.Data.HistoryFile
	}

	obs, err := data.LoadHistory(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("load history")
	}
	log.Info().Int("observations", len(obs)).Str("path", path).Msg("history loaded")

	res, err := backtest.RunSeries(ref, obs, cfg.StaticQuery(), cfg.DecisionParams())
	if err != nil {
		log.Fatal().Err(err).Msg("backtest")
	}

	report.NewConsole().BacktestSummary(res)

	if common.save {
		path, err := report.SaveBacktestReport(cfg.Data.ReportsDir, res)
		if err != nil {
			log.Fatal().Err(err).Msg("save backtest report")
		}
		fmt.Printf("\nWrote %s\n", path)
	}
}
