package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lng-diversion/internal/api/models"
	"lng-diversion/internal/backtest"
	"lng-diversion/internal/config"
	"lng-diversion/internal/data"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
	"lng-diversion/internal/risk"
	"lng-diversion/internal/storage"
)

// Handler carries the shared dependencies of all endpoints. Reference data
// is read-only, so one handler serves concurrent requests without locking.
type Handler struct {
	Ref   model.RefData
	Cfg   *config.Config
	Store *storage.Store
	Log   zerolog.Logger
}

func New(ref model.RefData, cfg *config.Config, store *storage.Store, log zerolog.Logger) *Handler {
	return &Handler{Ref: ref, Cfg: cfg, Store: store, Log: log}
}

// evaluateQuery merges request overrides onto the configured voyage and
// market defaults.
func (h *Handler) evaluateQuery(v models.VoyageRequest, m *models.MarketRequest, asOf string) decision.EvaluateQuery {
	snap := h.snapshot(m, asOf)
	q := h.Cfg.EvaluateQuery(snap)

	if v.LoadPort != "" {
		q.LoadPort = v.LoadPort
	}
	if v.PortA != "" {
		q.PortA = v.PortA
	}
	if v.PortB != "" {
		q.PortB = v.PortB
	}
	if v.DestinationA != "" {
		q.DestinationA = v.DestinationA
	}
	if v.DestinationB != "" {
		q.DestinationB = v.DestinationB
	}
	if v.InstrumentA != "" {
		q.InstrumentA = v.InstrumentA
	}
	if v.InstrumentB != "" {
		q.InstrumentB = v.InstrumentB
	}
	if v.VesselClass != "" {
		q.VesselClass = v.VesselClass
	}
	if v.CargoCapacityM3 != 0 {
		q.CargoCapacityM3 = v.CargoCapacityM3
	}
	if v.FuelType != "" {
		q.FuelType = model.FuelType(v.FuelType)
	}
	return q
}

func (h *Handler) snapshot(m *models.MarketRequest, asOf string) data.Snapshot {
	snap := h.Cfg.Snapshot(asOf)
	if m == nil {
		return snap
	}
	if m.PriceAUSDMMBtu != 0 {
		snap.PriceAUSDMMBtu = m.PriceAUSDMMBtu
		snap.Provenance["price_a"] = "request"
	}
	if m.PriceBUSDMMBtu != 0 {
		snap.PriceBUSDMMBtu = m.PriceBUSDMMBtu
		snap.Provenance["price_b"] = "request"
	}
	if m.FreightRateUSDDay != 0 {
		snap.FreightRateUSDDay = m.FreightRateUSDDay
		snap.Provenance["freight"] = "request"
	}
	if m.FuelPriceUSDT != 0 {
		snap.FuelPriceUSDT = m.FuelPriceUSDT
		snap.Provenance["fuel"] = "request"
	}
	if m.EUAPriceUSDT != 0 {
		snap.EUAPriceUSDT = m.EUAPriceUSDT
		snap.Provenance["eua"] = "request"
	}
	return snap
}

// params merges request overrides onto the configured decision parameters.
// coveragePct comes back separately because it sizes the hedge, not the rule.
func (h *Handler) params(p *models.ParamsRequest) (decision.Params, float64) {
	out := h.Cfg.DecisionParams()
	coverage := h.Cfg.Decision.CoveragePct
	if p == nil {
		return out, coverage
	}
	if p.BasisHaircutPct != nil {
		out.BasisHaircutPct = *p.BasisHaircutPct
	}
	if p.OpsBufferUSD != nil {
		out.OpsBufferUSD = *p.OpsBufferUSD
	}
	if p.DecisionBufferUSD != nil {
		out.DecisionBufferUSD = *p.DecisionBufferUSD
	}
	if p.CoveragePct != nil {
		coverage = *p.CoveragePct
	}
	if p.LotAMMBtu != nil {
		out.LotSizeAMMBtu = *p.LotAMMBtu
	}
	if p.LotBMMBtu != nil {
		out.LotSizeBMMBtu = *p.LotBMMBtu
	}
	return out, coverage
}

func (h *Handler) shocks(s *models.ShocksRequest) risk.Shocks {
	out := h.Cfg.StressShocks()
	if s == nil {
		return out
	}
	if s.SpreadUSD != nil {
		out.SpreadUSD = *s.SpreadUSD
	}
	if s.FreightUSDDay != nil {
		out.FreightUSDDay = *s.FreightUSDDay
	}
	if s.EUAUSD != nil {
		out.EUAUSD = *s.EUAUSD
	}
	return out
}

// writeError maps domain errors to the error envelope: missing reference
// rows are 404, bad parameters 400, everything else 500.
func writeError(c *gin.Context, err error) {
	var notFound *model.NotFoundError
	var invalid *model.InvalidConfigError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: err.Error(),
				Details: map[string]interface{}{"kind": notFound.Kind, "key": notFound.Key},
			},
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
				Details: map[string]interface{}{"param": invalid.Param},
			},
		})
	case errors.Is(err, backtest.ErrNoObservations):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_OBSERVATIONS",
				Message: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}

func writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// storage is optional; a nil store disables run history.
func (h *Handler) saveDecision(c *gin.Context, pack decision.TradePack) string {
	if h.Store == nil {
		return ""
	}
	id, err := h.Store.SaveDecision(c.Request.Context(), pack)
	if err != nil {
		h.Log.Warn().Err(err).Msg("save decision run")
		return ""
	}
	return id
}

func (h *Handler) saveBacktest(c *gin.Context, m backtest.Metrics) string {
	if h.Store == nil {
		return ""
	}
	id, err := h.Store.SaveBacktest(c.Request.Context(), m)
	if err != nil {
		h.Log.Warn().Err(err).Msg("save backtest run")
		return ""
	}
	return id
}
