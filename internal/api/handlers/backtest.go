package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lng-diversion/internal/api/models"
	"lng-diversion/internal/backtest"
	"lng-diversion/internal/data"
	"lng-diversion/internal/model"
)

// RunBacktest handles POST /api/v1/backtest
func (h *Handler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	historyPath := req.HistoryFile
	if historyPath == "" {
		historyPath = h.Cfg.Data.HistoryFile
	}
	obs, err := data.LoadHistory(historyPath)
	if err != nil {
		writeError(c, err)
		return
	}

	q := h.Cfg.StaticQuery()
	applyVoyageOverrides(&q, req.Voyage)
	p, coverage := h.params(req.Params)
	q.CoveragePct = coverage

	res, err := backtest.RunSeries(h.Ref, obs, q, p)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := buildBacktestResponse(res, req.IncludeCurve, req.IncludeLedger)
	if req.Save {
		resp.RunID = h.saveBacktest(c, res.Metrics)
	}
	c.JSON(http.StatusOK, resp)
}

func applyVoyageOverrides(q *backtest.StaticQuery, v models.VoyageRequest) {
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
}

func buildBacktestResponse(res backtest.Result, includeCurve, includeLedger bool) models.BacktestResponse {
	m := res.Metrics
	resp := models.BacktestResponse{
		Summary: models.BacktestSummary{
			TotalObservations: m.TotalObservations,
			TriggeredTrades:   m.TriggeredTrades,
			HitRatePct:        m.HitRate * 100,
			AverageUpliftUSD:  m.AverageUpliftUSD,
			TotalUpliftUSD:    m.TotalUpliftUSD,
			MaxDrawdownUSD:    m.MaxDrawdownUSD,
			SharpeRatio:       m.SharpeRatio,
		},
	}
	if includeCurve {
		for _, p := range res.EquityCurve {
			resp.EquityCurve = append(resp.EquityCurve, models.EquityPointResponse{
				Date:             p.Date.Format("2006-01-02"),
				PnLUSD:           p.PnLUSD,
				CumulativePnLUSD: p.CumulativePnLUSD,
			})
		}
	}
	if includeLedger {
		for _, d := range res.History {
			resp.Ledger = append(resp.Ledger, models.LedgerRowResponse{
				Date:        d.Date.Format("2006-01-02"),
				Decision:    string(d.Decision),
				DeltaRawUSD: d.DeltaRawUSD,
				DeltaAdjUSD: d.DeltaAdjUSD,
				NetbackAUSD: d.NetbackAUSD,
				NetbackBUSD: d.NetbackBUSD,
			})
		}
	}
	return resp
}
