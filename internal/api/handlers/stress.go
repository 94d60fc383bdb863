package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lng-diversion/internal/api/models"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/risk"
)

// Stress handles POST /api/v1/stress
func (h *Handler) Stress(c *gin.Context) {
	var req models.StressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	asOf := time.Now().UTC().Format("2006-01-02")
	q := h.evaluateQuery(req.Voyage, req.Market, asOf)
	p, coverage := h.params(req.Params)
	q.CoveragePct = coverage

	base, err := decision.Evaluate(h.Ref, q, p)
	if err != nil {
		writeError(c, err)
		return
	}

	pack, err := risk.RunStressTest(h.Ref, q.CompareQuery, base.Decision, p, h.shocks(req.Shocks))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildStressResponse(pack))
}

func buildStressResponse(pack risk.Pack) models.StressResponse {
	resp := models.StressResponse{
		BaseDecision:          string(pack.Base.Decision),
		BaseDeltaAdjUSD:       pack.Base.DeltaNetbackAdjUSD,
		WorstCasePnLImpactUSD: pack.WorstCasePnLImpactUSD,
		ScenariosCausingFlip:  pack.ScenariosCausingFlip,
	}
	for _, r := range pack.Results {
		resp.Scenarios = append(resp.Scenarios, models.ScenarioResponse{
			Name:                r.Scenario.Name(),
			SpreadShockUSD:      r.Scenario.SpreadShockUSD,
			FreightShockUSDDay:  r.Scenario.FreightShockUSDDay,
			EUAShockUSD:         r.Scenario.EUAShockUSD,
			StressedDeltaAdjUSD: r.StressedDeltaAdjUSD,
			PnLImpactUSD:        r.PnLImpactUSD,
			StressedDecision:    string(r.StressedDecision),
			DecisionFlipped:     r.DecisionChange,
		})
	}
	return resp
}
