package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lng-diversion/internal/api/models"
	"lng-diversion/internal/decision"
	"lng-diversion/internal/model"
)

// Decide handles POST /api/v1/decide
func (h *Handler) Decide(c *gin.Context) {
	var req models.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err)
		return
	}

	asOf := time.Now().UTC().Format("2006-01-02")
	q := h.evaluateQuery(req.Voyage, req.Market, asOf)
	p, coverage := h.params(req.Params)
	q.CoveragePct = coverage

	pack, err := decision.Evaluate(h.Ref, q, p)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := buildDecideResponse(pack, asOf)
	if req.Save {
		resp.RunID = h.saveDecision(c, pack)
	}
	c.JSON(http.StatusOK, resp)
}

func buildDecideResponse(pack decision.TradePack, asOf string) models.DecideResponse {
	resp := models.DecideResponse{
		AsOf:         asOf,
		Decision:     string(pack.Decision.Decision),
		DestinationA: buildNetbackResponse(pack.DestinationA),
		DestinationB: buildNetbackResponse(pack.DestinationB),
		Economics: models.Economics{
			DeltaNetbackRawUSD: pack.Decision.DeltaNetbackRawUSD,
			DeltaNetbackAdjUSD: pack.Decision.DeltaNetbackAdjUSD,
			BasisHaircutPct:    pack.Decision.BasisHaircutPct,
			OpsBufferUSD:       pack.Decision.OpsBufferUSD,
			DecisionBufferUSD:  pack.Decision.DecisionBufferUSD,
		},
	}
	if len(pack.HedgeLegs) > 0 {
		hedge := &models.HedgeResponse{HedgeEnergyMMBtu: pack.Decision.HedgeEnergyMMBtu}
		for _, leg := range pack.HedgeLegs {
			hedge.Legs = append(hedge.Legs, models.LegResponse{
				Side:       leg.Side,
				Instrument: leg.Instrument,
				Lots:       leg.Lots,
			})
		}
		resp.Hedge = hedge
	}
	return resp
}

func buildNetbackResponse(nb model.NetbackResult) models.NetbackResponse {
	out := models.NetbackResponse{
		Destination:    nb.Destination,
		VoyageDays:     nb.Voyage.VoyageDays,
		DeliveredMMBtu: nb.DeliveredEnergyMMBtu,
		RevenueUSD:     nb.RevenueUSD,
		VoyageCostUSD:  nb.VoyageCostUSD,
		CarbonCostUSD:  nb.CarbonCostUSD,
		NetbackUSD:     nb.NetbackUSD,
	}
	if nb.DeliveredEnergyMMBtu != 0 {
		out.NetbackUSDMMBtu = nb.NetbackUSD / nb.DeliveredEnergyMMBtu
	}
	return out
}
