package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lng-diversion/internal/api/models"
)

// Routes handles GET /api/v1/routes
func (h *Handler) Routes(c *gin.Context) {
	out := make([]models.RouteInfo, 0, len(h.Ref.Routes))
	for _, r := range h.Ref.Routes {
		out = append(out, models.RouteInfo{
			LoadPort:      r.LoadPort,
			DischargePort: r.DischargePort,
			DistanceNM:    r.DistanceNM,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}

// Vessels handles GET /api/v1/vessels
func (h *Handler) Vessels(c *gin.Context) {
	out := make([]models.VesselInfo, 0, len(h.Ref.Vessels))
	for _, v := range h.Ref.Vessels {
		out = append(out, models.VesselInfo{
			VesselClass:               v.VesselClass,
			CargoCapacityM3:           v.CargoCapacityM3,
			LadenSpeedKn:              v.LadenSpeedKn,
			BallastSpeedKn:            v.BallastSpeedKn,
			BoilOffPctPerDay:          v.BoilOffPctPerDay,
			FuelConsumptionTPDLaden:   v.FuelConsumptionTPDLaden,
			FuelConsumptionTPDBallast: v.FuelConsumptionTPDBallast,
		})
	}
	c.JSON(http.StatusOK, gin.H{"vessels": out})
}

// Runs handles GET /api/v1/runs
func (h *Handler) Runs(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusOK, gin.H{"runs": []models.RunInfo{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	runs, err := h.Store.RecentDecisions(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]models.RunInfo, 0, len(runs))
	for _, r := range runs {
		out = append(out, models.RunInfo{
			ID:          r.ID,
			CreatedAt:   r.CreatedAt.Format(time.RFC3339),
			Decision:    r.Decision,
			NetbackAUSD: r.NetbackAUSD,
			NetbackBUSD: r.NetbackBUSD,
			DeltaAdjUSD: r.DeltaAdjUSD,
			LotsA:       r.LotsA,
			LotsB:       r.LotsB,
		})
	}
	c.JSON(http.StatusOK, gin.H{"runs": out})
}
