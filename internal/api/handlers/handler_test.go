package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lng-diversion/internal/api/models"
	"lng-diversion/internal/config"
	"lng-diversion/internal/model"
)

func testRef() model.RefData {
	return model.RefData{
		Routes: []model.Route{
			{LoadPort: "US_Gulf", DischargePort: "Rotterdam", DistanceNM: 5000},
			{LoadPort: "US_Gulf", DischargePort: "Tokyo", DistanceNM: 9500},
		},
		Vessels: []model.Vessel{
			{
				VesselClass:               "TFDE",
				CargoCapacityM3:           174000,
				LadenSpeedKn:              19.5,
				BallastSpeedKn:            19.0,
				BoilOffPctPerDay:          0.10,
				FuelConsumptionTPDLaden:   130,
				FuelConsumptionTPDBallast: 115,
			},
		},
		Carbon: model.CarbonParams{
			model.ParamEUAPriceUSDPerT: 74.40,
			model.ParamCO2FactorVLSFO:  3.114,
			model.ParamCO2FactorLNG:    2.750,
		},
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Voyage: config.VoyageConfig{
			LoadPort:        "US_Gulf",
			PortA:           "Rotterdam",
			PortB:           "Tokyo",
			DestinationA:    "Europe",
			DestinationB:    "Asia",
			InstrumentA:     "TTF",
			InstrumentB:     "JKM",
			VesselClass:     "TFDE",
			CargoCapacityM3: 174000,
			FuelType:        "VLSFO",
		},
		Market: config.MarketConfig{
			PriceAUSDMMBtu: 35.69,
			PriceBUSDMMBtu: 38.44,
			FreightUSDDay:  85000,
			FuelUSDPerT:    583,
			EUAUSDPerTCO2:  74.40,
		},
		Decision: config.DecisionConfig{
			BasisHaircutPct:   0.05,
			OpsBufferUSD:      50000,
			DecisionBufferUSD: 500000,
			CoveragePct:       0.80,
			LotAMMBtu:         10000,
			LotBMMBtu:         10000,
		},
		Stress: config.StressConfig{SpreadUSD: 2.0, FreightUSDDay: 25000, EUAUSD: 15},
	}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(testRef(), testConfig(t), nil, zerolog.Nop())
	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/decide", h.Decide)
	api.POST("/stress", h.Stress)
	api.POST("/backtest", h.RunBacktest)
	api.GET("/routes", h.Routes)
	api.GET("/vessels", h.Vessels)
	api.GET("/runs", h.Runs)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDecideEndpointDefaults(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/decide", models.DecideRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.DecideResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DIVERT", resp.Decision)
	assert.Equal(t, "Europe", resp.DestinationA.Destination)
	assert.Equal(t, "Asia", resp.DestinationB.Destination)
	assert.InDelta(t, 7.74e6, resp.Economics.DeltaNetbackRawUSD, 0.05e6)

	require.NotNil(t, resp.Hedge)
	require.Len(t, resp.Hedge.Legs, 2)
	assert.Equal(t, "BUY", resp.Hedge.Legs[0].Side)
	assert.Equal(t, "JKM", resp.Hedge.Legs[0].Instrument)
}

func TestDecideEndpointMarketOverrideFlipsToKeep(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/decide", models.DecideRequest{
		Market: &models.MarketRequest{PriceBUSDMMBtu: 36.00},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.DecideResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "KEEP", resp.Decision)
	assert.Nil(t, resp.Hedge)
}

func TestDecideEndpointUnknownVessel(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/decide", models.DecideRequest{
		Voyage: models.VoyageRequest{VesselClass: "Q-Max"},
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "vessel", resp.Error.Details["kind"])
}

func TestDecideEndpointBadParams(t *testing.T) {
	bad := 1.5
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/decide", models.DecideRequest{
		Params: &models.ParamsRequest{BasisHaircutPct: &bad},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestStressEndpoint(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/stress", models.StressRequest{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.StressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DIVERT", resp.BaseDecision)
	require.Len(t, resp.Scenarios, 6)
	assert.Equal(t, "Spread Collapse", resp.Scenarios[0].Name)
	assert.Contains(t, resp.ScenariosCausingFlip, "Spread Collapse")
	assert.Negative(t, resp.WorstCasePnLImpactUSD)
}

func TestBacktestEndpoint(t *testing.T) {
	historyPath := filepath.Join(t.TempDir(), "history.csv")
	csv := "date,ttf_usd_mmbtu,jkm_usd_mmbtu,freight_usd_day,fuel_usd_per_t,eua_usd_per_tco2\n" +
		"2025-06-02,35.10,37.40,82000,575,72.10\n" +
		"2025-06-03,35.45,37.95,83500,577,72.60\n" +
		"2025-06-04,35.69,38.44,85000,583,74.40\n" +
		"2025-06-05,36.02,36.50,85500,581,74.10\n" +
		"2025-06-06,35.80,38.90,84000,580,73.80\n"
	require.NoError(t, os.WriteFile(historyPath, []byte(csv), 0o644))

	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/backtest", models.BacktestRequest{
		HistoryFile:  historyPath,
		IncludeCurve: true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.BacktestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Summary.TotalObservations)
	assert.Len(t, resp.EquityCurve, 5)
	assert.Nil(t, resp.Ledger)
}

func TestBacktestEndpointMissingHistory(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/backtest", models.BacktestRequest{
		HistoryFile: filepath.Join(t.TempDir(), "nope.csv"),
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReferenceEndpoints(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/routes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var routes struct {
		Routes []models.RouteInfo `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	assert.Len(t, routes.Routes, 2)

	w = doJSON(t, router, http.MethodGet, "/api/v1/vessels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Nil store: runs degrade to an empty list, not an error.
	w = doJSON(t, router, http.MethodGet, "/api/v1/runs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var runs struct {
		Runs []models.RunInfo `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runs))
	assert.Empty(t, runs.Runs)
}
