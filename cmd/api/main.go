package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lng-diversion/internal/api/handlers"
	"lng-diversion/internal/api/middleware"
	"lng-diversion/internal/config"
	"lng-diversion/internal/data"
	"lng-diversion/internal/storage"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "examples/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		log = log.Level(lvl)
	}

	ref, err := data.LoadRefData(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Data.Dir).Msg("load reference data")
	}
	log.Info().
		Int("routes", len(ref.Routes)).
		Int("vessels", len(ref.Vessels)).
		Msg("reference data loaded")

	store, err := storage.Open(cfg.Storage.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.Storage.DSN).Msg("open storage")
	}
	defer store.Close()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery())

	h := handlers.New(ref, cfg, store, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/decide", h.Decide)
		api.POST("/stress", h.Stress)
		api.POST("/backtest", h.RunBacktest)

		api.GET("/routes", h.Routes)
		api.GET("/vessels", h.Vessels)
		api.GET("/runs", h.Runs)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
