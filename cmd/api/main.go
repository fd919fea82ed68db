package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/app"
	"trip_planner/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	observability.Serve()

	planner, err := app.Build(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("planner init failed")
	}

	// http
	srv := server.New(log.Logger, cfg.PlanTimeout)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{P: planner, PlanTimeout: cfg.PlanTimeout})

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Dur("plan_timeout", cfg.PlanTimeout).
		Bool("llm", cfg.LLMKey != "").
		Bool("places", cfg.PlacesKey != "").
		Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
