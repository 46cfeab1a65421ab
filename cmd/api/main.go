package main

import (
	"log"

	"delivery-backend/internal/bootstrap"
	"delivery-backend/internal/shared/config"
	"delivery-backend/internal/shared/server"
	"delivery-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Info("config.loaded", cfg.Redacted())

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
