package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/truck-fleet-tracker/internal/auth"
	"github.com/ukydev/truck-fleet-tracker/internal/broadcast"
	"github.com/ukydev/truck-fleet-tracker/internal/catalog"
	"github.com/ukydev/truck-fleet-tracker/internal/config"
	"github.com/ukydev/truck-fleet-tracker/internal/handlers"
	"github.com/ukydev/truck-fleet-tracker/internal/middleware"
	"github.com/ukydev/truck-fleet-tracker/internal/report"
	"github.com/ukydev/truck-fleet-tracker/internal/sim"
)

func main() {
	cfg := config.Load()

	registry := sim.NewRegistry(cfg.FleetSize, cfg.TickInterval)
	hub := broadcast.NewHub(registry, cfg.AllowedOrigin)
	scheduler := sim.NewScheduler(registry, hub, cfg.TickInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)
	go scheduler.Run(ctx)

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	users, err := auth.NewStaticUserStore(authService)
	if err != nil {
		log.WithError(err).Fatal("Failed to build user table")
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	vehicleHandler := handlers.NewVehicleHandler(registry)
	reportHandler := handlers.NewReportHandler(report.NewGeneratedSource(len(catalog.Drivers)))
	authMW := middleware.NewAuthMiddleware(authService)

	r := mux.NewRouter()
	r.HandleFunc("/api/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/api/vehicles/{id}", vehicleHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", vehicleHandler.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/drivers/{id}/report", reportHandler.Get).Methods(http.MethodGet)

	me := r.PathPrefix("/api/me").Subrouter()
	me.Use(authMW.Authenticate)
	me.HandleFunc("", authHandler.Me).Methods(http.MethodGet)

	r.HandleFunc("/ws", hub.ServeWS)
	r.Handle("/metrics", promhttp.Handler())

	handler := middleware.CORS(cfg.AllowedOrigin)(r)

	log.WithFields(log.Fields{
		"port":       cfg.Port,
		"fleet_size": cfg.FleetSize,
		"interval":   cfg.TickInterval,
	}).Info("Fleet tracker listening")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
