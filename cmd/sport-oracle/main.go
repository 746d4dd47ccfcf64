package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/czl524069797/sport-oracle/internal/cache"
	"github.com/czl524069797/sport-oracle/internal/config"
	"github.com/czl524069797/sport-oracle/internal/handlers"
	"github.com/czl524069797/sport-oracle/internal/headtohead"
	"github.com/czl524069797/sport-oracle/internal/league"
	"github.com/czl524069797/sport-oracle/internal/provider/statsapi"
	"github.com/czl524069797/sport-oracle/internal/schedule"
	"github.com/czl524069797/sport-oracle/internal/teamstats"
	"github.com/czl524069797/sport-oracle/internal/trading"
)

func main() {
	log.Println("Starting Sport Oracle...")

	// Local development configuration, same file the frontend uses.
	if err := godotenv.Load(".env.local"); err == nil {
		log.Println("Loaded .env.local")
	}

	cfg := config.Load()

	// One registry owns every cache bucket for the process lifetime.
	registry := cache.NewRegistry()

	statsClient := statsapi.New(cfg.Upstream.BaseURL)
	directory := league.NewDirectory(registry, statsClient)
	standings := league.NewStandingsIndex(registry, statsClient, cfg.Cache.StandingsTTL)

	scheduleAgg := schedule.New(registry, statsClient, directory, standings, cfg.Cache.ScheduleTTL)
	teamStats := teamstats.New(registry, statsClient, directory, cfg.Cache.TeamStatsTTL)
	matchups := headtohead.New(registry, statsClient, directory, cfg.Cache.HeadToHeadTTL)

	tradingClient := trading.NewClient(cfg.Trading.BaseURL, cfg.Trading.APIKey, nil)

	handler := handlers.NewHandler(scheduleAgg, teamStats, matchups)
	tradingHandler := handlers.NewTradingHandler(tradingClient)

	// Setup router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/schedule", func(r chi.Router) {
			r.Get("/today", handler.TodaySchedule)
			r.Get("/upcoming", handler.UpcomingSchedule)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/h2h", handler.HeadToHead)
			r.Get("/{teamID}/stats", handler.TeamStats)
			r.Get("/{teamID}/players", handler.TeamPlayers)
		})

		// Alias kept for clients that browse players by team.
		r.Get("/players/{teamID}/players", handler.TeamPlayers)

		r.Route("/trading", func(r chi.Router) {
			r.Post("/place", tradingHandler.PlaceOrder)
			r.Post("/cancel", tradingHandler.CancelOrder)
			r.Get("/orders", tradingHandler.OpenOrders)
			r.Get("/balance", tradingHandler.Balance)
		})
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Sport Oracle listening on %s", cfg.Server.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			if err := srv.Close(); err != nil {
				log.Fatalf("Could not stop server: %v", err)
			}
		}
	}

	log.Println("Sport Oracle stopped")
}
