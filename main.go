package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retirement-planner/config"
	httpLayer "retirement-planner/http"
	"retirement-planner/repository"
	"retirement-planner/service"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	planRepo := repository.NewPlanRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Addr != "" {
		cache = repository.NewRedisCache(cfg.Redis.Addr, cfg.CacheTTL())
		log.Printf("Using Redis cache at %s", cfg.Redis.Addr)
	} else {
		cache = repository.NewMockCache()
	}

	projectionService := service.NewProjectionService(
		planRepo,
		cache,
		cfg.RateAssumptions(),
		cfg.AgePolicy(),
	)

	planHandler := httpLayer.NewPlanHandler(projectionService)
	savingsHandler := httpLayer.NewSavingsHandler(projectionService)
	incomeHandler := httpLayer.NewIncomeHandler(projectionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimitPerMin, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/retirement/plan",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(planHandler.BuildPlan),
		),
	)

	mux.Handle(
		"/retirement/savings",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(savingsHandler.ProjectSavings),
		),
	)

	mux.Handle(
		"/retirement/income",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(incomeHandler.ProjectIncome),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSecs) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost%s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
