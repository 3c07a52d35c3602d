package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddit-insights-service/config"
	"reddit-insights-service/fetcher"
	"reddit-insights-service/metrics"
	"reddit-insights-service/router"
	"reddit-insights-service/service"
)

func main() {
	// Load configuration; missing credentials are fatal at startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	client, err := fetcher.NewClient(cfg)
	if err != nil {
		log.Fatal("Failed to create Reddit client: ", err)
	}

	svc := service.New(client, cfg.Cache.TTL, cfg.Cache.CleanupInterval)

	metrics.Init("reddit-insights-service", "1.0.0", os.Getenv("ENVIRONMENT"))

	r := router.Setup(svc, cfg)

	srv := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in background
	go func() {
		log.Printf("Reddit insights service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down reddit insights service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Reddit insights service stopped")
}
