package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/revanthkumar92/quantara/internal/application/usecase"
	httpInterface "github.com/revanthkumar92/quantara/internal/interfaces/http"
	"github.com/revanthkumar92/quantara/internal/interfaces/http/handler"
	"github.com/revanthkumar92/quantara/pkg/config"
	"github.com/revanthkumar92/quantara/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	log.Info("Starting Quantara server")

	// The static root is produced by the frontend export step. Refuse to
	// start without it rather than serving 404s for the whole site.
	static, err := httpInterface.NewStaticMount(cfg.Static.Root, log)
	if err != nil {
		log.Error("Static root unavailable, did the frontend build run?", err)
		os.Exit(1)
	}
	log.Info("Static site mounted", "root", static.Root())

	listQubitsUC := usecase.NewListQubitsUseCase(log)
	qubitAPIHandler := handler.NewQubitAPIHandler(listQubitsUC, log)

	router := httpInterface.NewRouter(qubitAPIHandler, static, cfg.RateLimit, log)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("HTTP server starting", "port", cfg.Server.Port)
		log.Info("Site available at http://localhost:" + cfg.Server.Port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
