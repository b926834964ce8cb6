package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/digitalloto/loto-backend/api/routes"
	"github.com/digitalloto/loto-backend/internal/config"
	"github.com/digitalloto/loto-backend/internal/handlers"
	"github.com/digitalloto/loto-backend/internal/repositories/jsonstore"
	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	// Load .env if present; real environments inject variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogger(cfg.LogLevel)

	// Flat-file storage; seed starter data on first run
	store := jsonstore.NewStore(cfg.Data.Dir)
	if cfg.Data.Seed {
		jsonstore.Seed(store)
	}

	drawRepo := jsonstore.NewDrawRepository(store)
	ticketRepo := jsonstore.NewTicketRepository(store)
	balanceRepo := jsonstore.NewBalanceRepository(store, cfg.Wallet.DefaultBalance)
	packageRepo := jsonstore.NewPackageRepository(store)
	bannerRepo := jsonstore.NewBannerRepository(store)

	// The wallet service is shared so ticket and package purchases debit
	// through the same lock
	walletService := services.NewWalletService(balanceRepo)
	drawService := services.NewDrawService(drawRepo, ticketRepo, nil)
	ticketService := services.NewTicketService(ticketRepo, drawRepo, walletService)
	packageService := services.NewPackageService(packageRepo, drawRepo, ticketRepo, walletService, nil)
	statsService := services.NewStatsService(drawRepo, ticketRepo, packageRepo, walletService)
	bannerService := services.NewBannerService(bannerRepo)

	handlerDeps := routes.HandlerDependencies{
		DrawHandler:    handlers.NewDrawHandler(drawService),
		TicketHandler:  handlers.NewTicketHandler(ticketService),
		PackageHandler: handlers.NewPackageHandler(packageService),
		WalletHandler:  handlers.NewWalletHandler(walletService),
		StatsHandler:   handlers.NewStatsHandler(statsService),
		BannerHandler:  handlers.NewBannerHandler(bannerService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port, "dataDir", cfg.Data.Dir)

	// Run server in a goroutine so that it doesn't block
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	slog.Info("Server exiting")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}
