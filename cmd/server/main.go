package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/sistemasvillaallende/Creditos/internal/cedulon"
	"github.com/sistemasvillaallende/Creditos/internal/config"
	"github.com/sistemasvillaallende/Creditos/internal/export"
	"github.com/sistemasvillaallende/Creditos/internal/server"
	"github.com/sistemasvillaallende/Creditos/internal/service"
	"github.com/sistemasvillaallende/Creditos/internal/upstream"
	"github.com/sistemasvillaallende/Creditos/pkg/utils"
)

func main() {
	gotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Creditos de Materiales console service",
		zap.String("api", cfg.Upstream.APIBaseURL),
		zap.String("cedulones", cfg.Upstream.CedulonesBaseURL),
		zap.Int("port", cfg.Server.Port))

	// Upstream clients
	creditosAPI := upstream.NewCreditosClient(cfg.Upstream.APIBaseURL, cfg.Upstream.Timeout, logger)
	cedulonesAPI := upstream.NewCedulonesClient(cfg.Upstream.CedulonesBaseURL, cfg.Upstream.Timeout, logger)

	// Services
	creditosSvc := service.NewCreditosService(creditosAPI, logger)
	deudaSvc := service.NewDeudaService(creditosAPI, cedulonesAPI, logger)
	cedulonSvc := service.NewCedulonService(cedulonesAPI, logger)
	ctasctesSvc := service.NewCtasCtesService(creditosAPI, logger)

	// Presentation helpers
	exporter := export.NewExporter(logger)
	renderer := cedulon.NewRenderer(cedulon.Config{
		LogoPath:    cfg.Cedulon.LogoPath,
		Municipio:   cfg.Cedulon.Municipio,
		Dependencia: cfg.Cedulon.Dependencia,
	}, logger)

	handlers := server.NewHandlers(creditosSvc, deudaSvc, cedulonSvc, ctasctesSvc, exporter, renderer, logger)
	srv := server.New(cfg, handlers, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
