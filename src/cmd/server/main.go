package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/router"
	"github.com/api-sage/stablenet-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/stablenet-ledger/src/internal/config"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/services"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", err, nil)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)

	referenceRepo := memory.NewReferenceDataRepository()
	complianceRepo := memory.NewComplianceRepository(time.Now().UTC())

	rateService := services.NewRateService(referenceRepo)
	chargesService := services.NewChargesService(services.DefaultFeePercent, services.DefaultHighPriorityMultiplier)
	paymentService := services.NewPaymentService(rateService, chargesService, cfg.ProcessingDelay, cfg.StrictFxRates)
	liquidityService := services.NewLiquidityService(
		services.NewSeriesGenerator(referenceRepo),
		services.NewForecastService(),
		cfg.HistoryDays,
		cfg.ForecastPaths,
	)

	store := session.NewStore(liquidityService, session.Options{
		MaxLiquidityPoints: cfg.MaxLiquidityPoints,
		IdleTTL:            cfg.SessionIdleTTL,
		RandomSeed:         cfg.RandomSeed,
	})

	handler := router.New(router.Controllers{
		Session:    controller.NewSessionController(store),
		Reference:  controller.NewReferenceController(services.NewReferenceService(referenceRepo)),
		Rate:       controller.NewRateController(rateService),
		Charges:    controller.NewChargesController(chargesService),
		Payment:    controller.NewPaymentController(paymentService),
		Ledger:     controller.NewLedgerController(services.NewLedgerService()),
		Liquidity:  controller.NewLiquidityController(liquidityService),
		Compliance: controller.NewComplianceController(services.NewComplianceService(complianceRepo)),
	}, middleware.Session(store))

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", logger.Fields{
			"addr": server.Addr,
			"env":  cfg.Env,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", err, nil)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", err, nil)
		os.Exit(1)
	}
	logger.Info("http server stopped", nil)
}
