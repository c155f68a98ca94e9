package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/travel-admin/internal/bootstrap"
	"github.com/GregMSThompson/travel-admin/internal/config"
	"github.com/GregMSThompson/travel-admin/internal/handlers"
	"github.com/GregMSThompson/travel-admin/internal/middleware"
	"github.com/GregMSThompson/travel-admin/internal/response"
	"github.com/GregMSThompson/travel-admin/internal/router"
	"github.com/GregMSThompson/travel-admin/internal/services"
	"github.com/GregMSThompson/travel-admin/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	pstore := store.NewPackageStore(bs.Documents)
	tstore := store.NewTestimonialStore(bs.Documents)
	hstore := store.NewHighlightStore(bs.Documents)
	sstore := store.NewSettingsStore(bs.Documents)

	// services
	validate := services.NewValidator()
	pserv := services.NewPackageService(pstore, validate, cfg.Init)
	tserv := services.NewTestimonialService(tstore, validate)
	hserv := services.NewHighlightService(hstore, validate)
	sserv := services.NewSettingsService(sstore, validate)
	aserv := services.NewAuthService(bs.Identity, validate)
	dserv := services.NewDashboardService(pstore, tstore, hstore)

	if cfg.InitCategories {
		res, err := pserv.Initialize(context.Background())
		exitOnError("category initialization failed", err, bs.Log)
		bs.Log.Info("categories initialized", "created", res.Created, "fallback", res.Fallback)
	}

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.PackageSvc = pserv
	deps.TestimonialSvc = tserv
	deps.HighlightSvc = hserv
	deps.SettingsSvc = sserv
	deps.AuthSvc = aserv
	deps.DashboardSvc = dserv

	// middleware
	mw := middleware.NewMiddleware(bs.Firebase, rh)
	logMw := middleware.NewLoggerMiddleware(bs.Log)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst, cfg.TrustedProxies, rh)

	// router
	r := router.NewRouter(deps, router.WithMiddleware(mw, logMw.RequestLogger, loginLimiter, cfg.CORSOrigins))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		bs.Log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	bs.Log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		bs.Log.Error("graceful shutdown failed", "error", err)
	}
}
