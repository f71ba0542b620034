package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect-api/core/cache"
	"careconnect-api/core/config"
	"careconnect-api/core/database"
	"careconnect-api/core/logger"
	"careconnect-api/core/middleware"
	"careconnect-api/core/notify"
	"careconnect-api/core/worker"
	"careconnect-api/modules/address"
	"careconnect-api/modules/auth"
	"careconnect-api/modules/availability"
	"careconnect-api/modules/category"
	"careconnect-api/modules/payment"
	"careconnect-api/modules/profile"
	"careconnect-api/modules/verification"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Run loads configuration, initializes shared infrastructure, wires every
// module and serves until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	cacheClient, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer cacheClient.Close()

	sender := notify.NewSenderFromConfig(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())

	mw := middleware.NewMiddleware(cacheClient)

	authSvc := auth.GetService(db, cacheClient, sender)
	profileSvc := profile.GetService(db)

	auth.Init(e, db, cacheClient, sender, mw)
	profile.Init(e, db, mw)
	address.Init(e, db, mw)
	availability.Init(e, db, profileSvc, mw)
	category.Init(e, db, mw)
	verificationSvc := verification.Init(e, db, profileSvc, mw)
	payment.Init(e, db, authSvc, mw)

	w := worker.NewWorker(cfg.Redis, cfg.Worker)
	if err := verification.RegisterTasks(w, verificationSvc, cfg.Worker.VerificationExpiryDays); err != nil {
		return fmt.Errorf("register worker tasks: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer w.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
