package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/container"
	"github.com/oksasatya/creator-commerce/internal/interface/middleware"
	"github.com/oksasatya/creator-commerce/internal/router"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	infra, cleanup, err := container.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("infrastructure: %v", err)
	}
	defer cleanup()

	c := container.New(cfg, logger, infra)
	if err := c.IndexProfiles(ctx); err != nil {
		helpers.LogError(logger, "profile indexing failed; search falls back to a scan", err, nil)
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	r.Use(middleware.CORS(cfg.CORSOrigins()))
	r.Use(middleware.NewHTTPMetrics(infra.Registry).Handler())
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{})))

	reg := router.NewRegistry(r)
	router.InitModules(reg, c)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.WithField("store", cfg.StoreDriver).Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
