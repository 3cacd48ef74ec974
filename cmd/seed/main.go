package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/container"
	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

func main() {
	demo := flag.Bool("demo-user", true, "register the demo account")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	if cfg.StoreDriver == "memory" {
		logger.Warn("STORE_DRIVER=memory; seeded data is lost when this process exits")
	}

	ctx := context.Background()
	infra, cleanup, err := container.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("infrastructure: %v", err)
	}
	defer cleanup()
	c := container.New(cfg, logger, infra)

	counts, err := c.DB.Seed(ctx)
	if err != nil {
		logger.Fatalf("seed: %v", err)
	}
	for key, n := range counts {
		logger.WithFields(logrus.Fields{"key": key, "items": n}).Info("seeded")
	}

	if *demo {
		u, err := c.Auth.Register(ctx, entity.RegisterRequest{Name: "Demo Maker", Email: "demo@example.com", Password: "password123"})
		switch {
		case err == nil:
			logger.WithField("id", u.ID).Info("demo user registered: demo@example.com / password123")
			_ = c.Auth.Logout(ctx)
		default:
			helpers.LogError(logger, "demo user not registered", err, nil)
		}
	}

	if err := c.IndexProfiles(ctx); err != nil {
		logger.Fatalf("index profiles: %v", err)
	}
}
