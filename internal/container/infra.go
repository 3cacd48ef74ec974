package container

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
	pginfra "github.com/oksasatya/creator-commerce/internal/infrastructure/postgres"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

// Connect dials the clients cfg asks for. Required clients (the store
// backend) fail hard; optional ones are logged and left nil. The returned
// func closes everything that was opened.
func Connect(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Infra, func(), error) {
	var (
		infra   Infra
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	infra.Registry = prometheus.NewRegistry()
	infra.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.StoreDriver == "redis" || cfg.RateLimitEnabled {
		rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		switch {
		case err == nil:
			infra.Redis = rdb
			closers = append(closers, func() { _ = rdb.Close() })
		case cfg.StoreDriver == "redis":
			cleanup()
			return Infra{}, nil, fmt.Errorf("redis: %w", err)
		default:
			helpers.LogError(logger, "redis unavailable; rate limiting disabled", err, nil)
		}
	}

	switch cfg.StoreDriver {
	case "memory":
		infra.Store = kvstore.NewMemoryStore(logger)
	case "redis":
		infra.Store = kvstore.New(kvstore.NewRedis(infra.Redis, cfg.StorePrefix), logger)
	case "postgres":
		pool, err := pginfra.NewPool(ctx, cfg)
		if err != nil {
			cleanup()
			return Infra{}, nil, fmt.Errorf("postgres: %w", err)
		}
		closers = append(closers, pool.Close)
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			cleanup()
			return Infra{}, nil, fmt.Errorf("migrations: %w", err)
		}
		infra.Store = kvstore.New(kvstore.NewPostgres(pool), logger)
	default:
		cleanup()
		return Infra{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			helpers.LogError(logger, "gcs unavailable; image uploads disabled", err, nil)
		} else {
			infra.GCS = gcs
			closers = append(closers, func() { _ = gcs.Close() })
		}
	}

	if cfg.ElasticsearchEnabled {
		es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			helpers.LogError(logger, "elasticsearch unavailable; search falls back to a scan", err, nil)
		} else {
			infra.ES = es
		}
	}

	if cfg.RabbitMQEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			helpers.LogError(logger, "rabbitmq unavailable; emails will not be queued", err, nil)
		} else {
			infra.Publisher = pub
			closers = append(closers, pub.Close)
		}
	}

	return infra, cleanup, nil
}

// IndexProfiles creates the search index and loads every profile into it.
// It is a no-op without Elasticsearch.
func (c *Container) IndexProfiles(ctx context.Context) error {
	if c.Profiles == nil {
		return nil
	}
	if err := c.Profiles.EnsureIndex(ctx); err != nil {
		return err
	}
	profiles, err := c.Social.List(ctx)
	if err != nil {
		return err
	}
	n := c.Profiles.Reindex(ctx, profiles)
	helpers.LogInfo(c.Logger, "profiles indexed", logrus.Fields{"count": n, "index": c.Profiles.Index})
	return nil
}
