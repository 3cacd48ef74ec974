// Package container builds the application graph from configuration and
// already-connected infrastructure clients.
package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/application"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/kvstore"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/objectstore"
	"github.com/oksasatya/creator-commerce/internal/infrastructure/search"
	kvrepo "github.com/oksasatya/creator-commerce/internal/infrastructure/storage"
	handlers "github.com/oksasatya/creator-commerce/internal/interface/http"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
)

// Infra holds optional clients. Only Store is required.
type Infra struct {
	Store     *kvstore.Store
	Redis     *redis.Client
	GCS       *storage.Client
	ES        *elasticsearch.Client
	Publisher *helpers.RabbitPublisher
	Registry  *prometheus.Registry
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Infra  Infra

	DB       *kvrepo.DB
	JWT      *helpers.JWTManager
	Cookies  *helpers.Manager
	Metrics  *application.Metrics
	Profiles *search.ProfileIndex // nil without Elasticsearch

	Auth       *application.AuthUseCases
	Messaging  *application.MessagingUseCases
	Posts      *application.PostUseCases
	Comments   *application.CommentUseCases
	Social     *application.ProfileUseCases
	Shop       *application.ShopUseCases
	Seller     *application.SellerUseCases
	Onboarding *application.OnboardingUseCases
	Settings   *application.SettingsUseCases

	AuthHandler       *handlers.AuthHandler
	ProfileHandler    *handlers.ProfileHandler
	PostHandler       *handlers.PostHandler
	MessagingHandler  *handlers.MessagingHandler
	ShopHandler       *handlers.ShopHandler
	SellerHandler     *handlers.SellerHandler
	OnboardingHandler *handlers.OnboardingHandler
}

func New(cfg *config.Config, logger *logrus.Logger, infra Infra) *Container {
	if infra.Registry == nil {
		infra.Registry = prometheus.NewRegistry()
	}
	if infra.Store == nil {
		infra.Store = kvstore.NewMemoryStore(logger)
	}
	c := &Container{Config: cfg, Logger: logger, Infra: infra}

	c.DB = kvrepo.NewDB(infra.Store, logger)
	c.JWT = helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL, cfg.AppName)
	c.Cookies = helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)
	c.Metrics = application.NewMetrics(infra.Registry)

	users := kvrepo.NewUserRepository(c.DB)
	profiles := kvrepo.NewProfileRepository(c.DB)
	posts := kvrepo.NewPostRepository(c.DB)

	var publisher application.EmailPublisher
	if infra.Publisher != nil {
		publisher = infra.Publisher
	}
	notifier := application.NewNotifier(publisher, cfg, logger)

	var searcher application.ProfileSearcher
	if infra.ES != nil {
		c.Profiles = search.NewProfileIndex(infra.ES, cfg.ESProfilesIndex, logger)
		searcher = c.Profiles
	}

	var uploader application.ImageUploader
	if infra.GCS != nil && cfg.GCSBucket != "" {
		uploader = objectstore.NewGCSUploader(infra.GCS, cfg.GCSBucket)
	}

	c.Auth = application.NewAuthUseCases(kvrepo.NewAuthRepository(c.DB, users), notifier, c.Metrics)
	c.Messaging = application.NewMessagingUseCases(kvrepo.NewMessageRepository(c.DB, users, profiles), uploader, c.DB, c.Metrics)
	c.Posts = application.NewPostUseCases(posts, c.Metrics)
	c.Comments = application.NewCommentUseCases(kvrepo.NewCommentRepository(c.DB, users), posts, logger)
	c.Social = application.NewProfileUseCases(profiles, searcher, logger, c.Metrics)
	c.Shop = application.NewShopUseCases(kvrepo.NewProductRepository(c.DB), kvrepo.NewOrderRepository(c.DB), users, c.DB, notifier, c.Metrics)
	c.Seller = application.NewSellerUseCases(kvrepo.NewSellerProductRepository(c.DB), c.DB, c.Metrics)
	onboarding := kvrepo.NewOnboardingRepository(c.DB)
	c.Onboarding = application.NewOnboardingUseCases(onboarding, c.DB, c.Metrics)
	c.Settings = application.NewSettingsUseCases(onboarding)

	c.AuthHandler = handlers.NewAuthHandler(c.Auth, c.JWT, c.Cookies, logger)
	c.ProfileHandler = handlers.NewProfileHandler(c.Social, logger)
	c.PostHandler = handlers.NewPostHandler(c.Posts, c.Comments, logger)
	c.MessagingHandler = handlers.NewMessagingHandler(c.Messaging, logger)
	c.ShopHandler = handlers.NewShopHandler(c.Shop, logger)
	c.SellerHandler = handlers.NewSellerHandler(c.Seller, logger)
	c.OnboardingHandler = handlers.NewOnboardingHandler(c.Onboarding, c.Settings, logger)
	return c
}
