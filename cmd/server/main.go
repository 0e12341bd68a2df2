package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"buildpro-site/internal/api"
	"buildpro-site/internal/cms"
	"buildpro-site/internal/config"
	"buildpro-site/internal/content"
	"buildpro-site/internal/database"
	"buildpro-site/internal/httpserver"
	"buildpro-site/internal/inquiry"
	"buildpro-site/internal/logger"
	"buildpro-site/internal/notify"
	"buildpro-site/internal/site"
	"buildpro-site/internal/webhook"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, envErr := config.LoadConfig()
	log := logger.NewLogger(cfg.Development())
	defer log.Sync()

	if envErr != nil {
		log.Warn("failed to load .env, using process environment", zap.Error(envErr))
	}
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}

	profile, err := config.LoadSite(cfg.SiteProfile)
	if err != nil {
		log.Fatal("failed to load site profile", zap.String("path", cfg.SiteProfile), zap.Error(err))
	}

	// Inquiries always live in the database, whatever the content source.
	db := database.InitGorm(cfg, log)

	var catalog *content.Catalog
	switch cfg.ContentSource {
	case config.SourceCMS:
		if cfg.CMSBaseURL == "" {
			log.Fatal("CMS_BASE_URL is required when CONTENT_SOURCE=cms")
		}
		catalog = cms.NewCatalog(cms.NewClient(cfg))
	case config.SourceDatabase:
		catalog = content.NewGormCatalog(db)
	default:
		log.Fatal("unsupported CONTENT_SOURCE", zap.String("source", cfg.ContentSource))
	}
	log.Info("content source selected", zap.String("source", cfg.ContentSource))

	var invalidator webhook.Invalidator
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		cache := content.NewCache(rdb, cfg.CacheTTL, log)
		catalog = content.WrapCatalog(cache, catalog)
		invalidator = cache
		log.Info("content cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	var (
		notifier inquiry.Notifier
		broker   api.Broker
	)
	if cfg.AMQPURL != "" {
		publisher, err := notify.NewPublisher(cfg.AMQPURL)
		if err != nil {
			log.Warn("inquiry notifications disabled", zap.Error(err))
		} else {
			defer publisher.Close()
			notifier = publisher
			broker = publisher
		}
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		log.Fatal("failed to parse templates", zap.Error(err))
	}

	inquiries := inquiry.NewService(inquiry.NewGormStore(db), notifier, log)
	router := httpserver.NewRouter(httpserver.Handlers{
		Site:      site.NewHandler(catalog, profile, inquiries, log),
		Renderer:  renderer,
		Health:    api.NewHealthHandler(db, broker),
		Content:   api.NewContentHandler(catalog, log),
		Inquiries: api.NewInquiryHandler(inquiries),
		Webhook:   webhook.NewHandler(cfg.WebhookSecret, invalidator, log),
	}, cfg.AdminToken, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
