package main

import (
	"context"
	"net/http"

	authapp "github.com/ecomstore/catalog/application/auth"
	catalogapp "github.com/ecomstore/catalog/application/catalog"
	"github.com/ecomstore/catalog/cmd/config"
	redisclient "github.com/ecomstore/catalog/cmd/redis"
	_ "github.com/ecomstore/catalog/docs"
	productrepo "github.com/ecomstore/catalog/repository/product"
	redisrepo "github.com/ecomstore/catalog/repository/redis"
	"github.com/ecomstore/catalog/thirdparty/rabbitmq"
	"github.com/ecomstore/catalog/transport"
	"github.com/ecomstore/catalog/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title CATALOG API
// @version 1.0
// @description Catalog Query Service API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("source", cfg.Catalog.Source))

	// Initialize Redis client (sessions, optional catalog snapshot cache)
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	RedisRepo := redisrepo.NewRepository()

	// Pick the catalog source
	var source productrepo.CatalogSource
	switch cfg.Catalog.Source {
	case "sql":
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
		source = productrepo.NewSQLSource(db)
	case "http":
		source = productrepo.NewHTTPSource(cfg.Catalog.HTTPURL)
	default:
		source = productrepo.NewGeneratedSource(cfg.Catalog.GeneratedCount)
	}
	if cfg.Catalog.CacheTTL > 0 {
		source = productrepo.NewCachedSource(source, RedisRepo, cfg.Catalog.CacheTTL)
	}

	// Optional search analytics publisher
	var publisher catalogapp.SearchEventPublisher
	if cfg.Rabbit.Enabled {
		pub, err := rabbitmq.NewPublisher(cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer pub.Close()
		publisher = pub
	}

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(source, publisher)
	verifier := authapp.NewStaticVerifier(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash)
	AuthApp := authapp.NewAuthApp(cfg, verifier, RedisRepo)

	httpTransport := transport.NewTransport(AuthApp, CatalogApp, cfg.Auth.InternalAPIKey)

	// Catalog refresh consumer invalidates the snapshot cache on upstream changes
	if cfg.Rabbit.Enabled {
		consumer, err := rabbitmq.NewConsumer(
			cfg.Rabbit.Host, cfg.Rabbit.Port, cfg.Rabbit.User, cfg.Rabbit.Password,
			"http://localhost:"+cfg.Server.Port, cfg.Auth.InternalAPIKey,
		)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(context.Background()); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
