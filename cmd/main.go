package main

import (
	"context"
	stderrors "errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/decomizer/storefront/application/catalog"
	dashboardapp "github.com/decomizer/storefront/application/dashboard"
	notificationapp "github.com/decomizer/storefront/application/notification"
	orderapp "github.com/decomizer/storefront/application/order"
	userapp "github.com/decomizer/storefront/application/user"
	visitapp "github.com/decomizer/storefront/application/visit"
	"github.com/decomizer/storefront/cmd/config"
	redisclient "github.com/decomizer/storefront/cmd/redis"
	_ "github.com/decomizer/storefront/docs"
	catalogRepo "github.com/decomizer/storefront/repository/catalog"
	dashboardRepo "github.com/decomizer/storefront/repository/dashboard"
	inventoryRepo "github.com/decomizer/storefront/repository/inventory"
	notificationRepo "github.com/decomizer/storefront/repository/notification"
	orderRepo "github.com/decomizer/storefront/repository/order"
	redisRepo "github.com/decomizer/storefront/repository/redis"
	txRepo "github.com/decomizer/storefront/repository/tx"
	userRepo "github.com/decomizer/storefront/repository/user"
	"github.com/decomizer/storefront/thirdparty/rabbitmq"
	"github.com/decomizer/storefront/transport"
	"github.com/decomizer/storefront/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title DECOMIZER Storefront API
// @version 1.0
// @description Storefront and admin API of the DECOMIZER bedding shop
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
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Expiration messages are optional, pending orders then stay until cancelled manually
	var publisher rabbitmq.ExpirationPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	NotificationRepo := notificationRepo.NewNotificationRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	DashboardRepo := dashboardRepo.NewDashboardRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:         userapp.NewUserApp(cfg, TxRepo, UserRepo, NotificationRepo, RedisRepo),
		CatalogApp:      catalogapp.NewCatalogApp(CatalogRepo),
		OrderApp:        orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, InventoryRepo, publisher),
		DashboardApp:    dashboardapp.NewDashboardApp(cfg, DashboardRepo, RedisRepo, nil),
		NotificationApp: notificationapp.NewNotificationApp(NotificationRepo),
		VisitApp:        visitapp.NewVisitApp(cfg, RedisRepo, nil),
	}, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err server shutdown", zap.Error(err))
	}
}
