package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/decomizer/storefront/cmd/config"
	"github.com/decomizer/storefront/thirdparty/rabbitmq"
	"github.com/decomizer/storefront/utils/logger"
	"go.uber.org/zap"
)

// worker cancels unpaid orders once their expiration message is delivered.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Internal.APIURL,
		cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Order expiration worker running", zap.String("api_url", cfg.Internal.APIURL))
	if err := consumer.Start(ctx); err != nil {
		logger.Error("consumer stopped", zap.Error(err))
		return
	}
	logger.Info("Order expiration worker stopped")
}
