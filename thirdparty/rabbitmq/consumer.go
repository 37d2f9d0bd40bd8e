package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/decomizer/storefront/utils/logger"
	"github.com/go-resty/resty/v2"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	client  *resty.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		client:  newCancelClient(apiURL, apiKey),
	}, nil
}

func newCancelClient(apiURL, apiKey string) *resty.Client {
	return resty.New().
		SetBaseURL(apiURL).
		SetTimeout(10*time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Internal-Service", "order-expiration-consumer")
}

// Start consumes expiration messages until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		expirationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var orderMsg OrderExpirationMessage
	if err := json.Unmarshal(msg.Body, &orderMsg); err != nil {
		logger.Error("[Consumer] unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := cancelOrder(ctx, c.client, orderMsg.OrderID); err != nil {
		logger.Error("[Consumer] cancel order", zap.Uint64("order_id", orderMsg.OrderID), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[Consumer] order expiration handled", zap.Uint64("order_id", orderMsg.OrderID))
}

// cancelOrder calls the internal cancel endpoint. Client errors mean the order
// is no longer pending and count as handled, server and network errors are retried.
func cancelOrder(ctx context.Context, client *resty.Client, orderID uint64) error {
	resp, err := client.R().
		SetContext(ctx).
		SetPathParam("id", fmt.Sprintf("%d", orderID)).
		Post("/internal/v1/order/{id}/cancel")
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
