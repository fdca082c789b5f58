package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publishes one sample signal message to the configured exchange.
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	ctx := context.Background()

	url := os.Getenv("AMQP_URL")
	exchange := os.Getenv("AMQP_EXCHANGE")
	routingKey := os.Getenv("AMQP_ROUTING_KEY")
	if url == "" || exchange == "" || routingKey == "" {
		slog.ErrorContext(ctx, "AMQP_URL, AMQP_EXCHANGE and AMQP_ROUTING_KEY must be set")
		os.Exit(1)
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to open channel", "error", err)
		os.Exit(1)
	}
	defer ch.Close()

	body, err := json.Marshal(map[string]any{
		"66bb584d4ae73e488c30a072": map[string]any{
			"data": [][]any{
				{762, []float64{51.339764, 12.339223833333334, 1.2038000000000002}},
				{1766, []float64{51.33977733333333, 12.339211833333334, 1.531604}},
				{2763, []float64{51.339782, 12.339196166666667, 2.13906}},
			},
			"time": 1735683480000,
		},
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode message", "error", err)
		os.Exit(1)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(pubCtx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to publish message", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "Message published", "exchange", exchange, "routing_key", routingKey, "bytes", len(body))
}
