package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Publish the three reference messages to the configured broker
// 2. Wait for the consumer to process them
// 3. Query the API per device and compare the stored counts

type scenario struct {
	name     string
	body     string
	deviceID string
	expected int
}

var scenarios = []scenario{
	{
		name:     "well-formed payload is stored",
		body:     `{"e2e-dev-1": {"data": [[762, [51.33, 12.33, 1.20]]], "time": 1735683480000}}`,
		deviceID: "e2e-dev-1",
		expected: 1,
	},
	{
		name:     "empty object is dropped",
		body:     `{}`,
		deviceID: "",
		expected: 0,
	},
	{
		name:     "empty data is dropped",
		body:     `{"e2e-dev-2": {"data": [], "time": 1700000000000}}`,
		deviceID: "e2e-dev-2",
		expected: 0,
	},
}

func main() {
	ctx := context.Background()
	apiURL := env("API_URL", "http://localhost:8080")

	var err error
	switch env("MESSAGE_BROKER", "rabbitmq") {
	case "kafka":
		err = publishKafka(ctx)
	default:
		err = publishAMQP(ctx)
	}
	if err != nil {
		fmt.Printf("failed to publish: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Published %d messages\n", len(scenarios))

	// Allow some time for the consumer to process the messages
	time.Sleep(5 * time.Second)

	failed := false
	for _, s := range scenarios {
		if s.deviceID == "" {
			fmt.Printf("SKIP %s: no device to query\n", s.name)
			continue
		}
		total, err := countSignals(apiURL, s.deviceID)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", s.name, err)
			failed = true
			continue
		}
		if total != s.expected {
			fmt.Printf("FAIL %s: expected %d records, got %d\n", s.name, s.expected, total)
			failed = true
			continue
		}
		fmt.Printf("PASS %s\n", s.name)
	}
	if failed {
		os.Exit(1)
	}
}

func publishAMQP(ctx context.Context) error {
	conn, err := amqp.Dial(env("AMQP_URL", "amqp://localhost:5672"))
	if err != nil {
		return err
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	exchange := env("AMQP_EXCHANGE", "development/signal/read")
	routingKey := env("AMQP_ROUTING_KEY", "sample_routing_key")
	for _, s := range scenarios {
		err := ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         []byte(s.body),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

func publishKafka(ctx context.Context) error {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: []string{env("KAFKA_BROKERS", "localhost:9092")},
		Topic:   env("KAFKA_TOPIC", "signals"),
	})
	defer writer.Close()

	messages := make([]kafka.Message, 0, len(scenarios))
	for _, s := range scenarios {
		messages = append(messages, kafka.Message{Value: []byte(s.body)})
	}
	return writer.WriteMessages(ctx, messages...)
}

func countSignals(apiURL, deviceID string) (int, error) {
	resp, err := http.Get(fmt.Sprintf("%s/signals?deviceId=%s&limit=100", apiURL, url.QueryEscape(deviceID)))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	var page struct {
		Total int `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return 0, err
	}
	return page.Total, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
