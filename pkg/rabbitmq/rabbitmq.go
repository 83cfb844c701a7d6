package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

const marketplaceQueue = "marketplace_events"

// Event kinds published by the API.
const (
	EventProductListed  = "product.listed"
	EventSellerPromoted = "seller.promoted"
)

// Event is the envelope for every message on the marketplace queue.
type Event struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel, and declares the
// marketplace event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		marketplaceQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", marketplaceQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s declared", marketplaceQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishProductListed announces a freshly inserted product.
func (c *Client) PublishProductListed(payload map[string]interface{}) error {
	return c.publish(EventProductListed, payload)
}

// PublishSellerPromoted announces a user whose role update assigned seller.
func (c *Client) PublishSellerPromoted(payload map[string]interface{}) error {
	return c.publish(EventSellerPromoted, payload)
}

func (c *Client) publish(kind string, payload map[string]interface{}) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	event := Event{
		ID:         uuid.New().String(),
		Kind:       kind,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", kind, err)
	}

	err = c.channel.Publish(
		"",               // exchange: default
		marketplaceQueue, // routing key: the queue name
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", kind, err)
	}

	log.Printf(" [x] Sent %s event %s", kind, event.ID)
	return nil
}

// ConsumeMarketplaceEvents registers a consumer on the marketplace queue and
// processes deliveries with the given handler. Messages are acked on success
// and nacked (requeued) on handler error.
func (c *Client) ConsumeMarketplaceEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c == nil || c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := c.channel.QueueDeclare(
		marketplaceQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack: manual acknowledgement
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}
