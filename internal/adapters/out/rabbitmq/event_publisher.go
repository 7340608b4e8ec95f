// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. The event kind doubles as the routing key, so consumers bind to
// exactly the slice of the lifecycle they care about (for example
// "order.assignment_*" for the dispatch screen).
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeName = "order_events"

// EventPublisher implements ports.EventPublisher over an AMQP channel.
type EventPublisher struct {
	channel *amqp.Channel
}

// eventMessage is the wire shape of one published event.
type eventMessage struct {
	Kind         string  `json:"kind"`
	OrderID      string  `json:"order_id"`
	CustomerID   string  `json:"customer_id"`
	RestaurantID string  `json:"restaurant_id"`
	Status       string  `json:"status"`
	DriverID     *string `json:"driver_id,omitempty"`
	Note         string  `json:"note,omitempty"`
	OccurredAt   string  `json:"occurred_at"`
}

// NewEventPublisher opens a channel on the given connection and declares the
// durable topic exchange for order events.
func NewEventPublisher(conn *amqp.Connection) (*EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &EventPublisher{channel: ch}, nil
}

// Publish sends one event to the exchange, routed by its kind.
func (p *EventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	msg := eventMessage{
		Kind:         event.Kind,
		OrderID:      event.OrderID.String(),
		CustomerID:   event.CustomerID.String(),
		RestaurantID: event.RestaurantID.String(),
		Status:       event.Status.String(),
		Note:         event.Note,
		OccurredAt:   event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if event.DriverID != nil {
		driverID := event.DriverID.String()
		msg.DriverID = &driverID
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		exchangeName,
		event.Kind,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

// Close releases the underlying channel.
func (p *EventPublisher) Close() error {
	return p.channel.Close()
}
