// Package event publishes storefront domain events to Kafka. Publishing is
// fail-soft: a broker outage degrades the event stream, never the shopper.
package event

import (
	"context"

	"github.com/23prakashjha/Grocery-App/internal/domain"
	"github.com/23prakashjha/Grocery-App/pkg/kafka"
	"github.com/23prakashjha/Grocery-App/pkg/logger"
)

const (
	// TopicCartUpdated receives an event for every cart mutation.
	TopicCartUpdated = "storefront.cart.updated"
	// TopicOrderPlaced receives an event for every successful submission.
	TopicOrderPlaced = "storefront.order.placed"
)

// Event types.
const (
	TypeCartUpdated = "storefront.cart.updated"
	TypeOrderPlaced = "storefront.order.placed"
)

// CartUpdatedPayload describes a cart after one mutation.
type CartUpdatedPayload struct {
	SessionID string `json:"session_id"`
	ProductID string `json:"product_id"`
	Action    string `json:"action"`
	Quantity  int    `json:"quantity"`
	CartCount int    `json:"cart_count"`
}

// OrderPlacedPayload describes a successfully submitted order.
type OrderPlacedPayload struct {
	SessionID string             `json:"session_id"`
	Items     []domain.OrderItem `json:"items"`
	AddressID string             `json:"address_id"`
	Payment   string             `json:"payment"`
	Amount    float64            `json:"amount"`
}

// Publisher sends storefront events. *kafka.Producer satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// Producer publishes storefront events, swallowing broker errors after
// logging them.
type Producer struct {
	publisher Publisher
}

// NewProducer wraps publisher. A nil publisher disables event publishing.
func NewProducer(publisher Publisher) *Producer {
	return &Producer{publisher: publisher}
}

// PublishCartUpdated emits a cart mutation event.
func (p *Producer) PublishCartUpdated(ctx context.Context, payload CartUpdatedPayload) {
	p.publish(ctx, TopicCartUpdated, TypeCartUpdated, payload.SessionID, payload)
}

// PublishOrderPlaced emits an order placement event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, payload OrderPlacedPayload) {
	p.publish(ctx, TopicOrderPlaced, TypeOrderPlaced, payload.SessionID, payload)
}

func (p *Producer) publish(ctx context.Context, topic, eventType, sessionID string, payload any) {
	if p.publisher == nil {
		return
	}

	evt, err := kafka.NewEvent(eventType, sessionID, "session", "storefront", payload)
	if err != nil {
		logger.WithContext(ctx).Warn("event encode failed", "type", eventType, "error", err)
		return
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		evt = evt.WithCorrelationID(cid)
	}

	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		logger.WithContext(ctx).Warn("event publish failed", "type", eventType, "error", err)
	}
}
