// Package events publishes domain events after committed writes.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop_system/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

// Routing keys
const (
	KeyOrderPlaced = "order.placed"
)

// Publisher sends v to the broker under a routing key
type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
}

// OrderPlaced is emitted once per successful checkout
type OrderPlaced struct {
	UserID           uint            `json:"user_id"`
	Total            decimal.Decimal `json:"total_price"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Lines            []OrderLine     `json:"lines"`
	PurchasedAt      time.Time       `json:"purchased_at"`
}

type OrderLine struct {
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// NewOrderPlaced builds the event for orders created by one checkout
func NewOrderPlaced(userID uint, total, remaining decimal.Decimal, orders []domain.Order) OrderPlaced {
	ev := OrderPlaced{
		UserID:           userID,
		Total:            total,
		RemainingBalance: remaining,
		Lines:            make([]OrderLine, 0, len(orders)),
	}
	for _, o := range orders {
		ev.Lines = append(ev.Lines, OrderLine{
			OrderID:   o.ID,
			ProductID: o.ProductID,
			Quantity:  o.Quantity,
			Price:     o.Price,
		})
		ev.PurchasedAt = o.PurchasedAt
	}
	return ev
}

// RabbitPublisher publishes JSON messages to a durable topic exchange
type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, key string, v any) error {
	msg, err := Message(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, msg)
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Message encodes v as a persistent JSON publishing
func Message(v any) (amqp.Publishing, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         b,
	}, nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
