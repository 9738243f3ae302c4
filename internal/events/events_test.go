package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"shop_system/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderPlaced(t *testing.T) {
	at := time.Date(2024, 9, 27, 12, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: 7, ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(20), PurchasedAt: at},
		{ID: 8, ProductID: 3, Quantity: 1, Price: decimal.RequireFromString("4.50"), PurchasedAt: at},
	}

	ev := NewOrderPlaced(42, decimal.RequireFromString("24.50"), decimal.RequireFromString("0.50"), orders)

	assert.Equal(t, uint(42), ev.UserID)
	assert.Equal(t, at, ev.PurchasedAt)
	require.Len(t, ev.Lines, 2)
	assert.Equal(t, uint(8), ev.Lines[1].OrderID)
	assert.Equal(t, "4.5", ev.Lines[1].Price.String())
}

func TestMessageIsPersistentJSON(t *testing.T) {
	msg, err := Message(OrderPlaced{UserID: 1, Total: decimal.NewFromInt(20)})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "20", decoded["total_price"])
	assert.EqualValues(t, 1, decoded["user_id"])
}

func TestMessageRejectsUnencodable(t *testing.T) {
	_, err := Message(make(chan int))
	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), KeyOrderPlaced, struct{}{}))
}
