package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bugstore/internal/connections/rabbitmq"
	"bugstore/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchange        = "bugstore.orders"
	orderCreatedKey = "order.created"
)

// OrderCreatedLine mirrors an order line on the wire.
type OrderCreatedLine struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

// OrderCreatedMessage is published after an order has been committed.
type OrderCreatedMessage struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Lines      []OrderCreatedLine `json:"lines"`
}

// Publisher announces committed orders to the message broker.
type Publisher struct {
	client *rabbitmq.Client
}

func NewPublisher(client *rabbitmq.Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) OrderCreated(ctx context.Context, o *domain.Order) error {
	msg := OrderCreatedMessage{
		OrderID:    o.ID.String(),
		CustomerID: o.CustomerID.String(),
		CreatedAt:  o.CreatedAt,
	}
	for _, l := range o.Lines {
		msg.Lines = append(msg.Lines, OrderCreatedLine{
			ProductID: l.ProductID.String(),
			Quantity:  l.Quantity,
			Total:     l.Total,
		})
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order created event: %w", err)
	}

	return p.client.Publish(ctx, exchange, orderCreatedKey, body, amqp.Table{
		"x-source": "bugstore",
	})
}
