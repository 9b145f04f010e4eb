package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/fstr-tourism/pereval-api/internal/config"
	"github.com/fstr-tourism/pereval-api/internal/domain"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes pereval events to a topic exchange, using the
// event type as routing key.
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
}

func NewRabbitMQPublisher(conf *config.RabbitMQConfig) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(conf.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial -> %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("conn.Channel -> %w", err)
	}

	err = ch.ExchangeDeclare(
		conf.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("ch.ExchangeDeclare -> %w", err)
	}

	zap.L().Info("connected to rabbitmq", zap.String("exchange", conf.Exchange))

	return &RabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		exchange: conf.Exchange,
	}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// amqp channels must not be shared between concurrent publishers.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(publishCtx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("p.ch.PublishWithContext -> %w", err)
	}

	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("p.ch.Close -> %w", err)
	}
	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}
