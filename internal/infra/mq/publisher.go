package mq

import (
	"context"
	"encoding/json"
	"log/slog"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/pkg/errs"
	"tutor-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	collaborator = "rabbitmq"

	// RoutingKeySettled carries session.Opening payloads.
	RoutingKeySettled = "booking.settled"
)

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, "dial rabbitmq", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, "open channel", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, "declare exchange", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *Publisher) PublishSettled(ctx context.Context, o session.Opening) error {
	return p.PublishJSON(ctx, RoutingKeySettled, o)
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "encode message")
	}
	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
	if err != nil {
		return infra.WrapCollaboratorErr(p.logger, collaborator, infra.KindUnavailable, "publish "+key, err)
	}
	return nil
}

func (p *Publisher) Status() shared.CollaboratorStatus {
	return shared.CollaboratorStatus{Name: collaborator, Configured: p.conn != nil && !p.conn.IsClosed()}
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
