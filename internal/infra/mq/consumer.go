package mq

import (
	"context"
	"encoding/json"
	"log/slog"

	"tutor-booking/internal/domain/session"
	"tutor-booking/internal/infra"
	"tutor-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OpeningHandler processes one settled session. Results are for logging only.
type OpeningHandler func(ctx context.Context, o session.Opening) shared.MailResult

type Consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	queue    string
	logger   *slog.Logger
}

func NewConsumer(url, exchange, queue string, prefetch int, logger *slog.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, "dial rabbitmq", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, "open channel", err)
	}
	fail := func(msg string, err error) (*Consumer, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, infra.WrapCollaboratorErr(logger, collaborator, infra.KindUnavailable, msg, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	if err := ch.QueueBind(q.Name, RoutingKeySettled, exchange, false, nil); err != nil {
		return fail("bind "+RoutingKeySettled, err)
	}
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail("set qos", err)
	}
	return &Consumer{conn: conn, ch: ch, exchange: exchange, queue: q.Name, logger: logger}, nil
}

// Run consumes until ctx is done or the channel closes. Malformed messages are
// dropped; everything else is acked after the handler returns since delivery
// is best-effort.
func (c *Consumer) Run(ctx context.Context, handle OpeningHandler) error {
	deliveries, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return infra.WrapCollaboratorErr(c.logger, collaborator, infra.KindUnavailable, "consume", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.dispatch(ctx, d, handle)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery, handle OpeningHandler) {
	var o session.Opening
	if err := json.Unmarshal(d.Body, &o); err != nil {
		c.logger.WarnContext(ctx, "dropping malformed message",
			slog.String("routing_key", d.RoutingKey),
			slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	res := handle(ctx, o)
	c.logger.DebugContext(ctx, "opening fan-out handled",
		slog.String("booking_ref", o.Reference),
		slog.Bool("sent", res.Sent()))
	_ = d.Ack(false)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
