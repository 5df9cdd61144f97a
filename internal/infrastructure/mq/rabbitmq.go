package mq

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"party-manager-api/config"
	"party-manager-api/internal/interface/api/rest/dto/person"
)

const (
	bufferSize     = 128
	connectionName = "partymanagerapi"
)

// RoutingKeys are the event actions; the queue is bound to each of them.
var RoutingKeys = []string{
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
}

type (
	InputCh  = chan Event
	RabbitMQ struct {
		cfg   config.MQ
		log   *zap.Logger
		conn  *amqp091.Connection
		pubCh *amqp091.Channel
		in    InputCh
	}
	// Event describes a committed person change. Payload is empty for deletes.
	Event struct {
		Id       uuid.UUID      `json:"event_id"`
		TS       time.Time      `json:"time_stamp"`
		Method   string         `json:"event_action"`
		PersonID string         `json:"person_id"`
		Payload  *person.Person `json:"person_payload,omitempty"`
	}
)

func New(cfg config.MQ, logger *zap.Logger) *RabbitMQ {
	return &RabbitMQ{
		cfg: cfg,
		log: logger,
		in:  make(chan Event, bufferSize),
	}
}

func (r *RabbitMQ) Connect(ctx context.Context, dsn string) error {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var err error
	r.conn, err = amqp091.DialConfig(dsn, amqp091.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Properties: amqp091.Table{
			"connection_name": connectionName,
		},
		Dial: func(network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
	})
	if err != nil {
		return err
	}
	if r.pubCh, err = r.conn.Channel(); err != nil {
		_ = r.conn.Close()
		return err
	}

	r.log.Info("rabbitmq connected successfully")

	return nil
}

// Init declares the durable exchange and queue and binds every routing key.
func (r *RabbitMQ) Init() error {
	if err := r.pubCh.ExchangeDeclare(r.cfg.Exchange, r.cfg.ExchangeType, true, false, false, false, nil); err != nil {
		_ = r.pubCh.Close()
		return err
	}

	q, err := r.pubCh.QueueDeclare(r.cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	for _, rk := range RoutingKeys {
		if err = r.pubCh.QueueBind(q.Name, rk, r.cfg.Exchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

// PublisherWorker publishes queued events until ctx is cancelled.
func (r *RabbitMQ) PublisherWorker(ctx context.Context) {
	r.log.Info("starting publisher worker")
	defer r.log.Info("publisher worker gracefully stopped")

	for {
		select {
		case e := <-r.in:
			if err := r.publish(ctx, e); err != nil {
				r.log.Error("mq publish error",
					zap.String("event_id", e.Id.String()),
					zap.String("person_id", e.PersonID),
					zap.Error(err),
				)
			}
		case <-ctx.Done():
			if r.pubCh != nil {
				_ = r.pubCh.Close()
			}
			return
		}
	}
}

func (r *RabbitMQ) publish(ctx context.Context, e Event) error {
	pub, err := ToPublishing(e)
	if err != nil {
		return err
	}

	return r.pubCh.PublishWithContext(ctx, r.cfg.Exchange, e.Method, true, false, pub)
}

// ToPublishing encodes e as a persistent JSON message.
func ToPublishing(e Event) (amqp091.Publishing, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return amqp091.Publishing{}, err
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    e.Id.String(),
		Timestamp:    e.TS,
		Type:         e.Method,
		Body:         b,
	}, nil
}

func (r *RabbitMQ) GetInputChan() chan Event     { return r.in }
func (r *RabbitMQ) GetConn() *amqp091.Connection { return r.conn }
