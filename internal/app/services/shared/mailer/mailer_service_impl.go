package mailer

import (
	"context"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/dto/requests"
	"neuroshield-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

// mailQueue publishes email payloads to a RabbitMQ queue consumed by a
// separate delivery worker. Failed publishes surface to the caller; the
// caller decides whether the triggering operation still succeeds.
type mailQueue struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewMailQueue(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailQueue, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailQueue{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (s *mailQueue) Publish(ctx context.Context, payload *requests.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
