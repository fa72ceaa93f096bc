package publisher

import (
	"context"

	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	Channel  *amqp091.Channel
	Exchange string
	Queue    string
}

func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, exchange, queue string) (EventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
		Queue:    queue,
	}, nil
}

func (p *rabbitMQPublisher) PublishSubmissionCompleted(ctx context.Context, event *SubmissionCompletedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, p.Exchange, p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	return nil
}
