package mailer

import (
	"context"
	"encoding/json"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/exceptions"

	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Connection     *amqp091.Connection
	InternalConfig *config.InternalConfig
}

func NewMailerService(connection *amqp091.Connection, internalConfig *config.InternalConfig) contracts.MailerService {
	return &mailerService{
		Connection:     connection,
		InternalConfig: internalConfig,
	}
}

func (svc *mailerService) PublishEmailJob(ctx context.Context, job *models.EmailJob) error {
	queueName := svc.InternalConfig.App.MailerQueue

	channel, err := svc.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         payload,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queueName)
	}
	return nil
}
