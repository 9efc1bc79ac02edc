package mailer

import (
	"context"
	"encoding/json"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/mailer"
	"hospital-service/internal/app/models"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes the mailer queue and delivers emails over SMTP with
// at-least-once semantics. Failed deliveries are requeued once.
type Worker struct {
	log        *zap.Logger
	cfg        *config.InternalConfig
	connection *amqp091.Connection
	smtpClient *mailer.SMTPClient
	stop       chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, connection *amqp091.Connection, smtpClient *mailer.SMTPClient) *Worker {
	return &Worker{
		log:        log,
		cfg:        cfg,
		connection: connection,
		smtpClient: smtpClient,
		stop:       make(chan struct{}),
	}
}

// Start begins consuming in a goroutine. It returns a stop function.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	channel, err := w.connection.Channel()
	if err != nil {
		return nil, err
	}

	queueName := w.cfg.App.MailerQueue
	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	deliveries, err := channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	w.log.Info("mailer worker started", zap.String("queue", queueName))

	go func() {
		defer channel.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

func (w *Worker) processDelivery(delivery amqp091.Delivery) {
	var job models.EmailJob
	if err := json.Unmarshal(delivery.Body, &job); err != nil {
		w.log.Error("mailer worker dropping malformed job", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if err := w.smtpClient.SendEmail(job.To, job.Subject, job.Body); err != nil {
		w.log.Error("mailer worker failed to send email",
			zap.String("to", job.To),
			zap.Error(err),
		)
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	w.log.Info("mailer worker sent email", zap.String("to", job.To))
	delivery.Ack(false)
}
