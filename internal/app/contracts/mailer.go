package contracts

import (
	"context"
	"hospital-service/internal/app/models"
)

// MailerService publishes email jobs to the mailer queue; a worker consumes
// the queue and delivers over SMTP.
type MailerService interface {
	PublishEmailJob(ctx context.Context, job *models.EmailJob) error
}
