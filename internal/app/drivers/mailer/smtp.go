package mailer

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/exceptions"
	"net/smtp"
)

type SMTPClient struct {
	Host        string
	Port        int
	EmailSender string
	Auth        smtp.Auth
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	return &SMTPClient{
		Host:        driverConfig.SMTP.Host,
		Port:        driverConfig.SMTP.Port,
		EmailSender: driverConfig.SMTP.EmailSender,
		Auth:        auth,
	}
}

func (c *SMTPClient) SendEmail(to, subject, body string) error {
	message := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", c.EmailSender, to, subject, body))
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	err := smtp.SendMail(addr, c.Auth, c.EmailSender, []string{to}, message)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, c.Host)
	}
	return nil
}
