package utils

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Initialize the SMTP mailer once and store it in a global variable
var mailer *gomail.Dialer

// InitializeMailer sets up the mailer using environment variables
func InitializeMailer(logger *zap.Logger) {
	mailHost := os.Getenv("SMTP_HOST")
	mailPort := os.Getenv("SMTP_PORT")
	mailUser := os.Getenv("SMTP_USER")
	mailPassword := os.Getenv("SMTP_PASSWORD")

	port, err := strconv.Atoi(mailPort)
	if err != nil {
		logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", mailPort),
			zap.Error(err),
		)
		port = 25
	}

	mailer = gomail.NewDialer(mailHost, port, mailUser, mailPassword)
	logger.Info("Mailer initialized successfully")
}

// GetMailer returns the configured dialer, nil when InitializeMailer was not called.
func GetMailer() *gomail.Dialer {
	return mailer
}

// SendEmail delivers a plain-text email through the configured SMTP dialer.
func SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", GetenvDefault("SMTP_FROM", "noreply@pams.local"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return mailer.DialAndSend(m)
}
