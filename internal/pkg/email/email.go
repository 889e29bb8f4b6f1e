package email

import (
	"fmt"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

// Mailer defines the interface for outbound email.
type Mailer interface {
	// SendWithAttachment sends a message with one file attachment. The
	// attachment is referenced by attachmentName in the message and read
	// from attachmentPath on disk.
	SendWithAttachment(toEmail, subject, textBody, htmlBody, attachmentName, attachmentPath string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// SMTPMailer implements Mailer over SMTP.
type SMTPMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger,
	}
}

// SendWithAttachment sends an email with the given attachment.
func (m *SMTPMailer) SendWithAttachment(toEmail, subject, textBody, htmlBody, attachmentName, attachmentPath string) error {
	// If credentials are not configured, log and skip (for development only)
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Str("attachment", attachmentPath).
			Msg("SMTP credentials not configured - email not sent.")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.config.FromEmail, m.config.FromName)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)
	msg.Attach(attachmentPath, gomail.Rename(attachmentName))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.Username, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info().Str("toEmail", toEmail).Str("attachment", attachmentName).Msg("Email sent")
	return nil
}
