// Package email delivers exported reports over SMTP when configured.
package email

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"clauselens/internal/config"
)

// Service sends report emails. Disabled (a silent no-op) unless SMTP is
// configured.
type Service struct {
	cfg     *config.Config
	enabled bool
}

// NewService creates the email service.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		cfg:     cfg,
		enabled: cfg.IsEmailEnabled(),
	}

	if s.enabled {
		log.Printf("Report email enabled (SMTP: %s:%d)", cfg.SMTPHost, cfg.SMTPPort)
	} else {
		log.Println("Report email disabled (SMTP not configured)")
	}

	return s
}

// IsEnabled returns true if email delivery is configured.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// SendReport emails the PDF report as an attachment.
func (s *Service) SendReport(to, subject string, pdfData []byte, filename string) error {
	if !s.enabled {
		return nil
	}
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	boundary := "ClauseLensBoundary20240101"
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.SMTPFrom))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	msg.WriteString("\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString("Your requested document risk report is attached.\r\n\r\n")

	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: application/pdf\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", filename))

	encoded := base64.StdEncoding.EncodeToString(pdfData)
	// RFC 2045 line length limit.
	for len(encoded) > 76 {
		msg.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	msg.WriteString(encoded + "\r\n")
	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.SMTPFrom, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
