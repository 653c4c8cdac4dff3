package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// SMTPService sends emails via SMTP.
//
// Works with Mailhog in development (no authentication) and any standard
// authenticated SMTP relay in production.
type SMTPService struct {
	config SMTPConfig
	logger *slog.Logger

	// German-locale printer for currency amounts ("1.234,50 €").
	printer *message.Printer
}

// NewSMTPService creates a new SMTP-based email service.
func NewSMTPService(config SMTPConfig, logger *slog.Logger) *SMTPService {
	if config.From == "" {
		config.From = DefaultFromEmail
	}
	if config.FromName == "" {
		config.FromName = DefaultFromName
	}

	return &SMTPService{
		config:  config,
		logger:  logger,
		printer: message.NewPrinter(language.German),
	}
}

// SendLeadNotification notifies the rental desk about a new inquiry.
func (s *SMTPService) SendLeadNotification(ctx context.Context, to string, inquiry *domain.Inquiry) error {
	subject := fmt.Sprintf("Neue Mietanfrage – %s", inquiry.LocationSlug)
	if inquiry.Name != "" {
		subject = fmt.Sprintf("Neue Mietanfrage von %s – %s", inquiry.Name, inquiry.LocationSlug)
	}

	body := s.renderNotification(inquiry)

	return s.send(ctx, to, subject, body)
}

// renderNotification builds the plain-text summary of an inquiry.
func (s *SMTPService) renderNotification(inq *domain.Inquiry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Neue Anfrage über den Mietkonfigurator\n\n")
	fmt.Fprintf(&b, "Standort:    %s\n", inq.LocationSlug)
	if inq.CategoryLabel != "" {
		fmt.Fprintf(&b, "Kategorie:   %s\n", inq.CategoryLabel)
	}
	if inq.DeviceTypeLabel != "" {
		fmt.Fprintf(&b, "Gerätetyp:   %s\n", inq.DeviceTypeLabel)
	}

	fmt.Fprintf(&b, "\nKontakt\n")
	fmt.Fprintf(&b, "  Name:      %s\n", inq.Name)
	fmt.Fprintf(&b, "  E-Mail:    %s\n", inq.Email)
	if inq.Phone != "" {
		fmt.Fprintf(&b, "  Telefon:   %s\n", inq.Phone)
	}
	if inq.Company != "" {
		fmt.Fprintf(&b, "  Firma:     %s\n", inq.Company)
	}

	if !inq.StartDate.IsZero() && !inq.EndDate.IsZero() {
		fmt.Fprintf(&b, "\nMietzeitraum: %s bis %s\n",
			inq.StartDate.Format("02.01.2006"), inq.EndDate.Format("02.01.2006"))
	}
	if inq.Delivery {
		fmt.Fprintf(&b, "Lieferung gewünscht\n")
	}

	fmt.Fprintf(&b, "\nGeräte:  %d ausgewählt\n", len(inq.ProductIDs))
	fmt.Fprintf(&b, "Extras:  %d ausgewählt\n", len(inq.ExtraIDs))

	fmt.Fprintf(&b, "\nPreisschätzung\n")
	fmt.Fprintf(&b, "  Täglich:    %s\n", s.printer.Sprintf("%.2f €", inq.DailyTotal))
	fmt.Fprintf(&b, "  Einmalig:   %s\n", s.printer.Sprintf("%.2f €", inq.OneTimeTotal))
	fmt.Fprintf(&b, "  Gesamt:     %s\n", s.printer.Sprintf("%.2f €", inq.GrandTotal))

	if inq.Message != "" {
		fmt.Fprintf(&b, "\nNachricht:\n%s\n", inq.Message)
	}

	fmt.Fprintf(&b, "\nAnfrage-ID: %s\n", inq.ID)
	return b.String()
}

// send performs the SMTP delivery with the context's deadline honored via
// a goroutine; net/smtp has no native context support.
func (s *SMTPService) send(ctx context.Context, to, subject, body string) error {
	msg := s.buildMessage(to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, s.config.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.logger.Error("failed to send email", "to", to, "subject", subject, "error", err)
			return fmt.Errorf("send email: %w", err)
		}
		s.logger.Info("email sent", "to", to, "subject", subject)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// buildMessage assembles the raw RFC 5322 message.
func (s *SMTPService) buildMessage(to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.config.FromName, s.config.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&b, "\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
