// Package email sends transactional mail for the configurator: currently
// a single notification to the rental desk when an inquiry arrives.
package email

import (
	"context"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Service defines the interface for sending transactional emails.
//
// Implementations:
// - SMTPService: Uses SMTP protocol (Mailhog for dev, a relay in prod)
//
// All methods are context-aware for timeout and cancellation support.
type Service interface {
	// SendLeadNotification notifies the rental desk about a new inquiry.
	SendLeadNotification(ctx context.Context, to string, inquiry *domain.Inquiry) error
}

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // empty disables authentication (Mailhog)
	Password string
	From     string
	FromName string
}

// Defaults used when the config leaves sender fields empty.
const (
	DefaultFromEmail = "noreply@goetzrental.de"
	DefaultFromName  = "Götz Rental"
)
