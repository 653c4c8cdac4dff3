// Package jobs contains the background job handlers registered with the
// worker.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ITTVDU45/goetzrental/internal/domain"
	"github.com/ITTVDU45/goetzrental/internal/email"
	"github.com/ITTVDU45/goetzrental/internal/leadstore"
	"github.com/ITTVDU45/goetzrental/internal/worker"
)

// LeadNotificationHandler emails the rental desk a summary of a freshly
// archived inquiry.
type LeadNotificationHandler struct {
	store  *leadstore.Store
	email  email.Service
	to     string
	logger *slog.Logger
}

// NewLeadNotificationHandler creates the handler.
func NewLeadNotificationHandler(store *leadstore.Store, emailService email.Service, to string, logger *slog.Logger) *LeadNotificationHandler {
	return &LeadNotificationHandler{
		store:  store,
		email:  emailService,
		to:     to,
		logger: logger,
	}
}

// Type implements worker.JobHandler.
func (h *LeadNotificationHandler) Type() string {
	return worker.JobTypeLeadNotification
}

// Handle loads the archived inquiry and sends the notification mail.
// A missing inquiry is permanent; retrying cannot make it appear.
func (h *LeadNotificationHandler) Handle(ctx context.Context, payload []byte) error {
	var p worker.LeadNotificationPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return worker.NewPermanentError(fmt.Errorf("unmarshal payload: %w", err))
	}

	inquiry, err := h.store.GetByID(ctx, p.InquiryID)
	if err != nil {
		if domain.ErrorCode(err) == domain.ENOTFOUND {
			return worker.NewPermanentError(err)
		}
		return err
	}

	if err := h.email.SendLeadNotification(ctx, h.to, inquiry); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}

	h.logger.Info("lead notification sent", "inquiry_id", inquiry.ID, "to", h.to)
	return nil
}
