// Package lead serializes a finished wizard run into an inquiry and posts
// it to the external intake service.
package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Adapter posts inquiries to the intake service. Submission is fire-once:
// there is no automatic retry, a "try again" is a caller decision made
// from scratch.
type Adapter struct {
	intakeURL string
	http      *http.Client
	logger    *slog.Logger
}

// NewAdapter creates a lead submission adapter.
func NewAdapter(intakeURL string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{
		intakeURL: intakeURL,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// Submit serializes the wizard state and posts it as a single inquiry.
// A non-success response yields an error carrying the message from the
// response body when one is present; surfacing it to the user is the
// state machine's job via SubmitFailure.
func (a *Adapter) Submit(ctx context.Context, state domain.ConfiguratorState) (*domain.LeadReceipt, error) {
	const op = "lead.submit"

	payload := BuildPayload(state)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to serialize inquiry")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.intakeURL, bytes.NewReader(body))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to build intake request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, domain.Unavailable(err, op, "Could not reach the inquiry service. Please try again.")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.Errorf(domain.EINVALID, op, "%s", intakeErrorMessage(resp))
	}

	var ack struct {
		InquiryID string `json:"inquiryId"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, domain.Internal(err, op, "intake service returned an unreadable response")
	}
	if ack.Status == "" {
		ack.Status = "received"
	}

	a.logger.Info("inquiry submitted", "lead_id", ack.InquiryID, "location", payload.LocationSlug)

	return &domain.LeadReceipt{
		LeadID: ack.InquiryID,
		Status: ack.Status,
	}, nil
}

// intakeErrorMessage extracts the error message from a failed intake
// response, falling back to a generic message.
func intakeErrorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "Your inquiry could not be submitted. Please try again."
}
