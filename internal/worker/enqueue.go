package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Job type constants - these must match the JobHandler.Type() values
const (
	JobTypeLeadNotification = "lead_notification"
)

// Priority constants for job scheduling
const (
	PriorityLow    = 0
	PriorityNormal = 10
	PriorityHigh   = 20
)

// LeadNotificationPayload is the payload for lead notification jobs.
type LeadNotificationPayload struct {
	InquiryID uuid.UUID `json:"inquiry_id"`
}

// enqueueParams collects the insert parameters of a new job.
type enqueueParams struct {
	Priority    int32
	MaxAttempts int32
	ScheduledAt time.Time
}

// EnqueueOption is a functional option for customizing job enqueue parameters.
type EnqueueOption func(*enqueueParams)

// WithPriority sets the job priority.
func WithPriority(priority int32) EnqueueOption {
	return func(p *enqueueParams) {
		p.Priority = priority
	}
}

// WithMaxAttempts sets the maximum number of retry attempts.
func WithMaxAttempts(attempts int32) EnqueueOption {
	return func(p *enqueueParams) {
		p.MaxAttempts = attempts
	}
}

// WithDelay schedules the job to run after a delay.
func WithDelay(delay time.Duration) EnqueueOption {
	return func(p *enqueueParams) {
		p.ScheduledAt = time.Now().Add(delay)
	}
}

// EnqueueJob inserts a job into the queue and returns its ID.
func EnqueueJob(
	ctx context.Context,
	db *sql.DB,
	jobType string,
	payload interface{},
	opts ...EnqueueOption,
) (uuid.UUID, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal payload: %w", err)
	}

	params := enqueueParams{
		Priority:    PriorityNormal,
		MaxAttempts: 3,
		ScheduledAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&params)
	}

	var id uuid.UUID
	err = db.QueryRowContext(ctx, `
		INSERT INTO jobs (job_type, payload, priority, max_attempts, scheduled_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		jobType, payloadJSON, params.Priority, params.MaxAttempts, params.ScheduledAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("enqueue job: %w", err)
	}

	return id, nil
}

// EnqueueLeadNotification enqueues a job to notify the rental desk about a
// freshly archived inquiry.
func EnqueueLeadNotification(
	ctx context.Context,
	db *sql.DB,
	inquiryID uuid.UUID,
	opts ...EnqueueOption,
) (uuid.UUID, error) {
	payload := LeadNotificationPayload{
		InquiryID: inquiryID,
	}

	return EnqueueJob(ctx, db, JobTypeLeadNotification, payload, opts...)
}
