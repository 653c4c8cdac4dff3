package worker

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ITTVDU45/goetzrental/internal/metrics"
)

// Job statuses as stored in the jobs table.
const (
	statusPending   = "pending"
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
)

// Job is one queued unit of work.
type Job struct {
	ID          uuid.UUID
	JobType     string
	Payload     []byte
	Attempts    int32
	MaxAttempts int32
}

// claimJob dequeues the highest-priority due job and marks it running, in
// one transaction. SKIP LOCKED keeps concurrent workers from claiming the
// same row. Returns sql.ErrNoRows when the queue is empty.
func (w *Worker) claimJob(ctx context.Context) (Job, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return Job{}, err
	}
	defer tx.Rollback()

	var job Job
	err = tx.QueryRowContext(ctx, `
		SELECT id, job_type, payload, attempts, max_attempts
		FROM jobs
		WHERE status = $1 AND scheduled_at <= NOW()
		ORDER BY priority DESC, scheduled_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED`, statusPending,
	).Scan(&job.ID, &job.JobType, &job.Payload, &job.Attempts, &job.MaxAttempts)
	if err != nil {
		return Job{}, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1, started_at = NOW(), attempts = attempts + 1
		WHERE id = $2`, statusRunning, job.ID)
	if err != nil {
		return Job{}, err
	}

	if err := tx.Commit(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// markJobCompleted marks a job as successfully completed.
func (w *Worker) markJobCompleted(ctx context.Context, jobID uuid.UUID) error {
	_, err := w.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1, completed_at = NOW(), error_message = NULL
		WHERE id = $2`, statusCompleted, jobID)
	return err
}

// markJobFailed records a failure. Permanent errors and exhausted attempts
// finalize the job as failed; everything else is rescheduled with
// exponential backoff.
func (w *Worker) markJobFailed(ctx context.Context, job Job, jobErr error) {
	attempts := job.Attempts + 1
	final := IsPermanent(jobErr) || attempts >= job.MaxAttempts

	if final {
		if IsPermanent(jobErr) {
			w.logger.Warn("Job failed with permanent error, will not retry", "job_id", job.ID, "error", jobErr.Error())
		}
		_, err := w.db.ExecContext(ctx, `
			UPDATE jobs
			SET status = $1, completed_at = NOW(), error_message = $2
			WHERE id = $3`, statusFailed, jobErr.Error(), job.ID)
		if err != nil {
			w.logger.Error("Failed to mark job as failed", "job_id", job.ID, "error", err)
		}
		return
	}

	metrics.JobRetried(job.JobType)
	delay := backoffDelay(int(attempts))
	_, err := w.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1, scheduled_at = NOW() + $2 * INTERVAL '1 second', error_message = $3
		WHERE id = $4`, statusPending, int(delay.Seconds()), jobErr.Error(), job.ID)
	if err != nil {
		w.logger.Error("Failed to reschedule job", "job_id", job.ID, "error", err)
	}
}

// resetStaleJobs returns running jobs that exceeded the threshold to the
// pending state.
func (w *Worker) resetStaleJobs(ctx context.Context, threshold time.Duration) (int64, error) {
	res, err := w.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = $1, started_at = NULL
		WHERE status = $2 AND started_at < NOW() - $3 * INTERVAL '1 second'`,
		statusPending, statusRunning, int(threshold.Seconds()))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// backoffDelay doubles per attempt, capped at five minutes.
func backoffDelay(attempt int) time.Duration {
	d := time.Duration(math.Pow(2, float64(attempt))) * 15 * time.Second
	if d > 5*time.Minute {
		return 5 * time.Minute
	}
	return d
}
