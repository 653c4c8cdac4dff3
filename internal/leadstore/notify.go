package leadstore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ITTVDU45/goetzrental/internal/domain"
	"github.com/ITTVDU45/goetzrental/internal/worker"
)

// Archiver couples the inquiry archive with the notification queue: a
// successful archive enqueues the lead-notification job the worker picks
// up. Both steps are best effort; the customer's submission already
// succeeded and must not be failed retroactively.
type Archiver struct {
	store  *Store
	db     *sql.DB
	logger *slog.Logger
}

// NewArchiver creates the archiver on the same database the worker polls.
func NewArchiver(store *Store, db *sql.DB, logger *slog.Logger) *Archiver {
	return &Archiver{
		store:  store,
		db:     db,
		logger: logger,
	}
}

// ArchiveAndNotify persists the inquiry record and enqueues the rental
// desk notification. Failures are logged, never propagated.
func (a *Archiver) ArchiveAndNotify(ctx context.Context, state domain.ConfiguratorState, receipt *domain.LeadReceipt) {
	id, err := a.store.Archive(ctx, state, receipt)
	if err != nil {
		a.logger.Error("failed to archive inquiry", "error", err)
		return
	}

	if _, err := worker.EnqueueLeadNotification(ctx, a.db, id); err != nil {
		a.logger.Error("failed to enqueue lead notification", "inquiry_id", id, "error", err)
	}
}
