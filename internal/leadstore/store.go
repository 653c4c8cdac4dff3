// Package leadstore archives submitted inquiries in Postgres. Archiving is
// best effort: a failed write is logged and never fails the submission the
// customer already completed.
package leadstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sqlc-dev/pqtype"

	"github.com/ITTVDU45/goetzrental/internal/configurator"
	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Store persists inquiry records.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an inquiry store on an open database handle.
func New(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Archive writes the record of a successfully submitted wizard run and
// returns the archive ID.
func (s *Store) Archive(ctx context.Context, state domain.ConfiguratorState, receipt *domain.LeadReceipt) (uuid.UUID, error) {
	const op = "leadstore.archive"

	payload := buildRecord(state, receipt)

	reqJSON, err := json.Marshal(state.Requirements)
	if err != nil {
		return uuid.Nil, domain.Internal(err, op, "failed to encode requirements")
	}

	var id uuid.UUID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (
			lead_id, location_slug, category_label, device_type_label,
			name, email, phone, company, message,
			start_date, end_date, delivery,
			product_ids, extra_ids, upselling_ids, requirements,
			daily_total, one_time_total, grand_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`,
		payload.LeadID,
		payload.LocationSlug,
		payload.CategoryLabel,
		payload.DeviceTypeLabel,
		payload.Name,
		payload.Email,
		payload.Phone,
		payload.Company,
		payload.Message,
		nullTime(payload.StartDate),
		nullTime(payload.EndDate),
		payload.Delivery,
		pq.Array(payload.ProductIDs),
		pq.Array(payload.ExtraIDs),
		pq.Array(payload.UpsellingIDs),
		pqtype.NullRawMessage{RawMessage: reqJSON, Valid: true},
		payload.DailyTotal,
		payload.OneTimeTotal,
		payload.GrandTotal,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, domain.Internal(err, op, "failed to archive inquiry")
	}

	return id, nil
}

// GetByID loads one archived inquiry. Returns domain.ENOTFOUND when the
// record does not exist.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	const op = "leadstore.get"

	var (
		inq          domain.Inquiry
		startDate    sql.NullTime
		endDate      sql.NullTime
		requirements pqtype.NullRawMessage
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, lead_id, location_slug, category_label, device_type_label,
		       name, email, phone, company, message,
		       start_date, end_date, delivery,
		       product_ids, extra_ids, upselling_ids, requirements,
		       daily_total, one_time_total, grand_total, created_at
		FROM inquiries
		WHERE id = $1`, id,
	).Scan(
		&inq.ID,
		&inq.LeadID,
		&inq.LocationSlug,
		&inq.CategoryLabel,
		&inq.DeviceTypeLabel,
		&inq.Name,
		&inq.Email,
		&inq.Phone,
		&inq.Company,
		&inq.Message,
		&startDate,
		&endDate,
		&inq.Delivery,
		pq.Array(&inq.ProductIDs),
		pq.Array(&inq.ExtraIDs),
		pq.Array(&inq.UpsellingIDs),
		&requirements,
		&inq.DailyTotal,
		&inq.OneTimeTotal,
		&inq.GrandTotal,
		&inq.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound(op, "inquiry", id.String())
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load inquiry")
	}

	if startDate.Valid {
		inq.StartDate = startDate.Time
	}
	if endDate.Valid {
		inq.EndDate = endDate.Time
	}
	if requirements.Valid {
		inq.Requirements = requirements.RawMessage
	}

	return &inq, nil
}

// record is the flattened archive row assembled from a wizard state.
type record struct {
	LeadID          string
	LocationSlug    string
	CategoryLabel   string
	DeviceTypeLabel string
	Name            string
	Email           string
	Phone           string
	Company         string
	Message         string
	StartDate       time.Time
	EndDate         time.Time
	Delivery        bool
	ProductIDs      []string
	ExtraIDs        []string
	UpsellingIDs    []string
	DailyTotal      float64
	OneTimeTotal    float64
	GrandTotal      float64
}

func buildRecord(state domain.ConfiguratorState, receipt *domain.LeadReceipt) record {
	pricing := configurator.ComputePricing(state)

	r := record{
		Name:         state.Contact.Name,
		Email:        state.Contact.Email,
		Phone:        state.Contact.Phone,
		Company:      state.Contact.Company,
		Message:      state.Contact.Message,
		StartDate:    state.Contact.StartDate,
		EndDate:      state.Contact.EndDate,
		Delivery:     state.Contact.Delivery,
		ProductIDs:   state.SelectedProductIDs,
		ExtraIDs:     state.SelectedExtras,
		UpsellingIDs: state.AddedUpsellingIDs,
		DailyTotal:   pricing.DailyTotal,
		OneTimeTotal: pricing.OneTimeTotal,
		GrandTotal:   pricing.GrandTotal,
	}
	if receipt != nil {
		r.LeadID = receipt.LeadID
	}
	if state.ConfigData != nil {
		r.LocationSlug = state.ConfigData.Location.Slug
		r.CategoryLabel = state.ConfigData.CategoryLabel(state.CategoryID)
		r.DeviceTypeLabel = state.ConfigData.DeviceTypeLabel(state.DeviceTypeID)
	}
	return r
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
