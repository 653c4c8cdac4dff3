// Package handler exposes the configurator over a thin JSON HTTP API.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ITTVDU45/goetzrental/internal/configurator"
	"github.com/ITTVDU45/goetzrental/internal/domain"
	"github.com/ITTVDU45/goetzrental/internal/metrics"
)

// =============================================================================
// Collaborator interfaces
// =============================================================================

// SnapshotLoader loads the catalog snapshot for a location.
type SnapshotLoader interface {
	Load(ctx context.Context, locationSlug string) (*domain.ConfiguratorData, error)
}

// Recommender computes product recommendations from criteria.
type Recommender interface {
	Recommend(ctx context.Context, criteria domain.RecommendCriteria) (*domain.RecommendationResult, error)
}

// LeadSubmitter posts the finished wizard state to the intake service.
type LeadSubmitter interface {
	Submit(ctx context.Context, state domain.ConfiguratorState) (*domain.LeadReceipt, error)
}

// InquiryArchiver persists a record of a submitted inquiry and triggers
// the follow-up notification. Optional; nil disables archiving.
type InquiryArchiver interface {
	ArchiveAndNotify(ctx context.Context, state domain.ConfiguratorState, receipt *domain.LeadReceipt)
}

// =============================================================================
// Handler
// =============================================================================

// ConfiguratorHandler serves the wizard session API.
type ConfiguratorHandler struct {
	sessions  *configurator.Manager
	loader    SnapshotLoader
	engine    Recommender
	submitter LeadSubmitter
	archiver  InquiryArchiver
	logger    *slog.Logger
}

// NewConfiguratorHandler creates the handler. archiver may be nil when no
// database is configured.
func NewConfiguratorHandler(
	sessions *configurator.Manager,
	loader SnapshotLoader,
	engine Recommender,
	submitter LeadSubmitter,
	archiver InquiryArchiver,
	logger *slog.Logger,
) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		sessions:  sessions,
		loader:    loader,
		engine:    engine,
		submitter: submitter,
		archiver:  archiver,
		logger:    logger,
	}
}

// RegisterRoutes wires the session API onto the mux. rateLimited wraps the
// endpoints worth protecting from bots; pass the identity function to
// disable limiting.
func (h *ConfiguratorHandler) RegisterRoutes(mux *http.ServeMux, rateLimited func(http.Handler) http.Handler) {
	mux.Handle("POST /api/configurator/sessions", rateLimited(http.HandlerFunc(h.CreateSession)))
	mux.HandleFunc("GET /api/configurator/sessions/{id}", h.GetSession)
	mux.HandleFunc("POST /api/configurator/sessions/{id}/actions", h.DispatchAction)
	mux.HandleFunc("POST /api/configurator/sessions/{id}/recommendations", h.RunRecommendation)
	mux.HandleFunc("GET /api/configurator/sessions/{id}/pricing", h.GetPricing)
	mux.Handle("POST /api/configurator/sessions/{id}/submit", rateLimited(http.HandlerFunc(h.Submit)))
	mux.HandleFunc("DELETE /api/configurator/sessions/{id}", h.AbandonSession)
}

// sessionView is the response shape shared by most endpoints.
type sessionView struct {
	SessionID string                   `json:"session_id"`
	State     domain.ConfiguratorState `json:"state"`
	Pricing   configurator.Pricing     `json:"pricing"`
}

func (h *ConfiguratorHandler) view(sess *configurator.Session) sessionView {
	return sessionView{
		SessionID: sess.ID().String(),
		State:     sess.State(),
		Pricing:   sess.Pricing(),
	}
}

// CreateSession starts a wizard run: a fresh session is registered and the
// catalog snapshot for the requested location is loaded into it. A
// degraded load still yields a usable session; the error message is
// surfaced in the session state instead of failing the request.
func (h *ConfiguratorHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	const op = "configurator.create_session"

	var req struct {
		LocationSlug string `json:"location_slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "request body must be JSON with a location_slug"))
		return
	}
	if req.LocationSlug == "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "location_slug is required"))
		return
	}

	sess := h.sessions.Create()
	sess.Dispatch(configurator.SetLoading{Loading: true})

	data, err := h.loader.Load(r.Context(), req.LocationSlug)
	// The loader degrades instead of failing: data is always usable. A
	// session closed mid-load (unlikely but possible) drops the results.
	sess.Dispatch(configurator.SetData{Data: data})
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues("degraded").Inc()
		sess.Dispatch(configurator.SetError{Message: domain.ErrorMessage(err)})
	} else {
		metrics.SnapshotLoads.WithLabelValues("ok").Inc()
	}
	sess.Dispatch(configurator.SetLoading{Loading: false})

	writeJSON(w, http.StatusCreated, h.view(sess))
}

// GetSession returns the current state and pricing.
func (h *ConfiguratorHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.view(sess))
}

// GetPricing returns the derived price estimate only.
func (h *ConfiguratorHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Pricing())
}

// DispatchAction applies one client-dispatchable action to the session.
func (h *ConfiguratorHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	const op = "configurator.dispatch"

	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	action, err := decodeAction(r.Body)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	// A cursor past the final step would break the step-count invariant;
	// the reducer applies moves unconditionally, so the gates sit here.
	switch a := action.(type) {
	case configurator.NextStep:
		state := sess.State()
		if state.ConfigData != nil && state.Step >= state.ConfigData.StepCount() {
			ErrorResponse(w, r, h.logger, domain.Invalid(op, "already on the last step"))
			return
		}
	case configurator.GotoStep:
		state := sess.State()
		if state.ConfigData != nil && a.Step > state.ConfigData.StepCount() {
			ErrorResponse(w, r, h.logger, domain.Invalid(op, "step is out of range"))
			return
		}
	}

	if !sess.Dispatch(action) {
		ErrorResponse(w, r, h.logger, domain.Gone(op, "session is closed"))
		return
	}

	writeJSON(w, http.StatusOK, h.view(sess))
}

// RunRecommendation invokes the recommendation engine with the session's
// current category and requirements, stores the result, and returns it.
// Engine degradation never blocks the step: a fallback result is stored
// the same way.
func (h *ConfiguratorHandler) RunRecommendation(w http.ResponseWriter, r *http.Request) {
	const op = "configurator.recommend"

	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	state := sess.State()
	if state.CategoryID == "" {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "select a category first"))
		return
	}

	result, err := h.engine.Recommend(r.Context(), domain.RecommendCriteria{
		CategoryID: state.CategoryID,
		Filters:    state.Requirements,
	})
	if err != nil {
		// The engine degrades internally; an error here is a programming
		// error, not an upstream failure.
		ErrorResponse(w, r, h.logger, domain.Internal(err, op, "recommendation failed"))
		return
	}

	if !sess.Dispatch(configurator.SetRecommendations{Result: result}) {
		ErrorResponse(w, r, h.logger, domain.Gone(op, "session is closed"))
		return
	}

	writeJSON(w, http.StatusOK, h.view(sess))
}

// Submit posts the inquiry to the intake service. Duplicate submits are
// rejected while one is in flight; a successful submission closes and
// discards the session.
func (h *ConfiguratorHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "configurator.submit"

	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if sess.State().IsSubmitting {
		ErrorResponse(w, r, h.logger, domain.Conflict(op, "a submission is already in progress"))
		return
	}

	if !sess.Dispatch(configurator.SubmitStart{}) {
		ErrorResponse(w, r, h.logger, domain.Gone(op, "session is closed"))
		return
	}

	state := sess.State()
	receipt, err := h.submitter.Submit(r.Context(), state)
	if err != nil {
		metrics.LeadsSubmitted.WithLabelValues("failure").Inc()
		sess.Dispatch(configurator.SubmitFailure{Message: domain.ErrorMessage(err)})
		ErrorResponse(w, r, h.logger, err)
		return
	}

	metrics.LeadsSubmitted.WithLabelValues("success").Inc()
	sess.Dispatch(configurator.SubmitSuccess{})

	if h.archiver != nil {
		// The submission already succeeded; a client disconnect must not
		// cancel the archive.
		h.archiver.ArchiveAndNotify(context.WithoutCancel(r.Context()), sess.State(), receipt)
	}

	finalView := h.view(sess)
	h.sessions.Remove(sess.ID())

	writeJSON(w, http.StatusOK, struct {
		sessionView
		Receipt *domain.LeadReceipt `json:"receipt"`
	}{finalView, receipt})
}

// AbandonSession closes and discards a session (navigation away).
func (h *ConfiguratorHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.sessions.Remove(sess.ID())
	w.WriteHeader(http.StatusNoContent)
}

// session resolves the {id} path value to a live session, writing the
// error response itself when it cannot.
func (h *ConfiguratorHandler) session(w http.ResponseWriter, r *http.Request) (*configurator.Session, bool) {
	const op = "configurator.session"

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "session id must be a UUID"))
		return nil, false
	}

	sess := h.sessions.Get(id)
	if sess == nil {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "session", id.String()))
		return nil, false
	}
	return sess, true
}
