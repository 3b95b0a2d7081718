// Package api implements the HTTP adapter for the domain-management API.
//
// Status endpoints call the provider on every request. Clients polling them
// are expected to debounce; the listener-wide rate limit only guards against
// abuse.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/zerowrap"

	"github.com/bnema/domaingate/internal/adapters/dto"
	"github.com/bnema/domaingate/internal/boundaries/in"
	"github.com/bnema/domaingate/internal/domain"
)

// maxRequestSize is the maximum allowed size for API request bodies.
const maxRequestSize = 64 << 10

// Handler implements the HTTP handler for the domain-management API.
type Handler struct {
	domainSvc in.DomainService
	healthSvc in.HealthService
	mux       *http.ServeMux
}

// Option configures the Handler.
type Option func(*Handler)

// WithHealthService enables upstream probing on GET /readyz.
func WithHealthService(svc in.HealthService) Option {
	return func(h *Handler) {
		h.healthSvc = svc
	}
}

// NewHandler creates a new API handler.
func NewHandler(domainSvc in.DomainService, opts ...Option) *Handler {
	h := &Handler{
		domainSvc: domainSvc,
		mux:       http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.RegisterRoutes(h.mux)
	return h
}

// RegisterRoutes registers the API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /sites/{id}/custom-domain", h.handleSubmit)
	mux.HandleFunc("DELETE /sites/{id}/custom-domain", h.handleRemove)
	mux.HandleFunc("POST /sites/{id}/custom-domain/refresh", h.handleRefresh)
	mux.HandleFunc("GET /sites/custom-domain/{domain}", h.handleResolve)
	mux.HandleFunc("GET /domains/{domain}/status", h.handleStatus)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /readyz", h.handleReady)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: "api",
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var req dto.SubmitDomainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", false)
		return
	}

	state, err := h.domainSvc.SubmitCustomDomain(r.Context(), r.PathValue("id"), req.CustomDomain)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewDomainStateResponse(state))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.domainSvc.RemoveCustomDomain(r.Context(), r.PathValue("id")); err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	state, err := h.domainSvc.RefreshStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewDomainStateResponse(state))
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	record, err := h.domainSvc.ResolveSiteByCustomDomain(r.Context(), r.PathValue("domain"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewSiteRecord(record))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	state, err := h.domainSvc.CheckStatus(r.Context(), r.PathValue("domain"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewDomainStatusResponse(state))
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.healthSvc == nil {
		h.sendJSON(w, http.StatusOK, dto.ReadinessResponse{Status: "ready"})
		return
	}

	results := h.healthSvc.CheckUpstreams(r.Context())
	resp := dto.NewReadinessResponse(results)
	if !domain.UpstreamsReady(results) {
		zerowrap.FromCtx(r.Context()).Warn().Interface("upstreams", resp.Upstreams).Msg("upstreams not ready")
		h.sendJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	h.sendJSON(w, http.StatusOK, resp)
}

// sendJSON sends a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// sendError sends an error response.
func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string, retryable bool) {
	h.sendJSON(w, status, dto.ErrorResponse{Error: message, Code: code, Retryable: retryable})
}

func (h *Handler) sendDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, retryable := classifyError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zerowrap.FromCtx(r.Context()).Error().Err(err).Msg("unexpected API error")
		message = "internal server error"
	}
	h.sendError(w, status, code, message, retryable)
}

// classifyError maps a domain error to an HTTP status, error code and retryability.
func classifyError(err error) (int, string, bool) {
	if pe, ok := domain.AsProviderError(err); ok {
		code := "provider_unavailable"
		switch {
		case errors.Is(pe, domain.ErrProviderRejected):
			code = "provider_rejected"
		case errors.Is(pe, domain.ErrProviderTimeout):
			code = "provider_timeout"
		case errors.Is(pe, domain.ErrProviderDomainNotFound):
			return http.StatusNotFound, "not_found", false
		}
		return http.StatusBadGateway, code, pe.Retryable()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDomainFormat):
		return http.StatusBadRequest, "invalid_domain_format", false
	case errors.Is(err, domain.ErrInvalidSiteID):
		return http.StatusBadRequest, "invalid_site_id", false
	case errors.Is(err, domain.ErrSiteNotFound):
		return http.StatusNotFound, "not_found", false
	case errors.Is(err, domain.ErrSubscriptionExpired):
		return http.StatusForbidden, "subscription_expired", false
	case errors.Is(err, domain.ErrPersistenceConflict):
		return http.StatusConflict, "persistence_conflict", true
	case errors.Is(err, domain.ErrCustomDomainAlreadySet):
		return http.StatusConflict, "custom_domain_already_set", false
	case errors.Is(err, domain.ErrCustomDomainTaken):
		return http.StatusConflict, "custom_domain_taken", false
	default:
		return http.StatusInternalServerError, "internal", false
	}
}
