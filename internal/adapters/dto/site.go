// Package dto provides shared data transfer objects for API responses.
package dto

import (
	"time"

	"github.com/bnema/domaingate/internal/domain"
)

// SubmitDomainRequest is the body of POST /sites/{id}/custom-domain.
type SubmitDomainRequest struct {
	CustomDomain string `json:"customDomain"`
}

// VerificationDetails is the DNS record a user must configure.
type VerificationDetails struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Reason string `json:"reason,omitempty"`
}

// DomainStateResponse is returned after submitting or refreshing a custom domain.
type DomainStateResponse struct {
	SiteID              string               `json:"siteId"`
	CustomDomain        string               `json:"customDomain"`
	VerificationStatus  string               `json:"verificationStatus"`
	VerificationDetails *VerificationDetails `json:"verificationDetails"`
}

// DomainStatusResponse is returned by the read-only status check.
type DomainStatusResponse struct {
	Domain       string               `json:"domain"`
	Status       string               `json:"status"`
	Verification *VerificationDetails `json:"verification"`
}

// SiteRecord is the domain-related view of a site.
type SiteRecord struct {
	SiteID                string               `json:"siteId"`
	CustomDomain          *string              `json:"customDomain"`
	VerificationStatus    string               `json:"verificationStatus"`
	VerificationDetails   *VerificationDetails `json:"verificationDetails"`
	Version               int64                `json:"version"`
	UpdatedAt             time.Time            `json:"updatedAt"`
	SubscriptionExpiresAt *time.Time           `json:"subscriptionExpiresAt,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// UpstreamStatus is one upstream entry of a readiness response.
type UpstreamStatus struct {
	URL            string `json:"url"`
	Healthy        bool   `json:"healthy"`
	HTTPStatus     int    `json:"httpStatus,omitempty"`
	ResponseTimeMs int64  `json:"responseTimeMs"`
	Error          string `json:"error,omitempty"`
}

// ReadinessResponse is returned by GET /readyz.
type ReadinessResponse struct {
	Status    string                    `json:"status"`
	Upstreams map[string]UpstreamStatus `json:"upstreams,omitempty"`
}

// NewReadinessResponse converts probe results.
func NewReadinessResponse(results map[string]*domain.UpstreamHealth) ReadinessResponse {
	resp := ReadinessResponse{Status: "ready", Upstreams: make(map[string]UpstreamStatus, len(results))}
	if !domain.UpstreamsReady(results) {
		resp.Status = "unavailable"
	}
	for name, h := range results {
		if h == nil {
			continue
		}
		resp.Upstreams[name] = UpstreamStatus{
			URL:            h.URL,
			Healthy:        h.Healthy,
			HTTPStatus:     h.HTTPStatus,
			ResponseTimeMs: h.ResponseTimeMs,
			Error:          h.Error,
		}
	}
	return resp
}

// NewVerificationDetails converts domain details; nil stays nil.
func NewVerificationDetails(d *domain.VerificationDetails) *VerificationDetails {
	if d == nil {
		return nil
	}
	return &VerificationDetails{
		Type:   d.Type,
		Name:   d.Name,
		Value:  d.Value,
		Reason: d.Reason,
	}
}

// NewDomainStateResponse converts a lifecycle result.
func NewDomainStateResponse(state *domain.DomainState) DomainStateResponse {
	return DomainStateResponse{
		SiteID:              state.SiteID,
		CustomDomain:        state.Domain,
		VerificationStatus:  string(state.Status),
		VerificationDetails: NewVerificationDetails(state.Verification),
	}
}

// NewDomainStatusResponse converts a status check result.
func NewDomainStatusResponse(state *domain.DomainState) DomainStatusResponse {
	return DomainStatusResponse{
		Domain:       state.Domain,
		Status:       string(state.Status),
		Verification: NewVerificationDetails(state.Verification),
	}
}

// NewSiteRecord converts a stored site record.
func NewSiteRecord(r *domain.SiteDomainRecord) SiteRecord {
	return SiteRecord{
		SiteID:                r.SiteID,
		CustomDomain:          r.CustomDomain,
		VerificationStatus:    string(r.VerificationStatus),
		VerificationDetails:   NewVerificationDetails(r.VerificationDetails),
		Version:               r.Version,
		UpdatedAt:             r.UpdatedAt,
		SubscriptionExpiresAt: r.SubscriptionExpiresAt,
	}
}
