package vercel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/domaingate/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		Token:       "token-123",
		ProjectID:   "prj_abc",
		TeamID:      "team_xyz",
		BaseURL:     server.URL,
		CNAMETarget: "cname.example-edge.net",
	})
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(Config{ProjectID: "prj"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = New(Config{Token: "t"})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	c, err := New(Config{Token: "t", ProjectID: "p"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}

func TestClient_AddDomain_PendingWithChallenge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v10/projects/prj_abc/domains", r.URL.Path)
		assert.Equal(t, "team_xyz", r.URL.Query().Get("teamId"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mycustomdomain.org", body["name"])

		writeJSON(w, http.StatusOK, map[string]any{
			"name":     "mycustomdomain.org",
			"verified": false,
			"verification": []map[string]string{{
				"type":   "TXT",
				"domain": "_vercel.mycustomdomain.org",
				"value":  "vc-domain-verify=mycustomdomain.org,abc",
				"reason": "pending_domain_verification",
			}},
		})
	})

	pd, err := client.AddDomain(testContext(), "mycustomdomain.org")

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderStatusPending, pd.Status)
	require.NotNil(t, pd.Verification)
	assert.Equal(t, "TXT", pd.Verification.Type)
	assert.Equal(t, "_vercel.mycustomdomain.org", pd.Verification.Name)
	assert.Equal(t, "pending_domain_verification", pd.Verification.Reason)
}

func TestClient_AddDomain_AlreadyOnProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeJSON(w, http.StatusConflict, map[string]any{
				"error": map[string]string{"code": "domain_already_in_use", "message": "already in use"},
			})
		case http.MethodGet:
			assert.Equal(t, "/v9/projects/prj_abc/domains/mycustomdomain.org", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{"name": "mycustomdomain.org", "verified": true})
		}
	})

	pd, err := client.AddDomain(testContext(), "mycustomdomain.org")

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderStatusVerified, pd.Status)
	require.NotNil(t, pd.Verification)
	assert.Equal(t, "CNAME", pd.Verification.Type)
	assert.Equal(t, "cname.example-edge.net", pd.Verification.Value)
}

func TestClient_AddDomain_UsedByAnotherProject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error": map[string]string{"code": "domain_already_in_use", "message": "Cannot add domain since it's already in use by another project"},
			})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]string{"code": "not_found"}})
	})

	_, err := client.AddDomain(testContext(), "taken.org")

	assert.ErrorIs(t, err, domain.ErrProviderRejected)
	pe, ok := domain.AsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, pe.StatusCode)
	assert.Equal(t, "domain_already_in_use", pe.Code)
	assert.False(t, pe.Retryable())
}

func TestClient_AddDomain_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.AddDomain(testContext(), "example.com")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClient_GetStatus_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]string{"code": "not_found", "message": "The domain was not found"},
		})
	})

	_, err := client.GetStatus(testContext(), "example.com")

	assert.ErrorIs(t, err, domain.ErrProviderDomainNotFound)
}

func TestClient_GetStatus_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := client.GetStatus(testContext(), "example.com")

	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClient_RemoveDomain(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v9/projects/prj_abc/domains/example.com", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	require.NoError(t, client.RemoveDomain(testContext(), "example.com"))
	assert.True(t, called)
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetStatus(ctx, "example.com")

	assert.ErrorIs(t, err, domain.ErrProviderTimeout)
}
