package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/pipeline/notifications/pending", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notifications":[{"id":"n1","recipient_email":"ana@example.com","vehicle_plate":"ABC1D23","estimated_amount":45000,"inspection_date":"2025-03-10T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret", srv.Client())
	pending, err := c.GetPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "n1", pending[0].ID)
	assert.Equal(t, "ABC1D23", pending[0].VehiclePlate)
	assert.Equal(t, int64(45000), pending[0].EstimatedAmount)
	assert.Equal(t, 10, pending[0].InspectionDate.Day())
}

func TestClient_MarkSentAndFailed(t *testing.T) {
	var paths []string
	var reason string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		if r.Body != nil && r.ContentLength > 0 {
			var body struct {
				Reason string `json:"reason"`
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			reason = body.Reason
		}
		_, _ = w.Write([]byte(`{"notification":{}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", srv.Client())
	require.NoError(t, c.MarkSent(context.Background(), "n1"))
	require.NoError(t, c.MarkFailed(context.Background(), "n2", "mailbox unavailable"))

	assert.Equal(t, []string{
		"/api/v1/pipeline/notifications/n1/sent",
		"/api/v1/pipeline/notifications/n2/failed",
	}, paths)
	assert.Equal(t, "mailbox unavailable", reason)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"NOTIFICATION_CLOSED","message":"notification is no longer pending"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", srv.Client())
	err := c.MarkSent(context.Background(), "n1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "NOTIFICATION_CLOSED")

	_, err = c.GetPending(context.Background(), 0)
	assert.Error(t, err)
}
