package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/metrics"
	"github.com/dtroode/authkeeper/internal/mocks"
	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/testutil"
)

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := NewServer(":0", nil, nil, testutil.MakeNoopLogger())
	rec, body := get(t, s.Handler(), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Ready(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		db := mocks.NewPinger(t)
		db.On("Ping", mock.Anything).Return(nil).Once()
		tokens := mocks.NewPinger(t)
		tokens.On("Ping", mock.Anything).Return(nil).Once()

		s := NewServer(":0", nil, map[string]model.Pinger{"directory": db, "refresh_tokens": tokens}, testutil.MakeNoopLogger())
		rec, body := get(t, s.Handler(), "/ready")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ready"])
	})

	t.Run("one check fails", func(t *testing.T) {
		db := mocks.NewPinger(t)
		db.On("Ping", mock.Anything).Return(model.ErrStorageUnavailable).Once()
		tokens := mocks.NewPinger(t)
		tokens.On("Ping", mock.Anything).Return(nil).Once()

		s := NewServer(":0", nil, map[string]model.Pinger{"directory": db, "refresh_tokens": tokens}, testutil.MakeNoopLogger())
		rec, body := get(t, s.Handler(), "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, false, body["ready"])
		assert.Equal(t, map[string]any{"directory": "unavailable", "refresh_tokens": "ok"}, body["checks"])
	})
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.RecordOutcome("login", "success")

	s := NewServer(":0", m.Handler(), nil, testutil.MakeNoopLogger())
	rec, _ := get(t, s.Handler(), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `authkeeper_lifecycle_outcomes_total{operation="login",outcome="success"} 1`)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	s := NewServer(":0", nil, nil, testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
