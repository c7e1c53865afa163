package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	internal_errors "github.com/itchan-dev/forum-api/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	handler := &Handler{health: &MockHealthChecker{}}
	rr := httptest.NewRecorder()

	handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
}

func TestReady(t *testing.T) {
	t.Run("returns 200 OK when storage is available", func(t *testing.T) {
		// Arrange
		handler := &Handler{health: &MockHealthChecker{}}
		rr := httptest.NewRecorder()

		// Act
		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		var body struct {
			Status string    `json:"status"`
			Data   readiness `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "up", body.Data.Storage)
		assert.GreaterOrEqual(t, body.Data.LatencyMs, int64(0))
	})

	t.Run("returns 503 when storage is down", func(t *testing.T) {
		handler := &Handler{health: &MockHealthChecker{
			PingFunc: func(ctx context.Context) error {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline, "ping must be bounded")
				return errors.New("connection refused")
			},
		}}
		rr := httptest.NewRecorder()

		handler.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"fail","message":"storage unavailable"}`, rr.Body.String())
	})
}

func TestTranslate(t *testing.T) {
	t.Run("Known code", func(t *testing.T) {
		err := translate(internal_errors.Validation("DELETE_COMMENT", internal_errors.NotContainNeededProperty))

		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
		assert.EqualError(t, err, "cannot delete the comment because a required property is missing")
	})

	t.Run("Unknown code stays a validation error", func(t *testing.T) {
		original := internal_errors.Validation("DETAIL_THREAD", internal_errors.NotContainNeededProperty)

		assert.Same(t, original, translate(original))
	})

	t.Run("Other errors pass through", func(t *testing.T) {
		original := internal_errors.NotFound("thread not found")

		assert.Same(t, original, translate(original))
	})
}
