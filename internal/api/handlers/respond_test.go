package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "projextpal-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/projects", nil)
	return c, w
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("name", "required"), http.StatusBadRequest},
		{"not found", apperrors.ErrProjectNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrStaleVersion, http.StatusConflict},
		{"not implemented", apperrors.NewNotImplementedError("waterfall metrics"), http.StatusNotImplemented},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := testContext(t)
			respondError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRespondErrorLogsUnknownErrors(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	c, w := testContext(t)
	c.Set("request_id", "req-123")

	respondError(c, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "req-123", entry.Data["request_id"])
	assert.Equal(t, "/projects", entry.Data["path"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "pq: connection reset")
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	c, w := testContext(t)
	respondError(c, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
