package utils

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homefix/config"
)

func TestNewIDFormatAndUniqueness(t *testing.T) {
	pattern := regexp.MustCompile(`^HF-[0-9a-f]{12}$`)
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewID("HF")
		require.Regexp(t, pattern, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s after %d calls", id, i)
		seen[id] = struct{}{}
	}
}

func TestNewIDWithoutPrefix(t *testing.T) {
	assert.Regexp(t, `^[0-9a-f]{12}$`, NewID(""))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not valid", errors.NotValidf("pincode"), http.StatusBadRequest},
		{"annotated not valid", errors.Annotate(errors.NewNotValid(nil, "missing fields"), "creating booking"), http.StatusBadRequest},
		{"not found", errors.NotFoundf("booking %q", "HF-1"), http.StatusNotFound},
		{"unauthorized", errors.Unauthorizedf("admin token"), http.StatusUnauthorized},
		{"other", errors.New("disk I/O error"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.err))
		})
	}
}

func TestJSONErrorHidesInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	JSONError(c, zap.NewNop(), errors.New("database is locked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, rec.Body.String())
}

func TestJSONErrorKeepsClientMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	JSONError(c, zap.NewNop(), errors.NewNotValid(nil, "Missing fields"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Missing fields"}`, rec.Body.String())
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, rec.Body.String())
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(&config.Config{LogLevel: "chatty"})
	assert.True(t, errors.Is(err, errors.NotValid))

	logger, err := NewLogger(&config.Config{Env: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
}
