package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	cause := stderrors.New("connection refused")

	withCause := DatabaseError("query failed", cause, nil)
	assert.Contains(t, withCause.Error(), "DATABASE_ERROR")
	assert.Contains(t, withCause.Error(), "caused by: connection refused")

	withoutCause := ValidationError("bad category", nil)
	assert.Equal(t, "VALIDATION_ERROR: bad category", withoutCause.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := DatabaseError("query failed", cause, nil)

	assert.True(t, stderrors.Is(err, cause))
}

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{ValidationError("bad input", nil), http.StatusBadRequest},
		{NotFoundError("missing", nil, nil), http.StatusNotFound},
		{ForbiddenError("nope", nil), http.StatusForbidden},
		{DatabaseError("down", nil, nil), http.StatusInternalServerError},
		{UnknownError("boom", nil, nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatusCode(), "code %s", tt.err.Code)
	}
}

func TestAppError_ToHTTPResponse_HidesCause(t *testing.T) {
	err := DatabaseError("query failed", stderrors.New("secret dsn"), map[string]interface{}{
		"table": "feed_items",
	})

	resp := err.ToHTTPResponse()
	assert.Equal(t, ErrCodeDatabase, resp.Code)
	assert.Equal(t, "query failed", resp.Message)
	assert.NotContains(t, resp.Message, "secret dsn")
	assert.Equal(t, "feed_items", resp.Context["table"])
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	LogError(log, DatabaseError("query failed", stderrors.New("timeout"), map[string]interface{}{"op": "fetch"}), "assemble_feed")
	out := buf.String()
	assert.True(t, strings.Contains(out, "DATABASE_ERROR"))
	assert.True(t, strings.Contains(out, "assemble_feed"))

	// nil logger must not panic
	LogError(nil, stderrors.New("x"), "op")
}
