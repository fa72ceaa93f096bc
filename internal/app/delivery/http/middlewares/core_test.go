package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auditflow-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewareInstance := &Middlewares{Log: zap.NewNop()}

	t.Run("Generates Request ID When Absent", func(t *testing.T) {
		var contextRequestID string
		var isClientRequestID bool

		handler := middlewareInstance.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contextRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			isClientRequestID, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/templates", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, contextRequestID)
		assert.False(t, isClientRequestID)
		assert.Equal(t, contextRequestID, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps Client Supplied Request ID", func(t *testing.T) {
		var contextRequestID string
		var isClientRequestID bool

		handler := middlewareInstance.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contextRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			isClientRequestID, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/templates", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-supplied-id", contextRequestID)
		assert.True(t, isClientRequestID)
		assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
