package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	r := newLiveRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	got := w.Header().Get("X-Request-ID")
	if got == "" {
		t.Fatal("X-Request-ID header missing")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("X-Request-ID %q is not a uuid: %v", got, err)
	}
}

func TestRequestIDMiddleware_KeepsClientSuppliedID(t *testing.T) {
	r := newLiveRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Fatalf("X-Request-ID = %q, want client-supplied", got)
	}
}

// The logging middleware must be pass-through: identical response with or
// without a logger attached.
func TestRequestLogger_DoesNotAlterResponse(t *testing.T) {
	r := newLiveRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/users/register", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for empty body", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Fatal("body swallowed by middleware")
	}
}
