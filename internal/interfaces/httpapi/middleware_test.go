package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/league-admin/internal/platform/logging"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))
	if seen == "" {
		t.Fatalf("expected a generated request id")
	}
	if got := rec.Header().Get(requestIDHeader); got != seen {
		t.Fatalf("expected header %q, got %q", seen, got)
	}

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "abc-123" {
		t.Fatalf("expected caller request id, got %q", seen)
	}
}

func TestRequestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONWriter(logging.ParseLevel("info"), &buf)
	handler := RequestID(RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/maps", nil))

	out := buf.String()
	for _, want := range []string{`"status":418`, `"path":"/maps"`, `"request_id"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log line: %s", want, out)
		}
	}
}

func TestRecoverPanic_Returns500(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), internalErrorMessage) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
