package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-admin/internal/usecase"
)

func TestWriteSuccess_BareBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, teamDTO{ID: 3, Name: "Lions"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["name"] != "Lions" {
		t.Fatalf("expected bare resource, got %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Fatalf("did not expect an envelope")
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{err: fmt.Errorf("%w: team name is required", usecase.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantMsg: "invalid input: team name is required"},
		{err: fmt.Errorf("%w: team=9", usecase.ErrNotFound), wantStatus: http.StatusNotFound, wantMsg: "resource not found: team=9"},
		{err: fmt.Errorf("%w: delete team", usecase.ErrConflict), wantStatus: http.StatusConflict, wantMsg: "conflict: delete team"},
		{err: errors.New("pq: password authentication failed"), wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(context.Background(), rec, tc.err)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.wantStatus, rec.Code)
		}
		var body map[string]string
		if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
		if body["error"] != tc.wantMsg {
			t.Fatalf("expected error %q, got %q", tc.wantMsg, body["error"])
		}
	}
}

func TestWriteJSON_EncodeFailureFallsBackTo500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(context.Background(), rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
