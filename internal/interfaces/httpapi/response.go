package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-admin/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const internalErrorMessage = "internal server error"

type errorBody struct {
	Error string `json:"error"`
}

type successBody struct {
	Success bool `json:"success"`
}

// writeJSON encodes into a pooled buffer first so an encoding failure can
// still produce a clean 500 instead of a truncated body.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = sonic.ConfigDefault.NewEncoder(buf).Encode(errorBody{Error: internalErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, data)
}

func writeDeleted(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusOK, successBody{Success: true})
}

// writeError never leaks the cause of a 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(err)
	if status == http.StatusInternalServerError {
		writeInternalError(ctx, w)
		return
	}

	writeJSON(ctx, w, status, errorBody{Error: publicMessage(err)})
}

// publicMessage drops driver detail (tables, columns, codes) from classified
// storage errors.
func publicMessage(err error) string {
	var storeErr *usecase.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.PublicMessage()
	}
	return err.Error()
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: internalErrorMessage})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
