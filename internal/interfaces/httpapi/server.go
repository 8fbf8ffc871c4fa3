package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-admin/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

// NewRouter wires the routes behind tracing, request id, request logging,
// CORS and panic recovery, outermost first.
func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerAdminRoutes(mux, handler)

	return RequestTracing(RequestID(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}
