package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-admin/internal/platform/logging"
	"github.com/riskibarqy/league-admin/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	teamService         *usecase.TeamService
	playerService       *usecase.PlayerService
	civilizationService *usecase.CivilizationService
	mapService          *usecase.MapService
	gameService         *usecase.GameService
	health              HealthChecker
	logger              *logging.Logger
	validator           *validator.Validate
}

type Services struct {
	Teams         *usecase.TeamService
	Players       *usecase.PlayerService
	Civilizations *usecase.CivilizationService
	Maps          *usecase.MapService
	Games         *usecase.GameService
}

// NewHandler builds the REST handler. health may be nil when the store has
// nothing to ping.
func NewHandler(services Services, health HealthChecker, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:         services.Teams,
		playerService:       services.Players,
		civilizationService: services.Civilizations,
		mapService:          services.Maps,
		gameService:         services.Games,
		health:              health,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz", routeAttr(r))
	defer span.End()

	if h.health != nil {
		if err := h.health.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "health check failed", "error", err)
			writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest reads a JSON body and runs struct validation. Unknown fields
// are ignored so clients can send back a full record on update.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if n, ok := payload.(interface{ normalize() }); ok {
		n.normalize()
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}

	return id, nil
}

// fail logs at warn for client errors and at error for everything else, then
// writes the mapped response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
