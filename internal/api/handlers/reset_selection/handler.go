package reset_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers"
	"github.com/octadev42/Medgospel-SchedulingService/internal/api/middleware"
	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/selection/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/selection/reset - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ResetSelection(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/selection/reset - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cart.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/selection/reset - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /sessions/{id}/selection/reset - Failed to reset selection: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/selection/reset - Selection reset: session_id=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
