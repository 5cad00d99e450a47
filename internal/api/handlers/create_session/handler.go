package create_session

import (
	"net/http"

	"github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers"
	"github.com/octadev42/Medgospel-SchedulingService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	session, err := h.service.CreateSession(r.Context(), userID)
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, user_id=%d", session.SessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
