package remove_cart_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers"
	"github.com/octadev42/Medgospel-SchedulingService/internal/api/middleware"
	"github.com/octadev42/Medgospel-SchedulingService/internal/service/cart"
)

const (
	msgInvalidIndex    = "некорректный индекс позиции корзины"
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

// Handle DELETE /api/v1/sessions/{sessionId}/cart/items/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/cart/items/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /sessions/{id}/cart/items/{index} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.RemoveFromCart(r.Context(), sessionID, userID, index)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/cart/items/{index} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cart.ErrAccessDenied):
			h.logger.Warn("DELETE /sessions/{id}/cart/items/{index} - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /sessions/{id}/cart/items/{index} - Failed to remove item: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/cart/items/{index} - Item removed: session_id=%s, index=%d, cart_size=%d",
		sessionID, index, len(result.CartItems))
	handlers.RespondJSON(w, http.StatusOK, result)
}
