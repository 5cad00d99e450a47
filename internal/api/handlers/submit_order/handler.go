package submit_order

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
	msgEmptyCart       = "корзина пуста"
	msgMissingPaciente = "не выбран пациент"
	msgOrderRejected   = "заказ отклонен сервисом корзины"
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

// Handle POST /api/v1/sessions/{sessionId}/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.SubmitOrder(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/orders - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cart.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/orders - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cart.ErrEmptyCart):
			h.logger.Warn("POST /sessions/{id}/orders - Empty cart: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, cart.ErrMissingPaciente):
			h.logger.Warn("POST /sessions/{id}/orders - Missing paciente: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMissingPaciente)

		case errors.Is(err, cart.ErrOrderRejected):
			// Показываем серверное сообщение, если оно есть
			message := msgOrderRejected
			var rejection *cart.OrderRejectionError
			if errors.As(err, &rejection) && rejection.Message != "" {
				message = rejection.Message
			}
			h.logger.Warn("POST /sessions/{id}/orders - Order rejected: session_id=%s, message=%s", sessionID, message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		default:
			h.logger.Error("POST /sessions/{id}/orders - Failed to submit order: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/orders - Order created: session_id=%s, order_id=%d", sessionID, result.OrderID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
