package add_to_cart

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers"
	"github.com/octadev42/Medgospel-SchedulingService/internal/api/middleware"
	addToCart "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/add_to_cart"
)

const (
	msgSessionNotFound       = "сессия не найдена"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgMissingRequiredFields = "не заполнены обязательные поля выбора"
	msgAddInProgress         = "добавление в корзину уже выполняется"
	msgPacienteNotFound      = "пациент не найден"
	msgItemRejected          = "позиция отклонена сервисом корзины"
)

type Handler struct {
	useCase AddToCartUseCase
	logger  Logger
}

func NewHandler(useCase AddToCartUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/cart - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addToCart.Request{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, addToCart.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/cart - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, addToCart.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/cart - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, addToCart.ErrMissingRequiredFields):
			h.logger.Warn("POST /sessions/{id}/cart - Missing required fields: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgMissingRequiredFields)

		case errors.Is(err, addToCart.ErrAddInProgress):
			h.logger.Warn("POST /sessions/{id}/cart - Add already in progress: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAddInProgress)

		case errors.Is(err, addToCart.ErrPacienteNotFound):
			h.logger.Warn("POST /sessions/{id}/cart - Paciente not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgPacienteNotFound)

		case errors.Is(err, addToCart.ErrItemRejected):
			// Показываем серверное сообщение, если оно есть
			message := msgItemRejected
			var rejection *addToCart.RejectionError
			if errors.As(err, &rejection) && rejection.Message != "" {
				message = rejection.Message
			}
			h.logger.Warn("POST /sessions/{id}/cart - Item rejected: session_id=%s, message=%s", sessionID, message)
			handlers.RespondError(w, http.StatusUnprocessableEntity, message)

		default:
			h.logger.Error("POST /sessions/{id}/cart - Failed to add to cart: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/cart - Item added to cart: session_id=%s, user_id=%d, cart_size=%d",
		sessionID, userID, len(result.CartItems))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
