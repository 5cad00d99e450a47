package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/octadev42/Medgospel-SchedulingService/internal/api/handlers"
	getSchedule "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/get_schedule"
)

const (
	msgInvalidEstablishmentID = "некорректный ID учреждения"
	msgInvalidItemID          = "некорректный ID позиции каталога"
	msgEstablishmentNotFound  = "учреждение не найдено"
	msgItemNotFound           = "позиция каталога не найдена"
	msgInvalidInput           = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем establishmentId из URL
	vars := mux.Vars(r)
	establishmentIDStr := vars["establishmentId"]

	establishmentID, err := strconv.ParseInt(establishmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/schedule - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	// Опциональные query параметры
	useCaseReq := &getSchedule.Request{
		EstablishmentID: establishmentID,
		ScheduleType:    r.URL.Query().Get("tipo"),
	}

	if itemIDStr := r.URL.Query().Get("itemId"); itemIDStr != "" {
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /establishments/{id}/schedule - Invalid item ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)
			return
		}
		useCaseReq.ItemID = &itemID
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/schedule - Establishment not found: establishment_id=%d", establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, getSchedule.ErrItemNotFound):
			h.logger.Warn("GET /establishments/{id}/schedule - Item not found: establishment_id=%d", establishmentID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/schedule - Invalid input: establishment_id=%d, error=%v", establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /establishments/{id}/schedule - Failed to get schedule: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/schedule - Schedule retrieved: establishment_id=%d, type=%s, days=%d",
		establishmentID, result.ScheduleType, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
