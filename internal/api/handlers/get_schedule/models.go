package get_schedule

import (
	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	getSchedule "github.com/octadev42/Medgospel-SchedulingService/internal/usecase/get_schedule"
)

// GetScheduleResponse HTTP ответ с расписанием учреждения
type GetScheduleResponse struct {
	EstablishmentID int64                `json:"establishment_id"`
	ScheduleType    string               `json:"schedule_type"`
	Days            []domain.DaySchedule `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getSchedule.Response) *GetScheduleResponse {
	days := resp.Days
	if days == nil {
		days = []domain.DaySchedule{}
	}

	return &GetScheduleResponse{
		EstablishmentID: resp.EstablishmentID,
		ScheduleType:    string(resp.ScheduleType),
		Days:            days,
	}
}
