package get_schedule

import "github.com/octadev42/Medgospel-SchedulingService/internal/domain"

// Request модель запроса на получение расписания учреждения
type Request struct {
	UserID          int64  // ID пользователя (для логирования, не влияет на результат)
	EstablishmentID int64  // ID учреждения
	ItemID          *int64 // ID позиции каталога (опционально, если nil - все позиции)
	ScheduleType    string // Сырой тег типа агенды (опционально, если пустой - берется из каталога)
}

// Response модель ответа с расписанием по дням
type Response struct {
	EstablishmentID int64                // ID учреждения
	ScheduleType    domain.ScheduleType  // Итоговый тип агенды после разбора тега
	Days            []domain.DaySchedule // Дни с доступными слотами
}
