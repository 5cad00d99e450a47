package get_schedule

import (
	"context"
	"time"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	"github.com/octadev42/Medgospel-SchedulingService/internal/integrations/pricetable"
)

// PriceTableClient интерфейс клиента каталога цен
type PriceTableClient interface {
	GetTabelaPreco(ctx context.Context, establishmentID int64) (*pricetable.TabelaPrecoResponse, error)
}

// ScheduleCache интерфейс кэша трансформированных расписаний
type ScheduleCache interface {
	Get(key string) (domain.ScheduleType, []domain.DaySchedule, bool)
	Put(key string, scheduleType domain.ScheduleType, days []domain.DaySchedule)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
