package domain

import "time"

// ScheduleType тип агенды, приходит тегом от каталога цен
type ScheduleType string

const (
	// ScheduleTypeClinicWeekly еженедельное расписание клиники (без учета вместимости)
	ScheduleTypeClinicWeekly ScheduleType = "AGENDA_CLINICA"

	// ScheduleTypeFreeWeekly свободное еженедельное расписание (без учета вместимости)
	ScheduleTypeFreeWeekly ScheduleType = "AGENDA_LIVRE"

	// ScheduleTypeLimitedWeekly расписание с ограниченной вместимостью
	// Несмотря на название, записи приходят с явной датой и группируются по ней
	ScheduleTypeLimitedWeekly ScheduleType = "LIVRE_LIMITADA"

	// ScheduleTypeProfessionalDated расписание специалиста с явными датами
	ScheduleTypeProfessionalDated ScheduleType = "AGENDA_PROFISSIONAL"
)

// ParseScheduleType разбирает тег типа агенды
// Неизвестные значения трактуются как расписание клиники
func ParseScheduleType(s string) ScheduleType {
	switch ScheduleType(s) {
	case ScheduleTypeFreeWeekly, ScheduleTypeLimitedWeekly, ScheduleTypeProfessionalDated:
		return ScheduleType(s)
	default:
		return ScheduleTypeClinicWeekly
	}
}

// IsDateKeyed возвращает true для типов, у которых записи несут явную дату
func (t ScheduleType) IsDateKeyed() bool {
	return t == ScheduleTypeLimitedWeekly || t == ScheduleTypeProfessionalDated
}

// ScheduleRecord сырая запись расписания из каталога цен
// Поля повторяют формат бэкенда (horarios_tabela_preco)
type ScheduleRecord struct {
	ID                       *int64  `json:"id,omitempty"`
	Data                     *string `json:"data,omitempty"` // ISO дата, только для расписаний с явными датами
	HoraInicial              string  `json:"hora_inicial"`   // HH:MM:SS
	HoraFinal                string  `json:"hora_final"`     // HH:MM:SS
	VagasDisponiveis         *int    `json:"vagas_disponiveis,omitempty"`
	VagasTotal               *int    `json:"vagas_total,omitempty"`
	Vagas                    *int    `json:"vagas,omitempty"`
	DiasSemana               []int   `json:"dias_semana,omitempty"` // 0=воскресенье..6=суббота
	FkTabelaPrecoItemHorario *int64  `json:"fk_tabela_preco_item_horario,omitempty"`
	HorarioCompleto          *bool   `json:"horario_completo,omitempty"`
}

// HasCatalogItem проверяет, что запись привязана к позиции каталога цен
// Записи без привязки нельзя положить в корзину, они отбрасываются при трансформации
func (r *ScheduleRecord) HasCatalogItem() bool {
	return r.FkTabelaPrecoItemHorario != nil
}

// MatchesWeekday проверяет, что запись действует в указанный день недели
func (r *ScheduleRecord) MatchesWeekday(weekday time.Weekday) bool {
	for _, d := range r.DiasSemana {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// TimeSlot доступное для записи временное окно внутри дня
type TimeSlot struct {
	ID               string          `json:"id"`   // дата + id позиции каталога, уникален в пределах выдачи
	Time             string          `json:"time"` // "HH:MM - HH:MM"
	Available        bool            `json:"available"`
	VagasDisponiveis *int            `json:"vagas_disponiveis,omitempty"` // nil, когда тип расписания не ограничивает вместимость
	OriginalData     *ScheduleRecord `json:"original_data"`               // ссылка на исходную запись, не мутируется
}

// DaySchedule один календарный день с упорядоченным списком слотов
type DaySchedule struct {
	ID      string     `json:"id"`   // YYYY-MM-DD
	Day     string     `json:"day"`  // сокращение дня недели (pt-BR)
	Date    string     `json:"date"` // DD/MM
	IsToday bool       `json:"is_today"`
	Slots   []TimeSlot `json:"slots"`
}

// NewDaySchedule создает пустой день расписания для указанной даты
func NewDaySchedule(date time.Time, now time.Time) DaySchedule {
	return DaySchedule{
		ID:      date.Format(DateFormat),
		Day:     WeekdayAbbrev(int(date.Weekday())),
		Date:    date.Format(DisplayDateFormat),
		IsToday: isSameDay(date, now),
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
