package get_schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	"github.com/octadev42/Medgospel-SchedulingService/pkg/types"
)

// TransformSchedule преобразует плоский список записей расписания в список дней со слотами
// Стратегия выбирается по типу агенды:
//   - еженедельная (AGENDA_CLINICA, AGENDA_LIVRE и любой неизвестный тег): окно
//     из 14 календарных дней начиная с сегодняшнего, записи раскладываются по дням недели
//   - с явными датами (LIVRE_LIMITADA, AGENDA_PROFISSIONAL): записи группируются
//     по собственному полю data, доступность определяется остатком мест
func TransformSchedule(
	scheduleType domain.ScheduleType,
	records []domain.ScheduleRecord,
	now time.Time,
	log Logger,
) []domain.DaySchedule {
	bookable := filterBookable(records, log)

	if scheduleType.IsDateKeyed() {
		return buildDatedSchedule(bookable, now, log)
	}
	return buildWeeklySchedule(bookable, now)
}

// filterBookable отбрасывает записи без привязки к позиции каталога цен
// Такой слот нельзя положить в корзину; пропуск логируется как сигнал
// о проблеме данных, пользователю ошибка не показывается
func filterBookable(records []domain.ScheduleRecord, log Logger) []*domain.ScheduleRecord {
	result := make([]*domain.ScheduleRecord, 0, len(records))

	for i := range records {
		rec := &records[i]
		if !rec.HasCatalogItem() {
			log.Warn("schedule: dropping record without fk_tabela_preco_item_horario (id=%v, hora_inicial=%s)",
				rec.ID, rec.HoraInicial)
			continue
		}
		result = append(result, rec)
	}

	return result
}

// buildWeeklySchedule раскладывает еженедельные записи по окну из 14 дней
// Каждая запись попадает во все дни окна, чей день недели входит в dias_semana
// Вместимость для еженедельных типов не учитывается: все слоты доступны,
// vagas_disponiveis не заполняется
func buildWeeklySchedule(records []*domain.ScheduleRecord, now time.Time) []domain.DaySchedule {
	days := make([]domain.DaySchedule, 0, domain.ScheduleWindowDays)

	for offset := 0; offset < domain.ScheduleWindowDays; offset++ {
		date := now.AddDate(0, 0, offset)
		day := domain.NewDaySchedule(date, now)

		for _, rec := range records {
			if !rec.MatchesWeekday(date.Weekday()) {
				continue
			}
			day.Slots = append(day.Slots, buildSlot(day.ID, rec, true, nil))
		}

		// Дни без единого слота в выдачу не попадают
		if len(day.Slots) > 0 {
			days = append(days, day)
		}
	}

	return days
}

// buildDatedSchedule группирует записи с явной датой по календарным дням
// Доступность слота определяется остатком мест: vagas_disponiveis > 0
// Дни сортируются по возрастанию даты, порядок слотов внутри дня повторяет входной
func buildDatedSchedule(records []*domain.ScheduleRecord, now time.Time, log Logger) []domain.DaySchedule {
	days := make([]domain.DaySchedule, 0)
	dayIndex := make(map[string]int)

	for _, rec := range records {
		date, ok := parseRecordDate(rec, log)
		if !ok {
			continue
		}

		dayID := date.Format(domain.DateFormat)
		idx, exists := dayIndex[dayID]
		if !exists {
			days = append(days, domain.NewDaySchedule(date, now))
			idx = len(days) - 1
			dayIndex[dayID] = idx
		}

		vagas := 0
		if rec.VagasDisponiveis != nil {
			vagas = *rec.VagasDisponiveis
		}

		days[idx].Slots = append(days[idx].Slots, buildSlot(dayID, rec, vagas > 0, &vagas))
	}

	sort.Slice(days, func(i, j int) bool {
		// ID имеет формат YYYY-MM-DD, лексикографический порядок совпадает с хронологическим
		return days[i].ID < days[j].ID
	})

	return days
}

// parseRecordDate разбирает дату записи
// Записи без даты или с нечитаемой датой отбрасываются с записью в лог
func parseRecordDate(rec *domain.ScheduleRecord, log Logger) (time.Time, bool) {
	if rec.Data == nil || *rec.Data == "" {
		log.Warn("schedule: dropping dated record without data field (fk=%d)", *rec.FkTabelaPrecoItemHorario)
		return time.Time{}, false
	}

	date, err := time.Parse(domain.DateFormat, *rec.Data)
	if err != nil {
		// Некоторые бэкенды присылают дату с временной частью
		date, err = time.Parse(time.RFC3339, *rec.Data)
	}
	if err != nil {
		log.Warn("schedule: dropping record with unparseable date %q (fk=%d)", *rec.Data, *rec.FkTabelaPrecoItemHorario)
		return time.Time{}, false
	}

	return date, true
}

// buildSlot собирает слот из записи расписания
// available и vagas задаются стратегией: еженедельные типы всегда доступны и без
// счетчика мест, типы с явными датами несут остаток мест
func buildSlot(dayID string, rec *domain.ScheduleRecord, available bool, vagas *int) domain.TimeSlot {
	return domain.TimeSlot{
		ID:               fmt.Sprintf("%s-%d", dayID, *rec.FkTabelaPrecoItemHorario),
		Time:             formatSlotTime(rec.HoraInicial, rec.HoraFinal),
		Available:        available,
		VagasDisponiveis: vagas,
		OriginalData:     rec,
	}
}

// formatSlotTime форматирует интервал "HH:MM - HH:MM" из времени начала и конца
// Нечитаемое время оставляется как есть: слот важнее идеального формата
func formatSlotTime(horaInicial, horaFinal string) string {
	return fmt.Sprintf("%s - %s", shortTime(horaInicial), shortTime(horaFinal))
}

func shortTime(s string) string {
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return s
	}
	return t.String()
}
