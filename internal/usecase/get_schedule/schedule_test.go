package get_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octadev42/Medgospel-SchedulingService/internal/domain"
	"github.com/octadev42/Medgospel-SchedulingService/pkg/ptr"
)

// testLogger собирает сообщения для проверок
type testLogger struct {
	warns  []string
	infos  []string
	errors []string
}

func (l *testLogger) Info(format string, v ...interface{})  { l.infos = append(l.infos, format) }
func (l *testLogger) Warn(format string, v ...interface{})  { l.warns = append(l.warns, format) }
func (l *testLogger) Error(format string, v ...interface{}) { l.errors = append(l.errors, format) }

func weeklyRecord(fk int64, diasSemana []int, horaInicial, horaFinal string) domain.ScheduleRecord {
	return domain.ScheduleRecord{
		ID:                       ptr.Ptr(fk),
		HoraInicial:              horaInicial,
		HoraFinal:                horaFinal,
		DiasSemana:               diasSemana,
		FkTabelaPrecoItemHorario: ptr.Ptr(fk),
	}
}

func datedRecord(fk int64, data string, vagas *int) domain.ScheduleRecord {
	return domain.ScheduleRecord{
		ID:                       ptr.Ptr(fk),
		Data:                     ptr.Ptr(data),
		HoraInicial:              "08:00:00",
		HoraFinal:                "11:00:00",
		VagasDisponiveis:         vagas,
		FkTabelaPrecoItemHorario: ptr.Ptr(fk),
	}
}

func TestTransformSchedule_WeeklyWindow(t *testing.T) {
	// Понедельник
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		weeklyRecord(77, []int{1, 3, 5}, "07:00:00", "12:00:00"),
	}

	days := TransformSchedule(domain.ScheduleTypeClinicWeekly, records, now, &testLogger{})

	// В окне из 14 дней понедельник/среда/пятница встречаются 6 раз
	require.Len(t, days, 6)
	assert.Equal(t, []string{
		"2025-07-14", "2025-07-16", "2025-07-18",
		"2025-07-21", "2025-07-23", "2025-07-25",
	}, dayIDs(days))

	first := days[0]
	assert.Equal(t, "seg", first.Day)
	assert.Equal(t, "14/07", first.Date)
	assert.True(t, first.IsToday)

	require.Len(t, first.Slots, 1)
	slot := first.Slots[0]
	assert.Equal(t, "2025-07-14-77", slot.ID)
	assert.Equal(t, "07:00 - 12:00", slot.Time)
	assert.True(t, slot.Available)
	assert.Nil(t, slot.VagasDisponiveis)
	require.NotNil(t, slot.OriginalData)
	assert.Equal(t, int64(77), *slot.OriginalData.FkTabelaPrecoItemHorario)

	// Остальные дни окна сегодняшними не считаются
	for _, day := range days[1:] {
		assert.False(t, day.IsToday)
	}
}

func TestTransformSchedule_WeeklySkipsEmptyDays(t *testing.T) {
	// Воскресенье, записи только на вторник
	now := time.Date(2025, 7, 13, 9, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		weeklyRecord(5, []int{2}, "09:00:00", "10:00:00"),
	}

	days := TransformSchedule(domain.ScheduleTypeFreeWeekly, records, now, &testLogger{})

	require.Len(t, days, 2)
	for _, day := range days {
		assert.Equal(t, "ter", day.Day)
		require.Len(t, day.Slots, 1)
	}
}

func TestTransformSchedule_WeeklyMultipleRecordsPerDay(t *testing.T) {
	now := time.Date(2025, 7, 14, 8, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		weeklyRecord(1, []int{1}, "07:00:00", "09:00:00"),
		weeklyRecord(2, []int{1}, "14:00:00", "18:00:00"),
	}

	days := TransformSchedule(domain.ScheduleTypeClinicWeekly, records, now, &testLogger{})

	require.Len(t, days, 2)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, "2025-07-14-1", days[0].Slots[0].ID)
	assert.Equal(t, "2025-07-14-2", days[0].Slots[1].ID)
}

func TestTransformSchedule_DatedGroupsByDate(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		datedRecord(10, "2025-07-15", ptr.Ptr(3)),
		datedRecord(11, "2025-07-15", ptr.Ptr(0)),
	}

	days := TransformSchedule(domain.ScheduleTypeLimitedWeekly, records, now, &testLogger{})

	require.Len(t, days, 1)
	day := days[0]
	assert.Equal(t, "2025-07-15", day.ID)
	assert.Equal(t, "ter", day.Day)
	assert.Equal(t, "15/07", day.Date)
	assert.False(t, day.IsToday)

	require.Len(t, day.Slots, 2)
	assert.Equal(t, "2025-07-15-10", day.Slots[0].ID)
	assert.True(t, day.Slots[0].Available)
	require.NotNil(t, day.Slots[0].VagasDisponiveis)
	assert.Equal(t, 3, *day.Slots[0].VagasDisponiveis)

	assert.Equal(t, "2025-07-15-11", day.Slots[1].ID)
	assert.False(t, day.Slots[1].Available)
	require.NotNil(t, day.Slots[1].VagasDisponiveis)
	assert.Equal(t, 0, *day.Slots[1].VagasDisponiveis)
}

func TestTransformSchedule_DatedMissingVagasMeansUnavailable(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		datedRecord(20, "2025-07-16", nil),
	}

	days := TransformSchedule(domain.ScheduleTypeProfessionalDated, records, now, &testLogger{})

	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 1)
	slot := days[0].Slots[0]
	assert.False(t, slot.Available)
	require.NotNil(t, slot.VagasDisponiveis)
	assert.Equal(t, 0, *slot.VagasDisponiveis)
}

func TestTransformSchedule_DatedSortsDaysAscending(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		datedRecord(3, "2025-07-20", ptr.Ptr(1)),
		datedRecord(1, "2025-07-15", ptr.Ptr(1)),
		datedRecord(2, "2025-07-18", ptr.Ptr(1)),
	}

	days := TransformSchedule(domain.ScheduleTypeLimitedWeekly, records, now, &testLogger{})

	assert.Equal(t, []string{"2025-07-15", "2025-07-18", "2025-07-20"}, dayIDs(days))
}

func TestTransformSchedule_DatedAcceptsRFC3339Date(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	records := []domain.ScheduleRecord{
		datedRecord(7, "2025-07-17T00:00:00Z", ptr.Ptr(2)),
	}

	days := TransformSchedule(domain.ScheduleTypeLimitedWeekly, records, now, &testLogger{})

	require.Len(t, days, 1)
	assert.Equal(t, "2025-07-17", days[0].ID)
}

func TestTransformSchedule_DropsUnparseableDates(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	log := &testLogger{}
	records := []domain.ScheduleRecord{
		datedRecord(1, "not-a-date", ptr.Ptr(1)),
		datedRecord(2, "", ptr.Ptr(1)),
		datedRecord(3, "2025-07-16", ptr.Ptr(1)),
	}

	days := TransformSchedule(domain.ScheduleTypeLimitedWeekly, records, now, log)

	require.Len(t, days, 1)
	assert.Equal(t, "2025-07-16", days[0].ID)
	assert.Len(t, log.warns, 2)
}

func TestTransformSchedule_DropsRecordsWithoutCatalogItem(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)
	log := &testLogger{}

	orphan := weeklyRecord(1, []int{1}, "07:00:00", "09:00:00")
	orphan.FkTabelaPrecoItemHorario = nil

	records := []domain.ScheduleRecord{
		orphan,
		weeklyRecord(2, []int{1}, "10:00:00", "12:00:00"),
	}

	days := TransformSchedule(domain.ScheduleTypeClinicWeekly, records, now, log)

	require.NotEmpty(t, days)
	for _, day := range days {
		require.Len(t, day.Slots, 1)
		assert.Equal(t, int64(2), *day.Slots[0].OriginalData.FkTabelaPrecoItemHorario)
	}
	assert.Len(t, log.warns, 1)
}

func TestTransformSchedule_EmptyRecords(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

	assert.Empty(t, TransformSchedule(domain.ScheduleTypeClinicWeekly, nil, now, &testLogger{}))
	assert.Empty(t, TransformSchedule(domain.ScheduleTypeLimitedWeekly, nil, now, &testLogger{}))
}

func TestFormatSlotTime(t *testing.T) {
	assert.Equal(t, "07:00 - 12:00", formatSlotTime("07:00:00", "12:00:00"))
	assert.Equal(t, "08:30 - 09:15", formatSlotTime("08:30", "09:15"))
	// Нечитаемое время остается как есть
	assert.Equal(t, "manhã - 12:00", formatSlotTime("manhã", "12:00:00"))
}

func dayIDs(days []domain.DaySchedule) []string {
	ids := make([]string, 0, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
	}
	return ids
}
