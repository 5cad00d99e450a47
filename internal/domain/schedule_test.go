package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseScheduleType(t *testing.T) {
	assert.Equal(t, ScheduleTypeClinicWeekly, ParseScheduleType("AGENDA_CLINICA"))
	assert.Equal(t, ScheduleTypeFreeWeekly, ParseScheduleType("AGENDA_LIVRE"))
	assert.Equal(t, ScheduleTypeLimitedWeekly, ParseScheduleType("LIVRE_LIMITADA"))
	assert.Equal(t, ScheduleTypeProfessionalDated, ParseScheduleType("AGENDA_PROFISSIONAL"))

	// Неизвестные теги трактуются как расписание клиники
	assert.Equal(t, ScheduleTypeClinicWeekly, ParseScheduleType(""))
	assert.Equal(t, ScheduleTypeClinicWeekly, ParseScheduleType("AGENDA_NOVA"))
}

func TestIsDateKeyed(t *testing.T) {
	assert.False(t, ScheduleTypeClinicWeekly.IsDateKeyed())
	assert.False(t, ScheduleTypeFreeWeekly.IsDateKeyed())
	assert.True(t, ScheduleTypeLimitedWeekly.IsDateKeyed())
	assert.True(t, ScheduleTypeProfessionalDated.IsDateKeyed())
}

func TestMatchesWeekday(t *testing.T) {
	rec := ScheduleRecord{DiasSemana: []int{1, 3, 5}}

	assert.True(t, rec.MatchesWeekday(time.Monday))
	assert.True(t, rec.MatchesWeekday(time.Friday))
	assert.False(t, rec.MatchesWeekday(time.Sunday))
	assert.False(t, rec.MatchesWeekday(time.Saturday))

	empty := ScheduleRecord{}
	assert.False(t, empty.MatchesWeekday(time.Monday))
}

func TestWeekdayAbbrev(t *testing.T) {
	assert.Equal(t, "dom", WeekdayAbbrev(0))
	assert.Equal(t, "seg", WeekdayAbbrev(1))
	assert.Equal(t, "sáb", WeekdayAbbrev(6))
	assert.Equal(t, "", WeekdayAbbrev(7))
	assert.Equal(t, "", WeekdayAbbrev(-1))
}

func TestNewDaySchedule(t *testing.T) {
	now := time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC)

	today := NewDaySchedule(now, now)
	assert.Equal(t, "2025-07-14", today.ID)
	assert.Equal(t, "seg", today.Day)
	assert.Equal(t, "14/07", today.Date)
	assert.True(t, today.IsToday)

	tomorrow := NewDaySchedule(now.AddDate(0, 0, 1), now)
	assert.Equal(t, "ter", tomorrow.Day)
	assert.False(t, tomorrow.IsToday)
}
