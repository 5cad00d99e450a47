package domain

// Форматы дат
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD, идентификатор дня
	DisplayDateFormat = "02/01"      // DD/MM, отображаемая дата
)

// ScheduleWindowDays размер окна генерации для еженедельных расписаний
// Окно фиксированное: сегодня включительно плюс 13 следующих дней
const ScheduleWindowDays = 14

// DefaultCartQuantity количество единиц в одной позиции корзины
// Запись на прием всегда добавляется по одной
const DefaultCartQuantity = 1

// weekdayAbbrev сокращенные названия дней недели (pt-BR), индекс = time.Weekday
var weekdayAbbrev = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// WeekdayAbbrev возвращает локализованное сокращение дня недели (0=воскресенье..6=суббота)
func WeekdayAbbrev(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayAbbrev[weekday]
}
