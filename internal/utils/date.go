package utils

import "time"

// RequestDateFormat - формат дат в запросе и в ключах ответа, DD-MM-YYYY
const RequestDateFormat = "02-01-2006"

// StartCurrentDay возвращает ту же дату со временем 00:00, таймзона остается прежней.
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00, а таймзона остается прежней.
func NextDay(t time.Time) time.Time {
	// Увеличиваем день на 1
	newDate := t.AddDate(0, 0, 1)
	// Устанавливаем время на 00:00
	newDate = time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
	return newDate
}

// ParseRequestDate парсит дату запроса в формате DD-MM-YYYY как UTC-полночь
func ParseRequestDate(str string) (time.Time, error) {
	return time.ParseInLocation(RequestDateFormat, str, time.UTC)
}

// FormatRequestDate форматирует дату в ключ ответа DD-MM-YYYY
func FormatRequestDate(t time.Time) string {
	return t.Format(RequestDateFormat)
}

// WeekdayIndex возвращает день недели в нумерации базы: 0-6, понедельник..воскресенье.
// В time.Weekday воскресенье равно 0, поэтому сдвигаем.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
