package domain

import "time"

// Дни недели храним как в базе: 0-6, понедельник..воскресенье
const (
	DayOfWeekMin = 0
	DayOfWeekMax = 6
)

// WeeklyRule - повторяющееся еженедельное окно доступности в таймзоне пользователя.
// StartTime и EndTime содержат только время суток (дата не имеет значения).
type WeeklyRule struct {
	ID        int64
	UserID    int64
	DayOfWeek int
	StartTime time.Time
	EndTime   time.Time
}

// OverrideRule - разовое окно доступности на конкретную дату.
// Если на дату есть хотя бы одно такое правило, еженедельные правила
// на эту дату полностью игнорируются (замена, не слияние).
type OverrideRule struct {
	ID        int64
	UserID    int64
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}
