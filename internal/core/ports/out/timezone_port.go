package out

import "time"

type TimezonePort interface {
	// Проверка, что идентификатор есть в базе таймзон
	Validate(tz string) error

	// Преобразует локальное стеночное время (дата + время суток) в таймзоне tz
	// в абсолютный момент. DST и исторические смещения разрешаются базой таймзон.
	LocalToInstant(date time.Time, clock time.Time, tz string) (time.Time, error)

	// Возвращает тот же момент в стеночном представлении таймзоны tz
	InstantToLocal(instant time.Time, tz string) (time.Time, error)
}
