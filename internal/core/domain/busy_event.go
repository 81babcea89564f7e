package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusyEvent - уже подтвержденная бронь, которую нужно исключить из доступности.
// Метки времени хранятся без таймзоны и интерпретируются в таймзоне пользователя.
type BusyEvent struct {
	ID            int64
	UserID        int64
	BookingID     uuid.UUID
	StartDateTime time.Time
	EndDateTime   time.Time
}
