package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

type StoragePort interface {
	// Методы для работы с пользователями
	GetUsers(ctx context.Context, ids []int64) ([]domain.User, error)

	// Методы для работы с правилами доступности
	GetWeeklyRules(ctx context.Context, userID int64, dayOfWeek int) ([]domain.WeeklyRule, error)
	GetOverrideRules(ctx context.Context, userID int64, date time.Time) ([]domain.OverrideRule, error)

	// Методы для работы с бронями
	GetBusyEvents(ctx context.Context, userID int64, dayStart, dayEnd time.Time) ([]domain.BusyEvent, error)
	StoreBusyEvent(ctx context.Context, event domain.BusyEvent) (int64, error)
	DeleteBusyEventByBookingID(ctx context.Context, bookingID uuid.UUID) error
}
