package in

import (
	"context"

	"github.com/google/uuid"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

type AvailabilityUseCase interface {
	// Поиск общих свободных слотов для набора пользователей и диапазона дат
	FindCommonSlots(ctx context.Context, query domain.AvailabilityQuery) (*domain.DaySlots, error)

	// Регистрация брони, пришедшей из внешней системы бронирования
	RegisterBusyEvent(ctx context.Context, event domain.BusyEvent) error

	// Удаление брони при отмене во внешней системе
	CancelBusyEvent(ctx context.Context, bookingID uuid.UUID) error
}
