package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/common-availability-slots-generator/internal/utils"
)

func (s *AvailabilityService) FindCommonSlots(ctx context.Context, query domain.AvailabilityQuery) (*domain.DaySlots, error) {
	s.logger.Info("slots.find.started", out.LogFields{
		"userIds":   query.UserIDs,
		"startDate": query.StartDate,
		"endDate":   query.EndDate,
		"timezone":  query.Timezone,
	})

	startDate, endDate, err := s.validateQuery(query)
	if err != nil {
		s.logger.Warn("slots.find.validation_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	users, err := s.fetchUsers(ctx, query.UserIDs)
	if err != nil {
		return nil, err
	}

	result := domain.NewDaySlots()

	// Идем по дням диапазона включительно, дни без общих слотов в ответ не попадают
	for date := startDate; !date.After(endDate); date = utils.NextDay(date) {
		daySlots, err := s.findCommonSlotsForDate(ctx, date, users, query.Timezone)
		if err != nil {
			return nil, err
		}

		if len(daySlots) == 0 {
			continue
		}

		formatted := make([]string, 0, len(daySlots))
		for _, slot := range daySlots {
			formatted = append(formatted, slot.FormatRange())
		}
		result.Add(utils.FormatRequestDate(date), formatted)
	}

	// Пустой результат - тоже успех: общих слотов просто нет
	s.logger.Info("slots.find.finished", out.LogFields{
		"days": result.Len(),
	})

	return result, nil
}

func (s *AvailabilityService) fetchUsers(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	users, err := s.storagePort.GetUsers(ctx, userIDs)
	if err != nil {
		s.logger.Error("slots.find.users.fetch_failed", out.LogFields{
			"userIds": userIDs,
			"error":   err.Error(),
		})
		return nil, &domain.DataAccessError{Op: "fetching users", Err: err}
	}

	if len(users) == 0 {
		return nil, &domain.NotFoundError{Message: "No users found"}
	}

	if len(users) != len(userIDs) {
		foundIDs := make(map[int64]bool, len(users))
		for _, user := range users {
			foundIDs[user.ID] = true
		}

		missingIDs := make([]int64, 0)
		for _, id := range userIDs {
			if !foundIDs[id] {
				missingIDs = append(missingIDs, id)
			}
		}

		return nil, &domain.NotFoundError{
			Message:    fmt.Sprintf("Users not found: %v", missingIDs),
			MissingIDs: missingIDs,
			Partial:    true,
		}
	}

	return users, nil
}

// findCommonSlotsForDate пересекает слоты всех пользователей за один календарный день
func (s *AvailabilityService) findCommonSlotsForDate(ctx context.Context, date time.Time, users []domain.User, targetTZ string) ([]domain.Slot, error) {
	allUserSlots := make([][]domain.Slot, 0, len(users))

	for _, user := range users {
		slots, hasRules, err := s.resolveUserSlots(ctx, date, user, targetTZ)
		if err != nil {
			return nil, err
		}

		// Пользователь без правил на этот день в пересечении не участвует
		if !hasRules {
			continue
		}

		allUserSlots = append(allUserSlots, slots)
	}

	common := intersectSlotSets(allUserSlots)

	return SlotSlice(common).quickSort(), nil
}
