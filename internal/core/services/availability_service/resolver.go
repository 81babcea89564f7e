package availability_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/common-availability-slots-generator/internal/utils"
)

// ruleWindow - материализованное окно правила: только время суток,
// дата подставляется при локализации
type ruleWindow struct {
	start time.Time
	end   time.Time
}

// resolveUserSlots строит набор свободных слотов одного пользователя на один день
// в целевой таймзоне. Второй результат false означает, что на этот день у
// пользователя нет ни одного правила и в пересечении он не участвует.
//
// Ошибки конвертации отдельного правила или события не прерывают запрос:
// правило/событие пропускается с записью в лог. Неизвестная таймзона самого
// пользователя, напротив, фатальна - без нее недействительно каждое его правило.
func (s *AvailabilityService) resolveUserSlots(ctx context.Context, date time.Time, user domain.User, targetTZ string) ([]domain.Slot, bool, error) {
	if err := s.timezonePort.Validate(user.Timezone); err != nil {
		s.logger.Error("slots.resolve.user_timezone.invalid", out.LogFields{
			"userId":   user.ID,
			"timezone": user.Timezone,
		})
		return nil, false, &domain.TimezoneError{Timezone: user.Timezone, UserID: user.ID}
	}

	windows, hasRules, err := s.selectRuleWindows(ctx, date, user)
	if err != nil {
		return nil, false, err
	}
	if !hasRules {
		s.logger.Debug("slots.resolve.no_rules", out.LogFields{
			"userId": user.ID,
			"date":   utils.FormatRequestDate(date),
		})
		return nil, false, nil
	}

	slotDuration := time.Duration(SlotDurationMinutes) * time.Minute
	candidates := make([]domain.Slot, 0)

	for _, window := range windows {
		// Правило с некорректным окном (start >= end) молча пропускаем
		if !window.start.Before(window.end) {
			continue
		}

		startInstant, err := s.timezonePort.LocalToInstant(date, window.start, user.Timezone)
		if err != nil {
			s.logger.Warn("slots.resolve.rule.skip", out.LogFields{
				"userId": user.ID,
				"error":  err.Error(),
			})
			continue
		}
		endInstant, err := s.timezonePort.LocalToInstant(date, window.end, user.Timezone)
		if err != nil {
			s.logger.Warn("slots.resolve.rule.skip", out.LogFields{
				"userId": user.ID,
				"error":  err.Error(),
			})
			continue
		}

		slotStart, err := s.timezonePort.InstantToLocal(startInstant, targetTZ)
		if err != nil {
			s.logger.Warn("slots.resolve.rule.skip", out.LogFields{
				"userId": user.ID,
				"error":  err.Error(),
			})
			continue
		}
		slotEnd, err := s.timezonePort.InstantToLocal(endInstant, targetTZ)
		if err != nil {
			s.logger.Warn("slots.resolve.rule.skip", out.LogFields{
				"userId": user.ID,
				"error":  err.Error(),
			})
			continue
		}

		candidates = append(candidates, discretizeInterval(slotStart, slotEnd, slotDuration)...)
	}

	events, err := s.storagePort.GetBusyEvents(ctx, user.ID, date, utils.NextDay(date))
	if err != nil {
		s.logger.Error("slots.resolve.events.fetch_failed", out.LogFields{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, false, &domain.DataAccessError{
			Op:  fmt.Sprintf("fetching schedule for user %d", user.ID),
			Err: err,
		}
	}

	for _, event := range events {
		// Метки брони наивные: интерпретируем их в таймзоне пользователя
		eventStart, err := s.timezonePort.LocalToInstant(event.StartDateTime, event.StartDateTime, user.Timezone)
		if err != nil {
			s.logger.Warn("slots.resolve.event.skip", out.LogFields{
				"userId":  user.ID,
				"eventId": event.ID,
				"error":   err.Error(),
			})
			continue
		}
		eventEnd, err := s.timezonePort.LocalToInstant(event.EndDateTime, event.EndDateTime, user.Timezone)
		if err != nil {
			s.logger.Warn("slots.resolve.event.skip", out.LogFields{
				"userId":  user.ID,
				"eventId": event.ID,
				"error":   err.Error(),
			})
			continue
		}

		// Слот, задетый бронью хотя бы частично, выбывает целиком
		candidates = removeOverlapping(candidates, eventStart, eventEnd)
	}

	return candidates, true, nil
}

// selectRuleWindows выбирает правила на день: разовые правила на дату,
// если они есть, полностью заменяют еженедельные (не объединяются с ними)
func (s *AvailabilityService) selectRuleWindows(ctx context.Context, date time.Time, user domain.User) ([]ruleWindow, bool, error) {
	overrides, err := s.storagePort.GetOverrideRules(ctx, user.ID, date)
	if err != nil {
		return nil, false, &domain.DataAccessError{
			Op:  fmt.Sprintf("fetching schedule for user %d", user.ID),
			Err: err,
		}
	}

	if len(overrides) > 0 {
		windows := make([]ruleWindow, 0, len(overrides))
		for _, rule := range overrides {
			windows = append(windows, ruleWindow{start: rule.StartTime, end: rule.EndTime})
		}
		return windows, true, nil
	}

	weekly, err := s.storagePort.GetWeeklyRules(ctx, user.ID, utils.WeekdayIndex(date))
	if err != nil {
		return nil, false, &domain.DataAccessError{
			Op:  fmt.Sprintf("fetching schedule for user %d", user.ID),
			Err: err,
		}
	}

	if len(weekly) == 0 {
		return nil, false, nil
	}

	windows := make([]ruleWindow, 0, len(weekly))
	for _, rule := range weekly {
		windows = append(windows, ruleWindow{start: rule.StartTime, end: rule.EndTime})
	}
	return windows, true, nil
}
