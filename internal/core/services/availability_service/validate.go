package availability_service

import (
	"time"

	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/utils"
)

// Максимальная длина запрошенного диапазона в днях
const maxRangeDays = 31

// validateQuery выполняет проверки запроса в фиксированном порядке,
// останавливаясь на первой неудачной. Данные при этом еще не читаются,
// кроме проверки целевой таймзоны по базе таймзон.
func (s *AvailabilityService) validateQuery(query domain.AvailabilityQuery) (time.Time, time.Time, error) {
	if len(query.UserIDs) == 0 {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "User IDs list cannot be empty"}
	}

	startDate, err := utils.ParseRequestDate(query.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "Invalid start_date format. Use DD-MM-YYYY format"}
	}

	endDate, err := utils.ParseRequestDate(query.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "Invalid end_date format. Use DD-MM-YYYY format"}
	}

	if err := s.timezonePort.Validate(query.Timezone); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "End date must be after start date"}
	}

	if endDate.Sub(startDate) > maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "Date range cannot exceed 31 days"}
	}

	// Диапазон может начинаться не раньше вчерашнего дня
	yesterday := utils.StartCurrentDay(time.Now().UTC()).AddDate(0, 0, -1)
	if startDate.Before(yesterday) {
		return time.Time{}, time.Time{}, &domain.ValidationError{Message: "Start date cannot be in the past"}
	}

	return startDate, endDate, nil
}
