package availability_service

import (
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

// Длительность дискретного слота фиксирована, в минутах
const SlotDurationMinutes = 30

type AvailabilityService struct {
	storagePort  out.StoragePort
	timezonePort out.TimezonePort
	logger       out.LoggerPort
}

func NewAvailabilityService(
	storagePort out.StoragePort,
	timezonePort out.TimezonePort,
	logger out.LoggerPort,
) *AvailabilityService {
	return &AvailabilityService{
		storagePort:  storagePort,
		timezonePort: timezonePort,
		logger:       logger.WithModule("AvailabilityService"),
	}
}
