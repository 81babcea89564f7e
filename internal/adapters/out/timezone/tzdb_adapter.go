package timezone

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/common-availability-slots-generator/internal/config"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/ports/out"
)

// TzdbAdapter разрешает идентификаторы IANA через системную базу таймзон.
// Разрешенные *time.Location держим в LRU, чтобы не ходить в tzdata
// на каждое правило. Результаты вычислений слотов здесь не кэшируются.
type TzdbAdapter struct {
	cache  *lru.Cache[string, *time.Location]
	logger out.LoggerPort
}

func NewTzdbAdapter(cfg *config.Config, logger out.LoggerPort) (*TzdbAdapter, error) {
	cache, err := lru.New[string, *time.Location](cfg.Timezones.CacheSize)
	if err != nil {
		logger.Error("timezone.cache.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Timezones.CacheSize,
		})
		return nil, err
	}

	return &TzdbAdapter{
		cache:  cache,
		logger: logger.WithModule("TzdbAdapter"),
	}, nil
}

func (a *TzdbAdapter) location(tz string) (*time.Location, error) {
	if loc, exists := a.cache.Get(tz); exists {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		a.logger.Debug("timezone.lookup.failed", out.LogFields{
			"timezone": tz,
		})
		return nil, &domain.TimezoneError{Timezone: tz}
	}

	a.cache.Add(tz, loc)
	return loc, nil
}

func (a *TzdbAdapter) Validate(tz string) error {
	_, err := a.location(tz)
	return err
}

func (a *TzdbAdapter) LocalToInstant(date time.Time, clock time.Time, tz string) (time.Time, error) {
	loc, err := a.location(tz)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, second := clock.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, clock.Nanosecond(), loc), nil
}

func (a *TzdbAdapter) InstantToLocal(instant time.Time, tz string) (time.Time, error) {
	loc, err := a.location(tz)
	if err != nil {
		return time.Time{}, err
	}

	return instant.In(loc), nil
}
