package availability_service

import (
	"time"

	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

// Чистая интервальная алгебра на полуинтервалах [start, end).
// Касание границ пересечением не считается.
func overlaps(start, end, otherStart, otherEnd time.Time) bool {
	return start.Before(otherEnd) && otherStart.Before(end)
}

// discretizeInterval режет непрерывное окно на слоты фиксированной длительности.
// Сетка привязана к началу самого окна, неполный хвост отбрасывается:
// окно длительностью D дает ровно floor(D/duration) слотов.
func discretizeInterval(start, end time.Time, duration time.Duration) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for current := start; !current.Add(duration).After(end); current = current.Add(duration) {
		slots = append(slots, domain.Slot{
			StartTime: current,
			EndTime:   current.Add(duration),
		})
	}
	return slots
}

// removeOverlapping убирает слот целиком, даже если пересечение с блокером частичное
func removeOverlapping(slots []domain.Slot, blockerStart, blockerEnd time.Time) []domain.Slot {
	kept := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if overlaps(slot.StartTime, slot.EndTime, blockerStart, blockerEnd) {
			continue
		}
		kept = append(kept, slot)
	}
	return kept
}
