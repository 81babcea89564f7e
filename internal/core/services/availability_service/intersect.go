package availability_service

import (
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

type slotKey struct {
	start int64
	end   int64
}

func keyOf(slot domain.Slot) slotKey {
	return slotKey{
		start: slot.StartTime.UnixNano(),
		end:   slot.EndTime.UnixNano(),
	}
}

// intersectSlotSets - точное пересечение по совпадению обеих границ слота,
// сворачивается слева направо по всем пользователям.
// Слоты из несовпадающих сеток (разные таймзоны/DST) общими не считаются.
func intersectSlotSets(sets [][]domain.Slot) []domain.Slot {
	if len(sets) == 0 {
		return []domain.Slot{}
	}

	common := make(map[slotKey]domain.Slot, len(sets[0]))
	for _, slot := range sets[0] {
		common[keyOf(slot)] = slot
	}

	for _, set := range sets[1:] {
		next := make(map[slotKey]domain.Slot, len(set))
		for _, slot := range set {
			key := keyOf(slot)
			if existing, exists := common[key]; exists {
				next[key] = existing
			}
		}
		common = next
	}

	result := make([]domain.Slot, 0, len(common))
	for _, slot := range common {
		result = append(result, slot)
	}
	return result
}
