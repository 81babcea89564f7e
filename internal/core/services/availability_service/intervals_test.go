package availability_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/suchimauz/common-availability-slots-generator/internal/core/domain"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	t.Run("Partial Overlap", func(t *testing.T) {
		assert.True(t, overlaps(
			day.Add(9*time.Hour), day.Add(10*time.Hour),
			day.Add(9*time.Hour+30*time.Minute), day.Add(11*time.Hour),
		))
	})

	t.Run("Containment", func(t *testing.T) {
		assert.True(t, overlaps(
			day.Add(9*time.Hour), day.Add(12*time.Hour),
			day.Add(10*time.Hour), day.Add(11*time.Hour),
		))
	})

	t.Run("Touching Boundaries Do Not Overlap", func(t *testing.T) {
		assert.False(t, overlaps(
			day.Add(9*time.Hour), day.Add(10*time.Hour),
			day.Add(10*time.Hour), day.Add(11*time.Hour),
		))
		assert.False(t, overlaps(
			day.Add(10*time.Hour), day.Add(11*time.Hour),
			day.Add(9*time.Hour), day.Add(10*time.Hour),
		))
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.False(t, overlaps(
			day.Add(9*time.Hour), day.Add(10*time.Hour),
			day.Add(14*time.Hour), day.Add(15*time.Hour),
		))
	})
}

func TestDiscretizeInterval(t *testing.T) {
	day := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	duration := 30 * time.Minute

	t.Run("Whole Window Divides Evenly", func(t *testing.T) {
		slots := discretizeInterval(day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute), duration)

		assert.Len(t, slots, 3)
		assert.Equal(t, day.Add(9*time.Hour), slots[0].StartTime)
		assert.Equal(t, day.Add(9*time.Hour+30*time.Minute), slots[0].EndTime)
		assert.Equal(t, day.Add(10*time.Hour), slots[2].StartTime)
	})

	t.Run("Tail Shorter Than Slot Is Dropped", func(t *testing.T) {
		slots := discretizeInterval(day.Add(9*time.Hour), day.Add(9*time.Hour+50*time.Minute), duration)

		assert.Len(t, slots, 1)
		assert.Equal(t, day.Add(9*time.Hour+30*time.Minute), slots[0].EndTime)
	})

	t.Run("Window Shorter Than Slot", func(t *testing.T) {
		slots := discretizeInterval(day.Add(9*time.Hour), day.Add(9*time.Hour+25*time.Minute), duration)
		assert.Empty(t, slots)
	})

	t.Run("Grid Anchored To Window Start", func(t *testing.T) {
		slots := discretizeInterval(day.Add(9*time.Hour+10*time.Minute), day.Add(10*time.Hour+10*time.Minute), duration)

		assert.Len(t, slots, 2)
		assert.Equal(t, day.Add(9*time.Hour+10*time.Minute), slots[0].StartTime)
		assert.Equal(t, day.Add(9*time.Hour+40*time.Minute), slots[1].StartTime)
	})

	t.Run("Contiguous Slots Share Boundaries", func(t *testing.T) {
		slots := discretizeInterval(day.Add(9*time.Hour), day.Add(11*time.Hour), duration)

		assert.Len(t, slots, 4)
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime)
		}
	})
}

func TestRemoveOverlapping(t *testing.T) {
	day := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)
	slots := discretizeInterval(day.Add(9*time.Hour), day.Add(11*time.Hour), 30*time.Minute)

	t.Run("One Minute Overlap Removes Whole Slot", func(t *testing.T) {
		kept := removeOverlapping(slots, day.Add(9*time.Hour+29*time.Minute), day.Add(9*time.Hour+31*time.Minute))

		assert.Len(t, kept, 2)
		assert.Equal(t, day.Add(10*time.Hour), kept[0].StartTime)
	})

	t.Run("Blocker Touching Boundary Keeps Slot", func(t *testing.T) {
		kept := removeOverlapping(slots, day.Add(11*time.Hour), day.Add(12*time.Hour))
		assert.Len(t, kept, 4)
	})

	t.Run("Blocker Covering Everything", func(t *testing.T) {
		kept := removeOverlapping(slots, day.Add(8*time.Hour), day.Add(12*time.Hour))
		assert.Empty(t, kept)
	})

	t.Run("Empty Input", func(t *testing.T) {
		kept := removeOverlapping([]domain.Slot{}, day.Add(9*time.Hour), day.Add(10*time.Hour))
		assert.Empty(t, kept)
	})
}
