package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySlotsMarshalJSON(t *testing.T) {
	t.Run("Preserves Insertion Order", func(t *testing.T) {
		// Лексикографический порядок ключей обратный хронологическому
		daySlots := NewDaySlots()
		daySlots.Add("30-09-2026", []string{"9:00am-9:30am"})
		daySlots.Add("01-10-2026", []string{"10:00am-10:30am", "10:30am-11:00am"})

		data, err := json.Marshal(daySlots)

		require.NoError(t, err)
		assert.Equal(t, `{"30-09-2026":["9:00am-9:30am"],"01-10-2026":["10:00am-10:30am","10:30am-11:00am"]}`, string(data))
	})

	t.Run("Empty Result Is Empty Object", func(t *testing.T) {
		data, err := json.Marshal(NewDaySlots())

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("Repeated Add Replaces Without Duplicating Key", func(t *testing.T) {
		daySlots := NewDaySlots()
		daySlots.Add("01-10-2026", []string{"9:00am-9:30am"})
		daySlots.Add("01-10-2026", []string{"2:00pm-2:30pm"})

		assert.Equal(t, 1, daySlots.Len())
		slots, exists := daySlots.Get("01-10-2026")
		require.True(t, exists)
		assert.Equal(t, []string{"2:00pm-2:30pm"}, slots)
	})
}
