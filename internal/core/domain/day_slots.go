package domain

import (
	"bytes"
	"encoding/json"
)

// DaySlots - упорядоченная мапа дата -> список отформатированных слотов.
// Обычная go-мапа сериализуется с сортировкой ключей, а ключи DD-MM-YYYY
// лексикографически не совпадают с хронологией, поэтому порядок вставки
// храним отдельно.
type DaySlots struct {
	dates []string
	slots map[string][]string
}

func NewDaySlots() *DaySlots {
	return &DaySlots{
		dates: make([]string, 0),
		slots: make(map[string][]string),
	}
}

func (d *DaySlots) Add(date string, slots []string) {
	if _, exists := d.slots[date]; !exists {
		d.dates = append(d.dates, date)
	}
	d.slots[date] = slots
}

func (d *DaySlots) Get(date string) ([]string, bool) {
	slots, exists := d.slots[date]
	return slots, exists
}

func (d *DaySlots) Dates() []string {
	return d.dates
}

func (d *DaySlots) Len() int {
	return len(d.dates)
}

func (d *DaySlots) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, date := range d.dates {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(date)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(d.slots[date])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
