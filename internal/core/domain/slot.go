package domain

import "time"

// SlotTimeFormat - 12-часовой формат без ведущего нуля, строчные am/pm
const SlotTimeFormat = "3:04pm"

// Slot - полуинтервал [StartTime, EndTime) в целевой таймзоне запроса
type Slot struct {
	StartTime time.Time `json:"begin"`
	EndTime   time.Time `json:"end"`
}

// FormatRange рендерит слот в 12-часовом формате без ведущего нуля,
// например "9:30am-10:00am"
func (s Slot) FormatRange() string {
	return s.StartTime.Format(SlotTimeFormat) + "-" + s.EndTime.Format(SlotTimeFormat)
}
