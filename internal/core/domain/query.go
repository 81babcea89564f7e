package domain

// AvailabilityQuery - запрос на поиск общих свободных слотов.
// Даты в формате DD-MM-YYYY, таймзона - идентификатор IANA.
// Валидация выполняется в сервисе, а не при биндинге.
type AvailabilityQuery struct {
	UserIDs   []int64 `json:"user_ids"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Timezone  string  `json:"timezone"`
}
