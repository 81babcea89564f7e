package domain

import "fmt"

// Таксономия ошибок сервиса. На HTTP-границе каждая категория
// маппится в свой статус-код, см. контроллер.

// ValidationError - некорректный или не проходящий по политикам ввод
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError - часть или все запрошенные пользователи не найдены.
// Partial означает, что кто-то из списка все же существует.
type NotFoundError struct {
	Message    string
	MissingIDs []int64
	Partial    bool
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// TimezoneError - идентификатор таймзоны не найден в базе таймзон.
// UserID заполняется, когда ошибка относится к таймзоне пользователя,
// а не к целевой таймзоне запроса.
type TimezoneError struct {
	Timezone string
	UserID   int64
}

func (e *TimezoneError) Error() string {
	if e.UserID != 0 {
		return fmt.Sprintf("Invalid timezone for user %d: %s", e.UserID, e.Timezone)
	}
	return "Invalid timezone provided"
}

// DataAccessError - ошибка провайдера данных, оборачивается без ретраев
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("Database error while %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// InternalError - все непредвиденное; наружу уходит только общий текст
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("An unexpected error occurred: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
