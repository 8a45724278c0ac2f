package check_availability

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда категория не найдена
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCRMUnavailable возвращается, когда не удалось получить данные из CRM
	ErrCRMUnavailable = errors.New("crm is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
