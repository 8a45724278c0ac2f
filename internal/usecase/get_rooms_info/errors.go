package get_rooms_info

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда категория не найдена
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrCategoryNotFound возвращается, когда категория отсутствует в ответе CRM
	ErrCategoryNotFound = errors.New("category is missing from crm response")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCRMUnavailable возвращается, когда не удалось получить данные из CRM
	ErrCRMUnavailable = errors.New("crm is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
