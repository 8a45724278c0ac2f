package create_booking

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда категория не найдена
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found")

	// ErrRoomUnavailable возвращается, когда на запрошенный период нет свободных номеров
	ErrRoomUnavailable = errors.New("create_booking: no free rooms for the requested dates")

	// ErrDateInPast возвращается, когда дата заезда уже прошла
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCRMUnavailable возвращается, когда CRM недоступна или отвечает ошибкой
	ErrCRMUnavailable = errors.New("create_booking: crm is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
