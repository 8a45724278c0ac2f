package catalog

import "errors"

var (
	// ErrNoRoomTypes возвращается, когда в конфигурации нет ни одной категории
	ErrNoRoomTypes = errors.New("catalog: no room types configured")

	// ErrDuplicateCode возвращается при повторяющемся коде категории
	ErrDuplicateCode = errors.New("catalog: duplicate room type code")

	// ErrInvalidRoomType возвращается при некорректных тарифных параметрах категории
	ErrInvalidRoomType = errors.New("catalog: invalid room type")
)
