package check_availability

import "time"

// Request модель запроса проверки доступности
type Request struct {
	RoomTypeCode string    // Код категории (код пользовательского поля сделки в CRM)
	RoomID       string    // ID конкретного номера; если пусто, проверяется любой номер категории
	CheckIn      time.Time // Дата заезда
	CheckOut     time.Time // Дата выезда
}

// Response модель ответа проверки доступности
type Response struct {
	Available bool   // Есть ли свободный номер на весь период
	RoomID    string // Первый свободный номер (пусто, если доступности нет)
}
