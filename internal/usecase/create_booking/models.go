package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomTypeCode string    // Код категории (код пользовательского поля сделки в CRM)
	RoomID       string    // ID конкретного номера; если пусто, подбирается любой свободный номер категории
	CheckIn      time.Time // Дата заезда
	CheckOut     time.Time // Дата выезда
	GuestName    string    // Имя гостя
	GuestPhone   string    // Телефон гостя (ключ поиска контакта в CRM)
	GuestEmail   string    // Email гостя (опционально)
	Comments     string    // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	DealID     string  // ID созданной сделки в CRM
	BookingRef string  // Внешний ключ брони (попадает в ORIGIN_ID сделки)
	RoomID     string  // Забронированный номер
	Total      float64 // Итоговая стоимость проживания
	Nights     int     // Количество ночей
}
