package get_rooms_info

import "time"

// Request модель запроса календаря занятости категории за месяц
type Request struct {
	Year         int        // Год календаря
	Month        time.Month // Месяц календаря
	RoomTypeCode string     // Код категории (код пользовательского поля сделки в CRM)
}

// Response модель ответа с календарем занятости
type Response struct {
	Rooms []RoomInfo // Запись на каждый номер категории, включая свободные
}

// RoomInfo занятость одного номера
type RoomInfo struct {
	RoomID         string          // ID номера
	Name           string          // Название номера из CRM
	RoomTypeCode   string          // Код категории
	OccupiedRanges []OccupiedRange // Занятые периоды в порядке выдачи CRM
}

// OccupiedRange один занятый период номера
type OccupiedRange struct {
	ReservationID string    // ID сделки в CRM
	CheckIn       time.Time // Дата заезда
	CheckOut      time.Time // Дата выезда
	Comments      string    // Комментарий менеджера к брони
}
