package calculate_price

import "time"

// Request модель запроса расчета стоимости проживания
type Request struct {
	RoomTypeCode string    // Код категории (код пользовательского поля сделки в CRM)
	RoomID       string    // ID конкретного номера; если пусто, расчет идет по всей категории
	CheckIn      time.Time // Дата заезда
	CheckOut     time.Time // Дата выезда
}

// Response модель ответа с рассчитанной стоимостью
type Response struct {
	Total  float64 // Итоговая стоимость за все ночи
	Nights int     // Количество ночей проживания
}
