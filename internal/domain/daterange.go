package domain

import "time"

// Overlaps сообщает, пересекаются ли диапазоны дат [aStart, aEnd) и [bStart, bEnd).
// Оба диапазона полуоткрытые: день заезда входит в диапазон, день выезда не входит.
// Стыкующиеся брони поэтому не конфликтуют: выезд [10.01, 12.01) и заезд
// [12.01, 14.01) в один и тот же день пересечением не считаются.
//
// Это единственное место в репозитории, где сравниваются границы диапазонов.
// Все проверки доступности, тарификации и календаря обязаны вызывать эту
// функцию, а не повторять сравнение на месте: расхождение граничных условий
// в разных местах ведет к классическим ошибкам систем бронирования.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ContainsDay сообщает, попадает ли календарный день day в диапазон [start, end).
// День интерпретируется как диапазон [day, day+1) и проверяется через Overlaps,
// чтобы граничные условия не дублировались.
func ContainsDay(day, start, end time.Time) bool {
	return Overlaps(day, day.AddDate(0, 0, 1), start, end)
}

// DateOnly нормализует момент времени к полуночи UTC его календарной даты.
// Движок оперирует только календарными датами; нормализация к UTC исключает
// сюрпризы перевода часов при арифметике с сутками.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights возвращает количество ночей в диапазоне [checkIn, checkOut).
// Для checkIn >= checkOut возвращает 0.
func Nights(checkIn, checkOut time.Time) int {
	from := DateOnly(checkIn)
	to := DateOnly(checkOut)
	if !from.Before(to) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// YearMonth календарный месяц конкретного года.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthBounds возвращает первый и последний календарный день месяца.
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// MonthsSpanned возвращает месяцы, на которые приходятся ночи диапазона
// [checkIn, checkOut), в хронологическом порядке без дубликатов.
// Последняя ночь приходится на день перед выездом, поэтому месяц даты
// выезда попадает в результат только если в нём есть хотя бы одна ночь.
func MonthsSpanned(checkIn, checkOut time.Time) []YearMonth {
	from := DateOnly(checkIn)
	to := DateOnly(checkOut)
	if !from.Before(to) {
		return nil
	}

	lastNight := to.AddDate(0, 0, -1)
	months := make([]YearMonth, 0, 2)

	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(lastNight) {
		months = append(months, YearMonth{Year: cur.Year(), Month: cur.Month()})
		cur = cur.AddDate(0, 1, 0)
	}

	return months
}
