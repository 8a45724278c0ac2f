package calculate_price

import (
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
)

// gatherOverlapping отбирает брони, пересекающиеся с периодом проживания.
// Если roomID задан, учитываются только брони этого номера.
func gatherOverlapping(reservations []domain.Reservation, roomID string, checkIn, checkOut time.Time) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if roomID != "" && r.RoomID != roomID {
			continue
		}
		if r.OverlapsRange(checkIn, checkOut) {
			out = append(out, r)
		}
	}
	return out
}

// priceStay считает стоимость проживания поночно: свободная ночь идет по
// базовому тарифу категории, ночь с хотя бы одной попадающей на нее бронью
// идет по повышенному.
func priceStay(roomType *domain.RoomType, checkIn time.Time, nights int, reservations []domain.Reservation) float64 {
	var total float64
	for i := 0; i < nights; i++ {
		day := checkIn.AddDate(0, 0, i)

		occupied := false
		for _, r := range reservations {
			if r.CoversDay(day) {
				occupied = true
				break
			}
		}

		total += roomType.NightPrice(occupied)
	}
	return total
}
