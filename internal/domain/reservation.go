package domain

import "time"

// Reservation represents a booked stay fetched from the CRM.
// Reservations are read-only snapshots: the engine never mutates them and
// never caches them across calls.
type Reservation struct {
	ID           string
	RoomTypeCode string    // код поля категории, например "UF_CRM_ROOM_STANDARD"
	RoomID       string    // идентификатор номера внутри категории
	CheckIn      time.Time // дата заезда, входит в диапазон
	CheckOut     time.Time // дата выезда, в диапазон не входит
	Comments     string
}

// OverlapsRange reports whether the reservation intersects [start, end).
func (r *Reservation) OverlapsRange(start, end time.Time) bool {
	return Overlaps(r.CheckIn, r.CheckOut, start, end)
}

// CoversDay reports whether the calendar day is occupied by the reservation.
func (r *Reservation) CoversDay(day time.Time) bool {
	return ContainsDay(day, r.CheckIn, r.CheckOut)
}

// HasDates reports whether both the check-in and check-out dates are present.
func (r *Reservation) HasDates() bool {
	return !r.CheckIn.IsZero() && !r.CheckOut.IsZero()
}
