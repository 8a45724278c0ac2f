package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/zarechye/booking-engine/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomTypeCode == "" {
		return fmt.Errorf("%w: roomTypeCode is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	if nights < domain.MinStayNights {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot be longer than %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName cannot be longer than %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.GuestPhone == "" {
		return fmt.Errorf("%w: guestPhone is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Comments) > domain.MaxCommentsLength {
		return fmt.Errorf("%w: comments cannot be longer than %d characters", ErrInvalidInput, domain.MaxCommentsLength)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
