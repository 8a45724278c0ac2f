package calculate_price

import (
	"fmt"

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

	// Ограничение сверху держит число помесячных запросов к CRM в разумных рамках
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay cannot be longer than %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
