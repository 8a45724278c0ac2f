package check_availability

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

	// Период полуоткрытый [заезд, выезд): выезд строго позже заезда
	if domain.Nights(req.CheckIn, req.CheckOut) < domain.MinStayNights {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	return nil
}
