package get_rooms_info

import (
	"fmt"

	"github.com/zarechye/booking-engine/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomTypeCode == "" {
		return fmt.Errorf("%w: roomTypeCode is required", ErrInvalidInput)
	}

	if req.Year < domain.MinCalendarYear || req.Year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be in range %d..%d", ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be in range 1..12", ErrInvalidInput)
	}

	return nil
}
