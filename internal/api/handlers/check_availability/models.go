package check_availability

import (
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	checkAvailability "github.com/zarechye/booking-engine/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	RoomID    string `json:"roomId,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeCode, roomID, checkInStr, checkOutStr string) (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RoomTypeCode: roomTypeCode,
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		RoomID:    resp.RoomID,
	}
}
