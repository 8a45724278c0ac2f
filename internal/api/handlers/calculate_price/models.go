package calculate_price

import (
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	calculatePrice "github.com/zarechye/booking-engine/internal/usecase/calculate_price"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeCode, roomID, checkInStr, checkOutStr string) (*calculatePrice.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	return &calculatePrice.Request{
		RoomTypeCode: roomTypeCode,
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceResponse {
	return &PriceResponse{
		Nights: resp.Nights,
		Total:  resp.Total,
	}
}
