package create_booking

import (
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	createBooking "github.com/zarechye/booking-engine/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomTypeCode string `json:"roomTypeCode"`
	RoomID       string `json:"roomId,omitempty"`
	CheckIn      string `json:"checkIn"`  // "2025-06-10"
	CheckOut     string `json:"checkOut"` // "2025-06-14"
	GuestName    string `json:"guestName"`
	GuestPhone   string `json:"guestPhone"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	Comments     string `json:"comments,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	DealID     string  `json:"dealId"`
	BookingRef string  `json:"bookingRef"`
	RoomID     string  `json:"roomId"`
	Nights     int     `json:"nights"`
	Total      float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим даты
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomTypeCode: r.RoomTypeCode,
		RoomID:       r.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		GuestName:    r.GuestName,
		GuestPhone:   r.GuestPhone,
		GuestEmail:   r.GuestEmail,
		Comments:     r.Comments,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		DealID:     resp.DealID,
		BookingRef: resp.BookingRef,
		RoomID:     resp.RoomID,
		Nights:     resp.Nights,
		Total:      resp.Total,
	}
}
