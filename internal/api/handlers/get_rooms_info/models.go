package get_rooms_info

import (
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	getRoomsInfo "github.com/zarechye/booking-engine/internal/usecase/get_rooms_info"
)

// RoomsInfoResponse HTTP response model
type RoomsInfoResponse struct {
	RoomTypeCode string     `json:"roomTypeCode"`
	Year         int        `json:"year"`
	Month        int        `json:"month"`
	Rooms        []RoomInfo `json:"rooms"`
}

// RoomInfo занятость одного номера
type RoomInfo struct {
	RoomID         string          `json:"roomId"`
	Name           string          `json:"name"`
	OccupiedRanges []OccupiedRange `json:"occupiedRanges"`
}

// OccupiedRange один занятый период номера
type OccupiedRange struct {
	ReservationID string `json:"reservationId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	Comments      string `json:"comments,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(roomTypeCode string, year, month int) *getRoomsInfo.Request {
	return &getRoomsInfo.Request{
		Year:         year,
		Month:        time.Month(month),
		RoomTypeCode: roomTypeCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *getRoomsInfo.Request, resp *getRoomsInfo.Response) *RoomsInfoResponse {
	rooms := make([]RoomInfo, len(resp.Rooms))
	for i, room := range resp.Rooms {
		ranges := make([]OccupiedRange, len(room.OccupiedRanges))
		for j, occupied := range room.OccupiedRanges {
			ranges[j] = OccupiedRange{
				ReservationID: occupied.ReservationID,
				CheckIn:       occupied.CheckIn.Format(domain.DateFormat),
				CheckOut:      occupied.CheckOut.Format(domain.DateFormat),
				Comments:      occupied.Comments,
			}
		}

		rooms[i] = RoomInfo{
			RoomID:         room.RoomID,
			Name:           room.Name,
			OccupiedRanges: ranges,
		}
	}

	return &RoomsInfoResponse{
		RoomTypeCode: req.RoomTypeCode,
		Year:         req.Year,
		Month:        int(req.Month),
		Rooms:        rooms,
	}
}
