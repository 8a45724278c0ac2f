package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	crmClient "github.com/zarechye/booking-engine/internal/integrations/crm"
	"github.com/zarechye/booking-engine/pkg/ptr"
)

// UseCase use case для проверки доступности категории на период проживания
type UseCase struct {
	reservations ReservationsProvider
	roomFields   RoomFieldProvider
	catalog      RoomCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationsProvider,
	roomFields RoomFieldProvider,
	catalog RoomCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		roomFields:   roomFields,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room_type=%s, room=%q, check_in=%s, check_out=%s",
		req.RoomTypeCode, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Категория должна быть известна тарифному каталогу
	if _, ok := uc.catalog.Get(req.RoomTypeCode); !ok {
		uc.logger.Warn("CheckAvailability: unknown room type %s", req.RoomTypeCode)
		return nil, ErrRoomTypeNotFound
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	// 3. Загружаем брони категории за месяц заезда
	byCategory, err := uc.reservations.FetchMonth(ctx, checkIn.Year(), checkIn.Month(), ptr.Ptr(req.RoomTypeCode))
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to fetch reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch reservations: %v", ErrCRMUnavailable, err)
	}
	reservations := byCategory[req.RoomTypeCode]

	// 4. Определяем кандидатов: запрошенный номер или все номера категории
	candidates, err := uc.candidateRooms(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Первый номер без пересечений по датам и есть ответ
	for _, roomID := range candidates {
		if roomIsFree(roomID, req.RoomTypeCode, reservations, checkIn, checkOut) {
			uc.logger.Info("CheckAvailability: room %s is free: room_type=%s", roomID, req.RoomTypeCode)
			return &Response{Available: true, RoomID: roomID}, nil
		}
	}

	uc.logger.Info("CheckAvailability: no free rooms: room_type=%s, check_in=%s, check_out=%s",
		req.RoomTypeCode, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
	return &Response{Available: false}, nil
}

// candidateRooms возвращает номера, среди которых ищется свободный.
// Для запроса без конкретного номера перечень и порядок задает описание
// поля категории в CRM.
func (uc *UseCase) candidateRooms(ctx context.Context, req *Request) ([]string, error) {
	if req.RoomID != "" {
		return []string{req.RoomID}, nil
	}

	field, err := uc.roomFields.GetRoomField(ctx, req.RoomTypeCode)
	if err != nil {
		if errors.Is(err, crmClient.ErrFieldNotFound) {
			uc.logger.Warn("CheckAvailability: room field %s not found in CRM", req.RoomTypeCode)
			return nil, ErrRoomTypeNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room field %s: %v", req.RoomTypeCode, err)
		return nil, fmt.Errorf("%w: failed to get room field: %v", ErrCRMUnavailable, err)
	}

	ids := make([]string, 0, len(field.Rooms))
	for _, room := range field.Rooms {
		ids = append(ids, room.ID)
	}
	return ids, nil
}

// roomIsFree сообщает, свободен ли номер на весь период [checkIn, checkOut).
func roomIsFree(roomID, roomTypeCode string, reservations []domain.Reservation, checkIn, checkOut time.Time) bool {
	for _, r := range reservations {
		if r.RoomID != roomID || r.RoomTypeCode != roomTypeCode {
			continue
		}
		if r.OverlapsRange(checkIn, checkOut) {
			return false
		}
	}
	return true
}
