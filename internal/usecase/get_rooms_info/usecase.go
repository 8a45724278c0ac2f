package get_rooms_info

import (
	"context"
	"errors"
	"fmt"

	crmClient "github.com/zarechye/booking-engine/internal/integrations/crm"
	"github.com/zarechye/booking-engine/pkg/ptr"
)

// UseCase use case для построения календаря занятости категории
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

// Execute строит календарь занятости категории за месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomsInfo: room_type=%s, year=%d, month=%d", req.RoomTypeCode, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomsInfo: validation failed: %v", err)
		return nil, err
	}

	// 2. Категория должна быть известна тарифному каталогу
	if _, ok := uc.catalog.Get(req.RoomTypeCode); !ok {
		uc.logger.Warn("GetRoomsInfo: unknown room type %s", req.RoomTypeCode)
		return nil, ErrRoomTypeNotFound
	}

	// 3. Перечень номеров категории из описания поля в CRM
	field, err := uc.roomFields.GetRoomField(ctx, req.RoomTypeCode)
	if err != nil {
		if errors.Is(err, crmClient.ErrFieldNotFound) {
			uc.logger.Warn("GetRoomsInfo: room field %s not found in CRM", req.RoomTypeCode)
			return nil, ErrRoomTypeNotFound
		}
		uc.logger.Error("GetRoomsInfo: failed to get room field %s: %v", req.RoomTypeCode, err)
		return nil, fmt.Errorf("%w: failed to get room field: %v", ErrCRMUnavailable, err)
	}

	// 4. Брони категории, затрагивающие месяц
	byCategory, err := uc.reservations.FetchMonth(ctx, req.Year, req.Month, ptr.Ptr(req.RoomTypeCode))
	if err != nil {
		uc.logger.Error("GetRoomsInfo: failed to fetch reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch reservations: %v", ErrCRMUnavailable, err)
	}

	reservations, ok := byCategory[req.RoomTypeCode]
	if !ok {
		uc.logger.Error("GetRoomsInfo: category %s is missing from CRM response", req.RoomTypeCode)
		return nil, ErrCategoryNotFound
	}

	// 5. Календарь: запись на каждый номер, даже без броней
	rooms := make([]RoomInfo, 0, len(field.Rooms))
	index := make(map[string]int, len(field.Rooms))
	for i, room := range field.Rooms {
		rooms = append(rooms, RoomInfo{
			RoomID:         room.ID,
			Name:           room.Name,
			RoomTypeCode:   room.RoomTypeCode,
			OccupiedRanges: []OccupiedRange{},
		})
		index[room.ID] = i
	}

	// 6. Раскладываем брони по номерам, сохраняя порядок выдачи CRM
	for _, r := range reservations {
		if !r.HasDates() {
			uc.logger.Info("GetRoomsInfo: reservation %s has no stay dates, skipped", r.ID)
			continue
		}

		// Брони с неназначенным или неизвестным номером в календарь не попадают
		i, ok := index[r.RoomID]
		if !ok {
			continue
		}

		rooms[i].OccupiedRanges = append(rooms[i].OccupiedRanges, OccupiedRange{
			ReservationID: r.ID,
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			Comments:      r.Comments,
		})
	}

	uc.logger.Info("GetRoomsInfo: built calendar for %d rooms: room_type=%s, reservations=%d",
		len(rooms), req.RoomTypeCode, len(reservations))

	return &Response{Rooms: rooms}, nil
}
