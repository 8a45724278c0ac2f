package calculate_price

import (
	"context"
	"fmt"

	"github.com/zarechye/booking-engine/internal/domain"
	"github.com/zarechye/booking-engine/pkg/ptr"
)

// UseCase use case для расчета стоимости проживания
type UseCase struct {
	reservations ReservationsProvider
	catalog      RoomCatalog
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservations ReservationsProvider, catalog RoomCatalog, logger Logger) *UseCase {
	return &UseCase{
		reservations: reservations,
		catalog:      catalog,
		logger:       logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: room_type=%s, room=%q, check_in=%s, check_out=%s",
		req.RoomTypeCode, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Тариф категории
	roomType, ok := uc.catalog.Get(req.RoomTypeCode)
	if !ok {
		uc.logger.Warn("CalculatePrice: unknown room type %s", req.RoomTypeCode)
		return nil, ErrRoomTypeNotFound
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	nights := domain.Nights(checkIn, checkOut)

	// 3. Загружаем брони категории: один запрос на каждый месяц проживания
	reservations := make([]domain.Reservation, 0)
	for _, ym := range domain.MonthsSpanned(checkIn, checkOut) {
		byCategory, err := uc.reservations.FetchMonth(ctx, ym.Year, ym.Month, ptr.Ptr(req.RoomTypeCode))
		if err != nil {
			uc.logger.Error("CalculatePrice: failed to fetch reservations for %d-%02d: %v", ym.Year, ym.Month, err)
			return nil, fmt.Errorf("%w: failed to fetch reservations: %v", ErrCRMUnavailable, err)
		}
		reservations = append(reservations, byCategory[req.RoomTypeCode]...)
	}

	// 4. Отбираем брони, пересекающиеся с периодом проживания
	overlapping := gatherOverlapping(reservations, req.RoomID, checkIn, checkOut)

	// 5. Классифицируем каждую ночь и суммируем тариф
	total := priceStay(roomType, checkIn, nights, overlapping)

	uc.logger.Info("CalculatePrice: total=%.2f, nights=%d, room_type=%s", total, nights, req.RoomTypeCode)

	return &Response{
		Total:  total,
		Nights: nights,
	}, nil
}
