package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zarechye/booking-engine/internal/domain"
	crmClient "github.com/zarechye/booking-engine/internal/integrations/crm"
	"github.com/zarechye/booking-engine/internal/usecase/calculate_price"
	"github.com/zarechye/booking-engine/internal/usecase/check_availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	availability AvailabilityChecker
	pricing      PriceCalculator
	contacts     ContactsRepository
	deals        DealsRepository
	catalog      RoomCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityChecker,
	pricing PriceCalculator,
	contacts ContactsRepository,
	deals DealsRepository,
	catalog RoomCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		pricing:      pricing,
		contacts:     contacts,
		deals:        deals,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room_type=%s, check_in=%s, check_out=%s",
		req.RoomTypeCode, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Заезд задним числом не принимается
	if isDateInPast(req.CheckIn, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: check-in date %s is in the past", req.CheckIn.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Категория должна быть известна тарифному каталогу
	roomType, ok := uc.catalog.Get(req.RoomTypeCode)
	if !ok {
		uc.logger.Warn("CreateBooking: unknown room type %s", req.RoomTypeCode)
		return nil, ErrRoomTypeNotFound
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	// 4. Подбираем свободный номер на запрошенный период
	avail, err := uc.checkAvailability(ctx, req)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		uc.logger.Info("CreateBooking: no free rooms: room_type=%s, check_in=%s, check_out=%s",
			req.RoomTypeCode, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		return nil, ErrRoomUnavailable
	}

	// 5. Считаем стоимость проживания для подобранного номера
	price, err := uc.calculatePrice(ctx, req, avail.RoomID)
	if err != nil {
		return nil, err
	}

	// 6. Находим контакт гостя по телефону или создаем новый
	contactID, err := uc.ensureContact(ctx, req)
	if err != nil {
		return nil, err
	}

	// 7. Создаем сделку в CRM
	bookingRef := uuid.NewString()
	dealID, err := uc.deals.CreateDeal(ctx, crmClient.DealInput{
		Title: fmt.Sprintf("Бронирование: %s, %s - %s",
			roomType.Label, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat)),
		ContactID:    contactID,
		RoomTypeCode: req.RoomTypeCode,
		RoomID:       avail.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Comments:     req.Comments,
		Opportunity:  price.Total,
		OriginID:     bookingRef,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create deal: %v", err)
		return nil, fmt.Errorf("%w: failed to create deal: %v", ErrCRMUnavailable, err)
	}

	uc.logger.Info("CreateBooking: successfully created deal %s: booking_ref=%s, room=%s, total=%.2f",
		dealID, bookingRef, avail.RoomID, price.Total)

	return &Response{
		DealID:     dealID,
		BookingRef: bookingRef,
		RoomID:     avail.RoomID,
		Total:      price.Total,
		Nights:     price.Nights,
	}, nil
}

// checkAvailability проверяет доступность через use case проверки
// и приводит его ошибки к ошибкам бронирования
func (uc *UseCase) checkAvailability(ctx context.Context, req *Request) (*check_availability.Response, error) {
	resp, err := uc.availability.Execute(ctx, &check_availability.Request{
		RoomTypeCode: req.RoomTypeCode,
		RoomID:       req.RoomID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		if errors.Is(err, check_availability.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		if errors.Is(err, check_availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if errors.Is(err, check_availability.ErrCRMUnavailable) {
			return nil, fmt.Errorf("%w: failed to check availability: %v", ErrCRMUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to check availability: %v", err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}
	return resp, nil
}

// calculatePrice считает стоимость через use case расчета
// и приводит его ошибки к ошибкам бронирования
func (uc *UseCase) calculatePrice(ctx context.Context, req *Request, roomID string) (*calculate_price.Response, error) {
	resp, err := uc.pricing.Execute(ctx, &calculate_price.Request{
		RoomTypeCode: req.RoomTypeCode,
		RoomID:       roomID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
	})
	if err != nil {
		if errors.Is(err, calculate_price.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		if errors.Is(err, calculate_price.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if errors.Is(err, calculate_price.ErrCRMUnavailable) {
			return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrCRMUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}
	return resp, nil
}

// ensureContact находит контакт гостя по номеру телефона или создает новый
func (uc *UseCase) ensureContact(ctx context.Context, req *Request) (string, error) {
	contact, err := uc.contacts.FindContactByPhone(ctx, req.GuestPhone)
	if err == nil {
		uc.logger.Info("CreateBooking: found existing contact %s", contact.ID)
		return contact.ID, nil
	}
	if !errors.Is(err, crmClient.ErrContactNotFound) {
		uc.logger.Error("CreateBooking: failed to find contact: %v", err)
		return "", fmt.Errorf("%w: failed to find contact: %v", ErrCRMUnavailable, err)
	}

	contactID, err := uc.contacts.CreateContact(ctx, crmClient.ContactInput{
		Name:  req.GuestName,
		Phone: req.GuestPhone,
		Email: req.GuestEmail,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create contact: %v", err)
		return "", fmt.Errorf("%w: failed to create contact: %v", ErrCRMUnavailable, err)
	}

	uc.logger.Info("CreateBooking: created contact %s", contactID)
	return contactID, nil
}
