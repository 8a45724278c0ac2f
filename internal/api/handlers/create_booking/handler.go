package create_booking

import (
	"errors"
	"net/http"

	"github.com/zarechye/booking-engine/internal/api/handlers"
	createBooking "github.com/zarechye/booking-engine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidBooking     = "некорректные данные бронирования"
	msgDateInPast         = "дата заезда уже прошла"
	msgRoomTypeNotFound   = "категория номеров не найдена"
	msgRoomUnavailable    = "нет свободных номеров на выбранные даты"
	msgCRMUnavailable     = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking data: room_type=%s, error=%v",
				req.RoomTypeCode, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Check-in date in past: room_type=%s, check_in=%s",
				req.RoomTypeCode, req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrRoomTypeNotFound):
			h.logger.Warn("POST /bookings - Room type not found: room_type=%s", req.RoomTypeCode)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - No free rooms: room_type=%s, check_in=%s, check_out=%s",
				req.RoomTypeCode, req.CheckIn, req.CheckOut)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrCRMUnavailable):
			h.logger.Error("POST /bookings - CRM unavailable: room_type=%s, error=%v",
				req.RoomTypeCode, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCRMUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_type=%s, error=%v",
				req.RoomTypeCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: deal=%s, booking_ref=%s, room=%s",
		result.DealID, result.BookingRef, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
