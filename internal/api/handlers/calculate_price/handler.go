package calculate_price

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zarechye/booking-engine/internal/api/handlers"
	calculatePrice "github.com/zarechye/booking-engine/internal/usecase/calculate_price"
)

const (
	msgMissingCheckIn   = "дата заезда обязательна"
	msgMissingCheckOut  = "дата выезда обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStay      = "некорректный период проживания"
	msgRoomTypeNotFound = "категория номеров не найдена"
	msgCRMUnavailable   = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeCode}/price
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD), roomId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeCode := vars["roomTypeCode"]

	// Извлекаем даты из query параметров
	checkInStr := r.URL.Query().Get("checkIn")
	if checkInStr == "" {
		h.logger.Warn("GET /room-types/{code}/price - Missing check-in date")
		handlers.RespondBadRequest(w, msgMissingCheckIn)
		return
	}

	checkOutStr := r.URL.Query().Get("checkOut")
	if checkOutStr == "" {
		h.logger.Warn("GET /room-types/{code}/price - Missing check-out date")
		handlers.RespondBadRequest(w, msgMissingCheckOut)
		return
	}

	roomID := r.URL.Query().Get("roomId")

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(roomTypeCode, roomID, checkInStr, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /room-types/{code}/price - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{code}/price - Invalid stay period: room_type=%s, error=%v",
				roomTypeCode, err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, calculatePrice.ErrRoomTypeNotFound):
			h.logger.Warn("GET /room-types/{code}/price - Room type not found: room_type=%s", roomTypeCode)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, calculatePrice.ErrCRMUnavailable):
			h.logger.Error("GET /room-types/{code}/price - CRM unavailable: room_type=%s, error=%v",
				roomTypeCode, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCRMUnavailable)

		default:
			h.logger.Error("GET /room-types/{code}/price - Failed to calculate price: room_type=%s, error=%v",
				roomTypeCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /room-types/{code}/price - Price calculated: room_type=%s, nights=%d, total=%.2f",
		roomTypeCode, result.Nights, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
