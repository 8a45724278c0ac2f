package get_rooms_info

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zarechye/booking-engine/internal/api/handlers"
	getRoomsInfo "github.com/zarechye/booking-engine/internal/usecase/get_rooms_info"
)

const (
	msgMissingYear      = "год обязателен"
	msgInvalidYear      = "некорректный год"
	msgMissingMonth     = "месяц обязателен"
	msgInvalidMonth     = "некорректный месяц"
	msgInvalidPeriod    = "некорректный период календаря"
	msgRoomTypeNotFound = "категория номеров не найдена"
	msgCategoryMissing  = "данные по категории отсутствуют в CRM"
	msgCRMUnavailable   = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase GetRoomsInfoUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomsInfoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/{roomTypeCode}/rooms
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeCode := vars["roomTypeCode"]

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /room-types/{code}/rooms - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /room-types/{code}/rooms - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /room-types/{code}/rooms - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /room-types/{code}/rooms - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем use case
	useCaseReq := ToUseCaseRequest(roomTypeCode, year, month)
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getRoomsInfo.ErrInvalidInput):
			h.logger.Warn("GET /room-types/{code}/rooms - Invalid period: room_type=%s, year=%d, month=%d",
				roomTypeCode, year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getRoomsInfo.ErrRoomTypeNotFound):
			h.logger.Warn("GET /room-types/{code}/rooms - Room type not found: room_type=%s", roomTypeCode)
			handlers.RespondNotFound(w, msgRoomTypeNotFound)

		case errors.Is(err, getRoomsInfo.ErrCategoryNotFound):
			h.logger.Warn("GET /room-types/{code}/rooms - Category missing in CRM response: room_type=%s", roomTypeCode)
			handlers.RespondNotFound(w, msgCategoryMissing)

		case errors.Is(err, getRoomsInfo.ErrCRMUnavailable):
			h.logger.Error("GET /room-types/{code}/rooms - CRM unavailable: room_type=%s, error=%v",
				roomTypeCode, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCRMUnavailable)

		default:
			h.logger.Error("GET /room-types/{code}/rooms - Failed to get rooms info: room_type=%s, error=%v",
				roomTypeCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(useCaseReq, result)

	h.logger.Info("GET /room-types/{code}/rooms - Rooms info retrieved: room_type=%s, year=%d, month=%d, rooms_count=%d",
		roomTypeCode, year, month, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
