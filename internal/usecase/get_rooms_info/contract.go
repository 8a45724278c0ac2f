package get_rooms_info

import (
	"context"
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
)

// ReservationsProvider интерфейс поставщика броней из CRM
type ReservationsProvider interface {
	// FetchMonth возвращает брони, затрагивающие месяц, сгруппированные по кодам категорий
	FetchMonth(ctx context.Context, year int, month time.Month, categoryCode *string) (map[string][]domain.Reservation, error)
}

// RoomFieldProvider интерфейс поставщика описаний полей категорий
type RoomFieldProvider interface {
	GetRoomField(ctx context.Context, categoryCode string) (*domain.RoomField, error)
}

// RoomCatalog интерфейс реестра категорий номерного фонда
type RoomCatalog interface {
	Get(code string) (*domain.RoomType, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
