package create_booking

import (
	"context"
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
	"github.com/zarechye/booking-engine/internal/integrations/crm"
	"github.com/zarechye/booking-engine/internal/usecase/calculate_price"
	"github.com/zarechye/booking-engine/internal/usecase/check_availability"
)

// AvailabilityChecker интерфейс проверки доступности категории
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error)
}

// PriceCalculator интерфейс расчета стоимости проживания
type PriceCalculator interface {
	Execute(ctx context.Context, req *calculate_price.Request) (*calculate_price.Response, error)
}

// ContactsRepository интерфейс работы с контактами CRM
type ContactsRepository interface {
	FindContactByPhone(ctx context.Context, phone string) (*crm.Contact, error)
	CreateContact(ctx context.Context, input crm.ContactInput) (string, error)
}

// DealsRepository интерфейс создания сделок CRM
type DealsRepository interface {
	CreateDeal(ctx context.Context, input crm.DealInput) (string, error)
}

// RoomCatalog интерфейс реестра категорий номерного фонда
type RoomCatalog interface {
	Get(code string) (*domain.RoomType, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
