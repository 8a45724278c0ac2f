package catalog

import (
	"fmt"

	"github.com/zarechye/booking-engine/internal/domain"
)

// Catalog статический реестр категорий номерного фонда.
// Заполняется один раз при старте процесса из конфигурации и далее не
// изменяется, поэтому безопасен для конкурентного чтения без блокировок.
type Catalog struct {
	types map[string]domain.RoomType
	order []string // коды категорий в порядке конфигурации
}

// New создает каталог из списка категорий и валидирует тарифные параметры.
// Порядок категорий сохраняется: он определяет порядок подзапросов в
// пакетном обращении к CRM.
func New(types []domain.RoomType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, ErrNoRoomTypes
	}

	c := &Catalog{
		types: make(map[string]domain.RoomType, len(types)),
		order: make([]string, 0, len(types)),
	}

	for _, rt := range types {
		if rt.Code == "" {
			return nil, fmt.Errorf("%w: empty room type code", ErrInvalidRoomType)
		}
		if rt.Label == "" {
			return nil, fmt.Errorf("%w: room type %s has no label", ErrInvalidRoomType, rt.Code)
		}
		if rt.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: room type %s has non-positive base price", ErrInvalidRoomType, rt.Code)
		}
		if rt.OccupancyMultiplier <= 1 {
			return nil, fmt.Errorf("%w: room type %s has occupancy multiplier <= 1", ErrInvalidRoomType, rt.Code)
		}
		if _, exists := c.types[rt.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, rt.Code)
		}

		c.types[rt.Code] = rt
		c.order = append(c.order, rt.Code)
	}

	return c, nil
}

// Get возвращает категорию по коду поля.
func (c *Catalog) Get(code string) (*domain.RoomType, bool) {
	rt, ok := c.types[code]
	if !ok {
		return nil, false
	}
	return &rt, true
}

// Contains сообщает, известна ли категория каталогу.
func (c *Catalog) Contains(code string) bool {
	_, ok := c.types[code]
	return ok
}

// Codes возвращает коды всех категорий в порядке конфигурации.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.order))
	copy(codes, c.order)
	return codes
}

// All возвращает все категории в порядке конфигурации.
func (c *Catalog) All() []domain.RoomType {
	all := make([]domain.RoomType, 0, len(c.order))
	for _, code := range c.order {
		all = append(all, c.types[code])
	}
	return all
}
