package crm

import (
	"context"
	"fmt"

	"github.com/zarechye/booking-engine/internal/domain"
)

// Типы пользовательских полей, которыми кодируются категории номерного фонда.
const (
	fieldTypeEnumeration = "enumeration"
	fieldTypeBoolean     = "boolean"
)

// GetRoomField возвращает описание пользовательского поля категории: перечень
// номеров для поля типа enumeration или единственный неделимый объект для
// поля типа boolean (баня, банкетный зал, гостевой дом целиком).
func (c *Client) GetRoomField(ctx context.Context, categoryCode string) (*domain.RoomField, error) {
	payload := fieldListRequest{
		Filter: map[string]string{"FIELD_NAME": categoryCode},
	}

	var found []userField
	if err := c.call(ctx, "crm.deal.userfield.list", payload, &found); err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, categoryCode)
	}

	field := found[0]
	switch field.UserTypeID {
	case fieldTypeEnumeration:
		rooms := make([]domain.Room, 0, len(field.List))
		for _, item := range field.List {
			rooms = append(rooms, domain.Room{
				ID:           item.ID,
				Name:         item.Value,
				RoomTypeCode: categoryCode,
			})
		}
		return domain.NewEnumerationField(rooms), nil

	case fieldTypeBoolean:
		label := field.EditFormLabel
		if label == "" {
			label = field.FieldName
		}
		return domain.NewBooleanField(categoryCode, label), nil

	default:
		return nil, fmt.Errorf("%w: %s has type %q", ErrUnsupportedFieldType, categoryCode, field.UserTypeID)
	}
}
