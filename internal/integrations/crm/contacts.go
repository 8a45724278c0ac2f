package crm

import (
	"context"
	"encoding/json"
	"fmt"
)

// FindContactByPhone ищет контакт по номеру телефона. Если совпадений
// несколько, возвращается первое, так же поступает и сама CRM при ручном
// привязывании сделки.
func (c *Client) FindContactByPhone(ctx context.Context, phone string) (*Contact, error) {
	payload := contactListRequest{
		Filter: map[string]string{"PHONE": phone},
		Select: []string{"ID", "NAME"},
	}

	var found []Contact
	if err := c.call(ctx, "crm.contact.list", payload, &found); err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: phone=%s", ErrContactNotFound, phone)
	}

	return &found[0], nil
}

// CreateContact создает контакт и возвращает его идентификатор.
func (c *Client) CreateContact(ctx context.Context, input ContactInput) (string, error) {
	fields := map[string]interface{}{
		"NAME": input.Name,
		"PHONE": []map[string]string{
			{"VALUE": input.Phone, "VALUE_TYPE": "WORK"},
		},
	}
	if input.Email != "" {
		fields["EMAIL"] = []map[string]string{
			{"VALUE": input.Email, "VALUE_TYPE": "WORK"},
		}
	}

	var id json.Number
	if err := c.call(ctx, "crm.contact.add", addRequest{Fields: fields}, &id); err != nil {
		return "", err
	}

	c.log.Info("CRM contact created: id=%s", id.String())
	return id.String(), nil
}
