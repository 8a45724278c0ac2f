package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
)

// FetchMonth возвращает брони, затрагивающие указанный месяц, сгруппированные
// по кодам категорий. Если categoryCode задан, выполняется один запрос
// crm.deal.list по этой категории, иначе один пакетный запрос batch с
// подзапросом на каждую известную категорию.
func (c *Client) FetchMonth(ctx context.Context, year int, month time.Month, categoryCode *string) (map[string][]domain.Reservation, error) {
	first, last := domain.MonthBounds(year, month)

	if categoryCode != nil {
		reservations, err := c.listDeals(ctx, *categoryCode, first, last)
		if err != nil {
			return nil, err
		}
		return map[string][]domain.Reservation{*categoryCode: reservations}, nil
	}

	return c.batchDeals(ctx, first, last)
}

func (c *Client) listDeals(ctx context.Context, categoryCode string, first, last time.Time) ([]domain.Reservation, error) {
	payload := dealListRequest{
		Filter: c.monthFilter(categoryCode, first, last),
		Select: c.dealSelect(categoryCode),
	}

	var deals []rawDeal
	if err := c.call(ctx, "crm.deal.list", payload, &deals); err != nil {
		return nil, err
	}

	return c.reservations(deals, categoryCode), nil
}

func (c *Client) batchDeals(ctx context.Context, first, last time.Time) (map[string][]domain.Reservation, error) {
	cmd := make(map[string]string, len(c.categories))
	for i, code := range c.categories {
		cmd[batchAlias(i)] = c.dealListCmd(code, first, last)
	}

	var result batchResult
	if err := c.call(ctx, "batch", batchRequest{Halt: 0, Cmd: cmd}, &result); err != nil {
		return nil, err
	}

	// Переключаем ответ с псевдонимов подзапросов обратно на коды категорий.
	// Ошибка любого подзапроса делает весь вызов неуспешным: иначе вызывающий
	// не отличит «нет броней» от «категория не опрошена».
	byCategory := make(map[string][]domain.Reservation, len(c.categories))
	var failures []string
	for i, code := range c.categories {
		alias := batchAlias(i)

		if subErr, ok := result.ResultError[alias]; ok {
			failures = append(failures, fmt.Sprintf("%s: %s: %s", code, subErr.ErrorCode, subErr.ErrorDescription))
			continue
		}

		raw, ok := result.Result[alias]
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: missing from batch response", code))
			continue
		}

		var deals []rawDeal
		if err := json.Unmarshal(raw, &deals); err != nil {
			failures = append(failures, fmt.Sprintf("%s: undecodable result: %v", code, err))
			continue
		}

		byCategory[code] = c.reservations(deals, code)
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBatchFailed, strings.Join(failures, "; "))
	}

	return byCategory, nil
}

// CreateDeal создает сделку бронирования и возвращает ее идентификатор.
func (c *Client) CreateDeal(ctx context.Context, input DealInput) (string, error) {
	fields := map[string]interface{}{
		"TITLE":            input.Title,
		"CONTACT_ID":       input.ContactID,
		input.RoomTypeCode: input.RoomID,
		c.fields.StayFrom:  input.CheckIn.Format(domain.DateFormat),
		c.fields.StayTo:    input.CheckOut.Format(domain.DateFormat),
		"OPPORTUNITY":      input.Opportunity,
		"ORIGIN_ID":        input.OriginID,
	}
	if input.Comments != "" {
		fields["COMMENTS"] = input.Comments
	}

	var id json.Number
	if err := c.call(ctx, "crm.deal.add", addRequest{Fields: fields}, &id); err != nil {
		return "", err
	}

	c.log.Info("CRM deal created: id=%s, origin_id=%s", id.String(), input.OriginID)
	return id.String(), nil
}

// dealSelect возвращает перечень полей сделки для выборки по категории.
func (c *Client) dealSelect(categoryCode string) []string {
	return []string{"ID", "COMMENTS", c.fields.StayFrom, c.fields.StayTo, categoryCode}
}

// monthFilter собирает фильтр «бронь затрагивает месяц»: заезд не позже
// последнего дня месяца, выезд не раньше первого, номер категории назначен.
func (c *Client) monthFilter(categoryCode string, first, last time.Time) map[string]string {
	return map[string]string{
		"<=" + c.fields.StayFrom: last.Format(domain.DateFormat),
		">=" + c.fields.StayTo:   first.Format(domain.DateFormat),
		"!" + categoryCode:       "",
	}
}

// dealListCmd кодирует подзапрос crm.deal.list в строку команды batch.
func (c *Client) dealListCmd(categoryCode string, first, last time.Time) string {
	params := url.Values{}
	for k, v := range c.monthFilter(categoryCode, first, last) {
		params.Set("filter["+k+"]", v)
	}
	for _, field := range c.dealSelect(categoryCode) {
		params.Add("select[]", field)
	}
	return "crm.deal.list?" + params.Encode()
}

func batchAlias(i int) string {
	return fmt.Sprintf("cat%d", i)
}
