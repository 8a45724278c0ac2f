package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zarechye/booking-engine/internal/domain"
)

// Client клиент REST API CRM (Битрикс24). Все методы выполняют один или
// несколько HTTP вызовов к вебхуку; состояние между вызовами не хранится.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fields     Fields
	categories []string
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента CRM. Список категорий задает
// состав и порядок подзапросов пакетной выборки. metrics может быть nil,
// если сбор метрик выключен.
func NewClient(baseURL string, timeout time.Duration, fields Fields, categories []string, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		fields:     fields,
		categories: append([]string(nil), categories...),
		log:        log,
		metrics:    metrics,
	}
}

// call выполняет метод REST API и раскладывает result-секцию ответа в out.
func (c *Client) call(ctx context.Context, method string, payload, out interface{}) error {
	start := time.Now()
	err := c.doCall(ctx, method, payload, out)
	if c.metrics != nil {
		c.metrics.ObserveCRMRequest(method, err, time.Since(start))
	}
	return err
}

func (c *Client) doCall(ctx context.Context, method string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов: REST API сообщает об ошибках полем error в
	// теле ответа, поэтому для клиентских статусов тело все равно разбираем
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		// Тело содержит код ошибки API
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if envelope.ErrorCode != "" {
		return fmt.Errorf("%w: %s: %s", ErrAPI, envelope.ErrorCode, envelope.ErrorDescription)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("%w: failed to decode result: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}

// reservations преобразует сырые сделки в доменные брони. Сделки с
// нечитаемыми датами сохраняются с нулевыми датами: проверки пересечения
// такие брони игнорируют, а календарь отбрасывает их отдельно.
func (c *Client) reservations(deals []rawDeal, categoryCode string) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(deals))
	for _, d := range deals {
		out = append(out, domain.Reservation{
			ID:           stringValue(d["ID"]),
			RoomTypeCode: categoryCode,
			RoomID:       roomValue(d[categoryCode]),
			CheckIn:      c.dealDate(d, c.fields.StayFrom),
			CheckOut:     c.dealDate(d, c.fields.StayTo),
			Comments:     stringValue(d["COMMENTS"]),
		})
	}
	return out
}

func (c *Client) dealDate(d rawDeal, field string) time.Time {
	s, ok := d[field].(string)
	if !ok || s == "" {
		return time.Time{}
	}

	t, err := parseDate(s)
	if err != nil {
		c.log.Warn("CRM deal %s: failed to parse %s=%q: %v", stringValue(d["ID"]), field, s, err)
		return time.Time{}
	}
	return t
}

// parseDate разбирает дату сделки: CRM отдает даты в ISO8601 с таймзоной,
// в старых сделках встречается и короткий формат без времени.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return domain.DateOnly(t), nil
	}

	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(t), nil
}

// stringValue приводит значение поля сделки к строке: идентификаторы могут
// приходить числами, незаполненные поля как false.
func stringValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		if x {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// roomValue нормализует значение поля категории: состояние «номер не
// назначен» кодируется в CRM пустой строкой, нулем или false.
func roomValue(v interface{}) string {
	s := stringValue(v)
	if s == "0" {
		return ""
	}
	return s
}
