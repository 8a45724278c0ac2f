package crm

import "errors"

var (
	// ErrInternal внутренняя ошибка клиента (сеть, сборка запроса)
	ErrInternal = errors.New("crm client: internal error")
	// ErrInvalidResponse CRM вернула неразбираемый или неожиданный ответ
	ErrInvalidResponse = errors.New("crm client: invalid response")
	// ErrAPI CRM вернула ошибку уровня REST API
	ErrAPI = errors.New("crm client: api error")
	// ErrBatchFailed часть подзапросов пакетного вызова завершилась ошибкой
	ErrBatchFailed = errors.New("crm client: batch sub-query failed")
	// ErrFieldNotFound пользовательское поле сделки не найдено в CRM
	ErrFieldNotFound = errors.New("crm client: user field not found")
	// ErrUnsupportedFieldType пользовательское поле имеет неподдерживаемый тип
	ErrUnsupportedFieldType = errors.New("crm client: unsupported user field type")
	// ErrContactNotFound контакт не найден
	ErrContactNotFound = errors.New("crm client: contact not found")
)
