package crm

import (
	"encoding/json"
	"time"
)

// Fields коды пользовательских полей сделки с датами проживания
type Fields struct {
	StayFrom string
	StayTo   string
}

// Contact контакт CRM
type Contact struct {
	ID   string `json:"ID"`
	Name string `json:"NAME"`
}

// ContactInput данные для создания контакта
type ContactInput struct {
	Name  string
	Phone string
	Email string
}

// DealInput данные для создания сделки бронирования
type DealInput struct {
	Title        string
	ContactID    string
	RoomTypeCode string
	RoomID       string
	CheckIn      time.Time
	CheckOut     time.Time
	Comments     string
	Opportunity  float64
	OriginID     string
}

// apiEnvelope общий конверт ответа REST API
type apiEnvelope struct {
	Result           json.RawMessage `json:"result"`
	ErrorCode        string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// apiError ошибка подзапроса пакетного вызова
type apiError struct {
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// batchRequest тело запроса метода batch
type batchRequest struct {
	Halt int               `json:"halt"`
	Cmd  map[string]string `json:"cmd"`
}

// batchResult result-секция ответа метода batch: результаты и ошибки
// подзапросов, ключованные псевдонимами из cmd
type batchResult struct {
	Result      map[string]json.RawMessage `json:"result"`
	ResultError map[string]apiError        `json:"result_error"`
}

// dealListRequest тело запроса crm.deal.list
type dealListRequest struct {
	Filter map[string]string `json:"filter"`
	Select []string          `json:"select"`
}

// contactListRequest тело запроса crm.contact.list
type contactListRequest struct {
	Filter map[string]string `json:"filter"`
	Select []string          `json:"select"`
}

// fieldListRequest тело запроса crm.deal.userfield.list
type fieldListRequest struct {
	Filter map[string]string `json:"filter"`
}

// addRequest тело запросов crm.contact.add и crm.deal.add
type addRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

// rawDeal сделка в сыром виде: значения полей приходят строками,
// незаполненные поля как false
type rawDeal map[string]interface{}

// userField описание пользовательского поля сделки
type userField struct {
	ID            string          `json:"ID"`
	FieldName     string          `json:"FIELD_NAME"`
	UserTypeID    string          `json:"USER_TYPE_ID"`
	EditFormLabel string          `json:"EDIT_FORM_LABEL"`
	List          []userFieldItem `json:"LIST"`
}

// userFieldItem элемент списка значений поля типа enumeration
type userFieldItem struct {
	ID    string `json:"ID"`
	Value string `json:"VALUE"`
}
