package domain

// Business validation constants
const (
	MinStayNights = 1
	MaxStayNights = 365 // более длинные заезды оформляются администратором напрямую в CRM

	MinCalendarYear = 2000
	MaxCalendarYear = 2100

	MaxGuestNameLength = 150
	MaxCommentsLength  = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BooleanRoomID идентификатор единственного неявного номера булевой категории.
// Вся усадьба, баня и банкетный зал бронируются целиком, поэтому CRM хранит их
// как булевы поля сделки, а движок представляет одним номером с этим ID.
const BooleanRoomID = "1"
