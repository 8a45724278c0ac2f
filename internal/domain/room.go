package domain

// RoomType represents a category of the guesthouse inventory together with
// its pricing profile. The category is identified by the code of the deal
// user field that holds the room assignment in the CRM.
type RoomType struct {
	Code                string  // код поля категории, например "UF_CRM_ROOM_STANDARD"
	Label               string  // отображаемое название категории
	BasePrice           float64 // базовая цена за ночь
	OccupancyMultiplier float64 // множитель за занятую ночь, строго больше 1
}

// NightPrice returns the price of a single night depending on occupancy.
func (t *RoomType) NightPrice(occupied bool) float64 {
	if occupied {
		return t.BasePrice * t.OccupancyMultiplier
	}
	return t.BasePrice
}

// Room represents a single bookable room within a category.
type Room struct {
	ID           string
	Name         string
	RoomTypeCode string
}

// RoomFieldKind вид пользовательского поля категории в CRM.
type RoomFieldKind string

const (
	// FieldEnumeration поле-перечисление: категория состоит из нескольких
	// номеров, каждый представлен элементом списка со своим идентификатором и названием
	FieldEnumeration RoomFieldKind = "enumeration"

	// FieldBoolean булево поле: категория бронируется целиком и представляется
	// единственным неявным номером с ID BooleanRoomID
	FieldBoolean RoomFieldKind = "boolean"
)

// RoomField результат разбора пользовательского поля категории.
// Оба варианта поля приводятся к единому виду упорядоченного списка
// номеров, поэтому потребители не различают перечисления и булевы поля.
// Порядок Rooms повторяет порядок элементов перечисления в CRM и определяет,
// какой номер будет выбран первым в режиме "любой свободный".
type RoomField struct {
	Kind  RoomFieldKind
	Rooms []Room
}

// NewEnumerationField создает RoomField для поля-перечисления.
func NewEnumerationField(rooms []Room) *RoomField {
	return &RoomField{Kind: FieldEnumeration, Rooms: rooms}
}

// NewBooleanField создает RoomField для булевого поля: единственный неявный
// номер с ID BooleanRoomID, названный по метке поля.
func NewBooleanField(roomTypeCode, label string) *RoomField {
	return &RoomField{
		Kind: FieldBoolean,
		Rooms: []Room{
			{ID: BooleanRoomID, Name: label, RoomTypeCode: roomTypeCode},
		},
	}
}

// FindRoom возвращает номер по идентификатору.
func (f *RoomField) FindRoom(id string) (*Room, bool) {
	for i := range f.Rooms {
		if f.Rooms[i].ID == id {
			return &f.Rooms[i], true
		}
	}
	return nil, false
}
