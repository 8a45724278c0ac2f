package check_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarechye/booking-engine/internal/catalog"
	"github.com/zarechye/booking-engine/internal/domain"
	crmClient "github.com/zarechye/booking-engine/internal/integrations/crm"
)

const standardField = "UF_CRM_ROOM_STANDARD"

type fetchCall struct {
	year  int
	month time.Month
	code  *string
}

type fakeReservations struct {
	byCategory map[string][]domain.Reservation
	err        error
	calls      []fetchCall
}

func (f *fakeReservations) FetchMonth(_ context.Context, year int, month time.Month, code *string) (map[string][]domain.Reservation, error) {
	f.calls = append(f.calls, fetchCall{year: year, month: month, code: code})
	if f.err != nil {
		return nil, f.err
	}
	return f.byCategory, nil
}

type fakeRoomFields struct {
	field *domain.RoomField
	err   error
}

func (f *fakeRoomFields) GetRoomField(context.Context, string) (*domain.RoomField, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.field, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.RoomType{
		{Code: standardField, Label: "Стандарт", BasePrice: 5000, OccupancyMultiplier: 1.2},
	})
	require.NoError(t, err)
	return c
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func reservation(id, roomID string, checkIn, checkOut time.Time) domain.Reservation {
	return domain.Reservation{
		ID:           id,
		RoomTypeCode: standardField,
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}
}

func threeRooms() *domain.RoomField {
	return domain.NewEnumerationField([]domain.Room{
		{ID: "55", Name: "Номер 1", RoomTypeCode: standardField},
		{ID: "56", Name: "Номер 2", RoomTypeCode: standardField},
		{ID: "57", Name: "Номер 3", RoomTypeCode: standardField},
	})
}

func TestExecute_SpecificRoomWithoutReservations(t *testing.T) {
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		RoomID:       "55",
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "55", resp.RoomID)

	// Брони загружаются одним запросом за месяц заезда по своей категории
	require.Len(t, reservations.calls, 1)
	assert.Equal(t, 2025, reservations.calls[0].year)
	assert.Equal(t, time.January, reservations.calls[0].month)
	require.NotNil(t, reservations.calls[0].code)
	assert.Equal(t, standardField, *reservations.calls[0].code)
}

func TestExecute_PicksFirstFreeRoom(t *testing.T) {
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {
			reservation("101", "55", date(2025, 1, 9), date(2025, 1, 12)),
			reservation("102", "56", date(2025, 1, 11), date(2025, 1, 15)),
		}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{field: threeRooms()}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, "57", resp.RoomID)
}

func TestExecute_NoFreeRooms(t *testing.T) {
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {
			reservation("101", "55", date(2025, 1, 1), date(2025, 1, 31)),
			reservation("102", "56", date(2025, 1, 1), date(2025, 1, 31)),
			reservation("103", "57", date(2025, 1, 1), date(2025, 1, 31)),
		}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{field: threeRooms()}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.RoomID)
}

func TestExecute_BackToBackStaysDoNotConflict(t *testing.T) {
	// Выезд 12-го и заезд 12-го делят один календарный день, но не ночь
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {
			reservation("101", "55", date(2025, 1, 10), date(2025, 1, 12)),
		}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		RoomID:       "55",
		CheckIn:      date(2025, 1, 12),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_SpecificRoomBlocked(t *testing.T) {
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {
			reservation("101", "55", date(2025, 1, 13), date(2025, 1, 20)),
		}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		RoomID:       "55",
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_ReservationsOfOtherRoomsDoNotBlock(t *testing.T) {
	reservations := &fakeReservations{
		byCategory: map[string][]domain.Reservation{standardField: {
			reservation("101", "56", date(2025, 1, 10), date(2025, 1, 14)),
			// Бронь без дат не влияет на доступность
			reservation("102", "55", time.Time{}, time.Time{}),
		}},
	}
	uc := NewUseCase(reservations, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		RoomID:       "55",
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "missing room type",
			req: &Request{
				CheckIn:  date(2025, 1, 10),
				CheckOut: date(2025, 1, 14),
			},
		},
		{
			name: "missing dates",
			req: &Request{
				RoomTypeCode: standardField,
			},
		},
		{
			name: "check-out before check-in",
			req: &Request{
				RoomTypeCode: standardField,
				CheckIn:      date(2025, 1, 14),
				CheckOut:     date(2025, 1, 10),
			},
		},
		{
			name: "same-day stay",
			req: &Request{
				RoomTypeCode: standardField,
				CheckIn:      date(2025, 1, 10),
				CheckOut:     date(2025, 1, 10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeReservations{}, &fakeRoomFields{}, testCatalog(t), nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownRoomType(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: "UF_CRM_ROOM_UNKNOWN",
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestExecute_FetchFailure(t *testing.T) {
	reservations := &fakeReservations{err: errors.New("connection refused")}
	uc := NewUseCase(reservations, &fakeRoomFields{}, testCatalog(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		RoomID:       "55",
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	assert.ErrorIs(t, err, ErrCRMUnavailable)
}

func TestExecute_RoomFieldMissingInCRM(t *testing.T) {
	roomFields := &fakeRoomFields{
		err: fmt.Errorf("%w: %s", crmClient.ErrFieldNotFound, standardField),
	}
	uc := NewUseCase(&fakeReservations{}, roomFields, testCatalog(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}

func TestExecute_RoomFieldFailure(t *testing.T) {
	roomFields := &fakeRoomFields{err: errors.New("timeout")}
	uc := NewUseCase(&fakeReservations{}, roomFields, testCatalog(t), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomTypeCode: standardField,
		CheckIn:      date(2025, 1, 10),
		CheckOut:     date(2025, 1, 14),
	})

	assert.ErrorIs(t, err, ErrCRMUnavailable)
}
