package check_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/zarechye/booking-engine/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp  *checkAvailability.Response
	err   error
	calls []*checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(useCase *fakeUseCase) *mux.Router {
	router := mux.NewRouter()
	handler := NewHandler(useCase, nopLogger{})
	router.HandleFunc("/api/v1/room-types/{roomTypeCode}/availability", handler.Handle).Methods(http.MethodGet)
	return router
}

func TestHandle_Success(t *testing.T) {
	useCase := &fakeUseCase{resp: &checkAvailability.Response{Available: true, RoomID: "55"}}
	router := newRouter(useCase)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/room-types/UF_CRM_ROOM_STANDARD/availability?checkIn=2025-06-10&checkOut=2025-06-14&roomId=55", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "55", resp.RoomID)

	// Параметры запроса доходят до use case без изменений
	require.Len(t, useCase.calls, 1)
	assert.Equal(t, "UF_CRM_ROOM_STANDARD", useCase.calls[0].RoomTypeCode)
	assert.Equal(t, "55", useCase.calls[0].RoomID)
	assert.Equal(t, "2025-06-10", useCase.calls[0].CheckIn.Format("2006-01-02"))
	assert.Equal(t, "2025-06-14", useCase.calls[0].CheckOut.Format("2006-01-02"))
}

func TestHandle_MissingParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing check-in", query: "checkOut=2025-06-14"},
		{name: "missing check-out", query: "checkIn=2025-06-10"},
		{name: "broken check-in", query: "checkIn=10.06.2025&checkOut=2025-06-14"},
		{name: "broken check-out", query: "checkIn=2025-06-10&checkOut=tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := &fakeUseCase{}
			router := newRouter(useCase)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/room-types/UF_CRM_ROOM_STANDARD/availability?"+tt.query, nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, useCase.calls)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid stay", err: checkAvailability.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "room type not found", err: checkAvailability.ErrRoomTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "crm unavailable", err: checkAvailability.ErrCRMUnavailable, wantStatus: http.StatusBadGateway},
		{name: "internal error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/room-types/UF_CRM_ROOM_STANDARD/availability?checkIn=2025-06-10&checkOut=2025-06-14", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
