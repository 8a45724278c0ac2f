package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarechye/booking-engine/internal/domain"
)

func validTypes() []domain.RoomType {
	return []domain.RoomType{
		{Code: "UF_CRM_ROOM_STANDARD", Label: "Стандарт", BasePrice: 5000, OccupancyMultiplier: 1.2},
		{Code: "UF_CRM_ROOM_LUX", Label: "Люкс", BasePrice: 9000, OccupancyMultiplier: 1.3},
		{Code: "UF_CRM_ROOM_SAUNA", Label: "Баня", BasePrice: 3000, OccupancyMultiplier: 1.5},
	}
}

func TestNew(t *testing.T) {
	c, err := New(validTypes())
	require.NoError(t, err)

	rt, ok := c.Get("UF_CRM_ROOM_LUX")
	require.True(t, ok)
	assert.Equal(t, "Люкс", rt.Label)
	assert.Equal(t, 9000.0, rt.BasePrice)

	_, ok = c.Get("UF_CRM_ROOM_UNKNOWN")
	assert.False(t, ok)
	assert.False(t, c.Contains("UF_CRM_ROOM_UNKNOWN"))
	assert.True(t, c.Contains("UF_CRM_ROOM_SAUNA"))

	// Порядок конфигурации сохраняется
	assert.Equal(t, []string{"UF_CRM_ROOM_STANDARD", "UF_CRM_ROOM_LUX", "UF_CRM_ROOM_SAUNA"}, c.Codes())
	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "UF_CRM_ROOM_STANDARD", all[0].Code)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]domain.RoomType) []domain.RoomType
		wantErr error
	}{
		{
			name:    "empty catalog",
			mutate:  func([]domain.RoomType) []domain.RoomType { return nil },
			wantErr: ErrNoRoomTypes,
		},
		{
			name: "empty code",
			mutate: func(ts []domain.RoomType) []domain.RoomType {
				ts[0].Code = ""
				return ts
			},
			wantErr: ErrInvalidRoomType,
		},
		{
			name: "missing label",
			mutate: func(ts []domain.RoomType) []domain.RoomType {
				ts[1].Label = ""
				return ts
			},
			wantErr: ErrInvalidRoomType,
		},
		{
			name: "non-positive base price",
			mutate: func(ts []domain.RoomType) []domain.RoomType {
				ts[0].BasePrice = 0
				return ts
			},
			wantErr: ErrInvalidRoomType,
		},
		{
			name: "multiplier must exceed 1",
			mutate: func(ts []domain.RoomType) []domain.RoomType {
				ts[2].OccupancyMultiplier = 1
				return ts
			},
			wantErr: ErrInvalidRoomType,
		},
		{
			name: "duplicate code",
			mutate: func(ts []domain.RoomType) []domain.RoomType {
				ts[1].Code = ts[0].Code
				return ts
			},
			wantErr: ErrDuplicateCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(validTypes()))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
