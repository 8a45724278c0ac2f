package get_rooms_info

import (
	"context"

	getRoomsInfo "github.com/zarechye/booking-engine/internal/usecase/get_rooms_info"
)

type GetRoomsInfoUseCase interface {
	Execute(ctx context.Context, req *getRoomsInfo.Request) (*getRoomsInfo.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
