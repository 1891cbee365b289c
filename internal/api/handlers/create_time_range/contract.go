package create_time_range

import (
	"context"

	createRange "github.com/postbureau/PB-MeetingService/internal/usecase/create_range"
)

// CreateRangeUseCase интерфейс use case создания интервала
type CreateRangeUseCase interface {
	Execute(ctx context.Context, req *createRange.Request) (*createRange.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
