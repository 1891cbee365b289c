package manage_locations

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// LocationsService интерфейс сервиса мест встреч
type LocationsService interface {
	Create(ctx context.Context, name, address string, isCustom, createdByAdmin bool) (*domain.Location, error)
	ListAll(ctx context.Context) ([]*domain.Location, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
