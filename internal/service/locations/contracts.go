package locations

import (
	"context"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// LocationRepository интерфейс репозитория мест встреч
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	ListAll(ctx context.Context) ([]*domain.Location, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
