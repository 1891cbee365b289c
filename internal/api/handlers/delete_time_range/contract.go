package delete_time_range

import "context"

// TimeRangesService интерфейс сервиса интервалов доступности
type TimeRangesService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
