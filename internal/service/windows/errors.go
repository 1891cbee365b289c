package windows

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("window not found")

	// ErrWindowUnavailable возвращается, когда в окне нет свободных мест
	ErrWindowUnavailable = errors.New("window is not available")

	// ErrQuotaExceeded возвращается при превышении лимита одновременных
	// заказов пользователя
	ErrQuotaExceeded = errors.New("active orders quota exceeded")

	// ErrRangeNotFound возвращается, когда интервал доступности не найден
	ErrRangeNotFound = errors.New("time range not found")

	// ErrWindowNotOccupied возвращается при попытке освободить пустое окно
	ErrWindowNotOccupied = errors.New("window has no bookings to release")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
