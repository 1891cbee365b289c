package timeranges

import "errors"

var (
	// ErrRangeNotFound возвращается, когда интервал не найден
	ErrRangeNotFound = errors.New("time range not found")

	// ErrRangeInUse возвращается при попытке удалить интервал,
	// в окнах которого есть активные заказы
	ErrRangeInUse = errors.New("time range has windows with active orders")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
