package window

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("window.repository: window not found")

	// ErrWindowFull возвращается при попытке занять место в полном окне
	ErrWindowFull = errors.New("window.repository: window is full")

	// ErrNotOccupied возвращается при попытке освободить окно с нулевой
	// занятостью - это ошибка логики вызывающего кода, а не штатная ситуация
	ErrNotOccupied = errors.New("window.repository: window has no bookings to release")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("window.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("window.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("window.repository: failed to scan row")
)
