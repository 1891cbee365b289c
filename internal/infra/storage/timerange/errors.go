package timerange

import "errors"

var (
	// ErrRangeNotFound возвращается, когда диапазон не найден
	ErrRangeNotFound = errors.New("timerange.repository: time range not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timerange.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timerange.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timerange.repository: failed to scan row")
)
