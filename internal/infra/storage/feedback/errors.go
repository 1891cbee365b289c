package feedback

import "errors"

var (
	// ErrFeedbackExists возвращается при повторной попытке оставить
	// обратную связь по одному и тому же заказу
	ErrFeedbackExists = errors.New("feedback.repository: feedback already exists for order")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("feedback.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("feedback.repository: failed to execute query")
)
