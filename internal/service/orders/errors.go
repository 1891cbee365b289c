package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFeedbackExists возвращается при повторной обратной связи по заказу
	ErrFeedbackExists = errors.New("feedback already exists for this order")

	// ErrFeedbackNotAllowed возвращается, когда по заказу ещё нельзя
	// оставить обратную связь (встреча не состоялась)
	ErrFeedbackNotAllowed = errors.New("feedback is not allowed for this order")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
