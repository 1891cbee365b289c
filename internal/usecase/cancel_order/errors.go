package cancel_order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("cancel_order: order not found")

	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("cancel_order: user not found")

	// ErrAccessDenied возвращается при попытке отменить чужой заказ
	ErrAccessDenied = errors.New("cancel_order: access denied")

	// ErrAlreadyFinished возвращается, когда заказ уже в терминальном
	// статусе и отмена невозможна
	ErrAlreadyFinished = errors.New("cancel_order: order is already finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_order: internal error")
)
