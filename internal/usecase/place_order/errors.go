package place_order

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не зарегистрирован
	ErrUserNotFound = errors.New("place_order: user not found")

	// ErrWindowNotFound возвращается, когда временное окно не найдено
	ErrWindowNotFound = errors.New("place_order: window not found")

	// ErrWindowUnavailable возвращается, когда в окне нет свободных мест
	ErrWindowUnavailable = errors.New("place_order: window is not available")

	// ErrQuotaExceeded возвращается при превышении лимита одновременных
	// заказов пользователя
	ErrQuotaExceeded = errors.New("place_order: active orders quota exceeded")

	// ErrConflict возвращается, когда сериализуемая транзакция не прошла
	// после всех повторов из-за конкурентных заказов
	ErrConflict = errors.New("place_order: too much contention, try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("place_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("place_order: internal error")
)
