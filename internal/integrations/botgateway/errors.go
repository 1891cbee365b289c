package botgateway

import "errors"

var (
	// ErrRecipientNotFound возвращается, когда шлюз не знает такого получателя
	ErrRecipientNotFound = errors.New("botgateway: recipient not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("botgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("botgateway client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что шлюз недоступен и уведомление не доставлено
	ErrServiceDegraded = errors.New("botgateway unavailable: graceful degradation applied")
)
