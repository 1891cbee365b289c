package botgateway

// notifyRequest тело запроса на отправку уведомления
type notifyRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Message    string `json:"message"`
}
