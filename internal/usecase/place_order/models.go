package place_order

import (
	"time"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// Request модель запроса на создание заказа
type Request struct {
	TelegramID      int64 // Telegram ID пользователя
	MeetingWindowID int64 // Окно встречи

	// Место встречи: ссылка на справочник или произвольный текст
	LocationID     *int64
	CustomLocation *string

	// Открытки трёх фиксированных категорий
	CardType1Count int
	CardType2Count int
	CardType3Count int
	CardType1Desc  string
	CardType2Desc  string
	CardType3Desc  string

	// Параметры доставки
	IsAnonymous       bool
	DeliveryDelayDays int
	RecipientName     *string
	DeliveryAddress   *string
	ClientName        *string
}

// Response модель ответа с созданным заказом
type Response struct {
	ID              int64
	UserID          int64
	MeetingWindowID int64
	Status          string

	WindowStart types.TimeString
	WindowEnd   types.TimeString

	CardType1Count int
	CardType2Count int
	CardType3Count int

	CreatedAt time.Time
}
