package domain

import (
	"time"

	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// OrderStatus статус заказа
type OrderStatus string

const (
	// StatusPending заказ создан, встреча ещё не состоялась
	StatusPending OrderStatus = "pending"
	// StatusMet встреча состоялась, письмо принято в работу
	StatusMet OrderStatus = "met"
	// StatusDelivered письмо доставлено получателю (терминальный)
	StatusDelivered OrderStatus = "delivered"
	// StatusCancelled заказ отменён (терминальный)
	StatusCancelled OrderStatus = "cancelled"
)

// orderTransitions таблица допустимых переходов статусов
// pending -> met -> delivered, отмена возможна из pending и met
// Из терминальных статусов переходов нет
var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusMet, StatusDelivered, StatusCancelled},
	StatusMet:       {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// CanTransitionTo возвращает true, если переход из s в next допустим
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal возвращает true для терминальных статусов
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive возвращает true для статусов, учитываемых в лимите
// одновременных заказов пользователя
func (s OrderStatus) IsActive() bool {
	return s == StatusPending || s == StatusMet
}

// IsValid возвращает true для известного статуса
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Order заказ открыток, привязанный ровно к одному временному окну
type Order struct {
	ID              int64
	UserID          int64
	MeetingWindowID int64

	// Место встречи: либо ссылка на справочник, либо произвольный текст
	LocationID     *int64
	CustomLocation *string

	// Параметры доставки
	IsAnonymous        bool
	DeliveryDelayDays  int
	TargetDeliveryDate *time.Time
	RecipientName      *string
	DeliveryAddress    *string
	ClientName         *string

	// Открытки трёх фиксированных категорий
	CardType1Count int
	CardType2Count int
	CardType3Count int
	CardType1Desc  string
	CardType2Desc  string
	CardType3Desc  string

	Status          OrderStatus
	CancelledReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если заказ занимает место в окне
func (o *Order) IsActive() bool {
	return o.Status.IsActive()
}

// CanBeCancelled возвращает true, если заказ ещё можно отменить
func (o *Order) CanBeCancelled() bool {
	return o.Status.CanTransitionTo(StatusCancelled)
}

// CategoryCounts возвращает количество открыток по категориям A, B, C
func (o *Order) CategoryCounts() map[CardCategory]int {
	return map[CardCategory]int{
		CategoryA: o.CardType1Count,
		CategoryB: o.CardType2Count,
		CategoryC: o.CardType3Count,
	}
}

// OrderDetails заказ с данными связанных сущностей для отображения
// (пользователь, окно встречи, место)
type OrderDetails struct {
	Order

	TelegramID   int64
	UserFullName string
	Username     *string

	WindowStart types.TimeString
	WindowEnd   types.TimeString

	LocationName    *string
	LocationAddress *string
}
