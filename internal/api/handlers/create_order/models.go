package create_order

import (
	"time"

	placeOrder "github.com/postbureau/PB-MeetingService/internal/usecase/place_order"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	MeetingWindowID int64 `json:"meetingWindowId"`

	LocationID     *int64  `json:"locationId,omitempty"`
	CustomLocation *string `json:"customLocation,omitempty"`

	CardType1Count int    `json:"cardType1Count"`
	CardType2Count int    `json:"cardType2Count"`
	CardType3Count int    `json:"cardType3Count"`
	CardType1Desc  string `json:"cardType1Desc,omitempty"`
	CardType2Desc  string `json:"cardType2Desc,omitempty"`
	CardType3Desc  string `json:"cardType3Desc,omitempty"`

	IsAnonymous       bool    `json:"isAnonymous,omitempty"`
	DeliveryDelayDays int     `json:"deliveryDelayDays,omitempty"`
	RecipientName     *string `json:"recipientName,omitempty"`
	DeliveryAddress   *string `json:"deliveryAddress,omitempty"`
	ClientName        *string `json:"clientName,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(telegramID int64) *placeOrder.Request {
	return &placeOrder.Request{
		TelegramID:        telegramID,
		MeetingWindowID:   r.MeetingWindowID,
		LocationID:        r.LocationID,
		CustomLocation:    r.CustomLocation,
		CardType1Count:    r.CardType1Count,
		CardType2Count:    r.CardType2Count,
		CardType3Count:    r.CardType3Count,
		CardType1Desc:     r.CardType1Desc,
		CardType2Desc:     r.CardType2Desc,
		CardType3Desc:     r.CardType3Desc,
		IsAnonymous:       r.IsAnonymous,
		DeliveryDelayDays: r.DeliveryDelayDays,
		RecipientName:     r.RecipientName,
		DeliveryAddress:   r.DeliveryAddress,
		ClientName:        r.ClientName,
	}
}

// CreateOrderResponse созданный заказ в ответе API
type CreateOrderResponse struct {
	ID              int64            `json:"id"`
	MeetingWindowID int64            `json:"meetingWindowId"`
	Status          string           `json:"status"`
	WindowStart     types.TimeString `json:"windowStart"`
	WindowEnd       types.TimeString `json:"windowEnd"`
	CardType1Count  int              `json:"cardType1Count"`
	CardType2Count  int              `json:"cardType2Count"`
	CardType3Count  int              `json:"cardType3Count"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в ответ API
func FromUseCaseResponse(resp *placeOrder.Response) *CreateOrderResponse {
	return &CreateOrderResponse{
		ID:              resp.ID,
		MeetingWindowID: resp.MeetingWindowID,
		Status:          resp.Status,
		WindowStart:     resp.WindowStart,
		WindowEnd:       resp.WindowEnd,
		CardType1Count:  resp.CardType1Count,
		CardType2Count:  resp.CardType2Count,
		CardType3Count:  resp.CardType3Count,
		CreatedAt:       resp.CreatedAt,
	}
}
