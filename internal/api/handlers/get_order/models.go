package get_order

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// OrderDetailsResponse заказ с данными связанных сущностей в ответе API
type OrderDetailsResponse struct {
	ID              int64  `json:"id"`
	Status          string `json:"status"`
	MeetingWindowID int64  `json:"meetingWindowId"`

	TelegramID   int64   `json:"telegramId"`
	UserFullName string  `json:"userFullName"`
	Username     *string `json:"username,omitempty"`

	WindowStart types.TimeString `json:"windowStart"`
	WindowEnd   types.TimeString `json:"windowEnd"`

	LocationID      *int64  `json:"locationId,omitempty"`
	LocationName    *string `json:"locationName,omitempty"`
	LocationAddress *string `json:"locationAddress,omitempty"`
	CustomLocation  *string `json:"customLocation,omitempty"`

	CardType1Count int    `json:"cardType1Count"`
	CardType2Count int    `json:"cardType2Count"`
	CardType3Count int    `json:"cardType3Count"`
	CardType1Desc  string `json:"cardType1Desc,omitempty"`
	CardType2Desc  string `json:"cardType2Desc,omitempty"`
	CardType3Desc  string `json:"cardType3Desc,omitempty"`

	IsAnonymous        bool       `json:"isAnonymous"`
	DeliveryDelayDays  int        `json:"deliveryDelayDays"`
	TargetDeliveryDate *time.Time `json:"targetDeliveryDate,omitempty"`
	RecipientName      *string    `json:"recipientName,omitempty"`
	DeliveryAddress    *string    `json:"deliveryAddress,omitempty"`
	ClientName         *string    `json:"clientName,omitempty"`

	CancelledReason *string   `json:"cancelledReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainDetails конвертирует доменный заказ в ответ API
func FromDomainDetails(d *domain.OrderDetails) *OrderDetailsResponse {
	return &OrderDetailsResponse{
		ID:                 d.ID,
		Status:             string(d.Status),
		MeetingWindowID:    d.MeetingWindowID,
		TelegramID:         d.TelegramID,
		UserFullName:       d.UserFullName,
		Username:           d.Username,
		WindowStart:        d.WindowStart,
		WindowEnd:          d.WindowEnd,
		LocationID:         d.LocationID,
		LocationName:       d.LocationName,
		LocationAddress:    d.LocationAddress,
		CustomLocation:     d.CustomLocation,
		CardType1Count:     d.CardType1Count,
		CardType2Count:     d.CardType2Count,
		CardType3Count:     d.CardType3Count,
		CardType1Desc:      d.CardType1Desc,
		CardType2Desc:      d.CardType2Desc,
		CardType3Desc:      d.CardType3Desc,
		IsAnonymous:        d.IsAnonymous,
		DeliveryDelayDays:  d.DeliveryDelayDays,
		TargetDeliveryDate: d.TargetDeliveryDate,
		RecipientName:      d.RecipientName,
		DeliveryAddress:    d.DeliveryAddress,
		ClientName:         d.ClientName,
		CancelledReason:    d.CancelledReason,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
