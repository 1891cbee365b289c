package get_orders

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// OrderListItem заказ в административном списке
type OrderListItem struct {
	ID           int64   `json:"id"`
	Status       string  `json:"status"`
	TelegramID   int64   `json:"telegramId"`
	UserFullName string  `json:"userFullName"`
	Username     *string `json:"username,omitempty"`

	WindowStart types.TimeString `json:"windowStart"`
	WindowEnd   types.TimeString `json:"windowEnd"`

	LocationName   *string `json:"locationName,omitempty"`
	CustomLocation *string `json:"customLocation,omitempty"`

	CardType1Count int `json:"cardType1Count"`
	CardType2Count int `json:"cardType2Count"`
	CardType3Count int `json:"cardType3Count"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderListResponse ответ со списком заказов
type OrderListResponse struct {
	Orders []OrderListItem `json:"orders"`
}

// FromDomainList конвертирует доменные заказы в ответ API
func FromDomainList(list []*domain.OrderDetails) *OrderListResponse {
	items := make([]OrderListItem, 0, len(list))
	for _, d := range list {
		items = append(items, OrderListItem{
			ID:             d.ID,
			Status:         string(d.Status),
			TelegramID:     d.TelegramID,
			UserFullName:   d.UserFullName,
			Username:       d.Username,
			WindowStart:    d.WindowStart,
			WindowEnd:      d.WindowEnd,
			LocationName:   d.LocationName,
			CustomLocation: d.CustomLocation,
			CardType1Count: d.CardType1Count,
			CardType2Count: d.CardType2Count,
			CardType3Count: d.CardType3Count,
			CreatedAt:      d.CreatedAt,
			UpdatedAt:      d.UpdatedAt,
		})
	}
	return &OrderListResponse{Orders: items}
}
