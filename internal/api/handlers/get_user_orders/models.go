package get_user_orders

import (
	"time"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/types"
)

// OrderListItem элемент истории заказов пользователя
type OrderListItem struct {
	ID              int64            `json:"id"`
	Status          string           `json:"status"`
	WindowStart     types.TimeString `json:"windowStart"`
	WindowEnd       types.TimeString `json:"windowEnd"`
	LocationName    *string          `json:"locationName,omitempty"`
	CustomLocation  *string          `json:"customLocation,omitempty"`
	CardType1Count  int              `json:"cardType1Count"`
	CardType2Count  int              `json:"cardType2Count"`
	CardType3Count  int              `json:"cardType3Count"`
	CancelledReason *string          `json:"cancelledReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
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
			ID:              d.ID,
			Status:          string(d.Status),
			WindowStart:     d.WindowStart,
			WindowEnd:       d.WindowEnd,
			LocationName:    d.LocationName,
			CustomLocation:  d.CustomLocation,
			CardType1Count:  d.CardType1Count,
			CardType2Count:  d.CardType2Count,
			CardType3Count:  d.CardType3Count,
			CancelledReason: d.CancelledReason,
			CreatedAt:       d.CreatedAt,
		})
	}
	return &OrderListResponse{Orders: items}
}
