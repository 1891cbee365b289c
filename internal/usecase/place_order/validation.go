package place_order

import (
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TelegramID <= 0 {
		return fmt.Errorf("%w: telegramID must be positive", ErrInvalidInput)
	}

	if req.MeetingWindowID <= 0 {
		return fmt.Errorf("%w: meetingWindowID must be positive", ErrInvalidInput)
	}

	if req.CardType1Count < 0 || req.CardType2Count < 0 || req.CardType3Count < 0 {
		return fmt.Errorf("%w: card counts must not be negative", ErrInvalidInput)
	}

	// Заказ без единой открытки не имеет смысла
	total := req.CardType1Count + req.CardType2Count + req.CardType3Count
	if total == 0 {
		return fmt.Errorf("%w: at least one card is required", ErrInvalidInput)
	}

	for _, desc := range []string{req.CardType1Desc, req.CardType2Desc, req.CardType3Desc} {
		if len([]rune(desc)) > domain.MaxCardDescriptionLength {
			return fmt.Errorf("%w: card description is too long (max %d)", ErrInvalidInput, domain.MaxCardDescriptionLength)
		}
	}

	if req.DeliveryDelayDays < 0 || req.DeliveryDelayDays > domain.MaxDeliveryDelayDays {
		return fmt.Errorf("%w: deliveryDelayDays must be between 0 and %d", ErrInvalidInput, domain.MaxDeliveryDelayDays)
	}

	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	return nil
}
