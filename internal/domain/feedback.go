package domain

import "time"

// Ограничения рейтинга обратной связи
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5

	MaxFeedbackCommentLength = 1000
)

// Feedback обратная связь по заказу, не больше одной на заказ
type Feedback struct {
	ID        int64
	OrderID   int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
