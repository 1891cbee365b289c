package domain

// Значения по умолчанию для интервалов доступности
const (
	DefaultWindowDurationMin    = 10
	DefaultMaxMeetingsPerWindow = 1
)

// Бизнес-ограничения
const (
	MinWindowDurationMin = 1
	MaxWindowDurationMin = 480 // 8 часов

	MinMeetingsPerWindow = 1
	MaxMeetingsPerWindow = 100

	// MaxActiveOrdersPerUser лимит одновременных заказов пользователя
	// в статусах pending/met
	MaxActiveOrdersPerUser = 2

	MaxCardDescriptionLength = 500
	MaxCancelReasonLength    = 500
	MaxDeliveryDelayDays     = 365
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveOrderStatuses статусы, занимающие место во временном окне
// и учитываемые в лимите одновременных заказов
var ActiveOrderStatuses = []OrderStatus{
	StatusPending,
	StatusMet,
}

// TerminalOrderStatuses терминальные статусы заказов
var TerminalOrderStatuses = []OrderStatus{
	StatusDelivered,
	StatusCancelled,
}
