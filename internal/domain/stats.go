package domain

// Агрегаты отчётности. Только чтение: ни одна из этих структур
// не участвует в мутациях данных.

// StatsSummary сводные показатели сервиса
type StatsSummary struct {
	TotalOrders    int
	ActiveMeetings int // заказы в статусе pending
	TotalUsers     int
	AvgRating      float64
}

// StatusCount количество заказов в статусе
type StatusCount struct {
	Status OrderStatus
	Count  int
}

// CategoryDayCount количество писем по категориям за день
type CategoryDayCount struct {
	Date   string // YYYY-MM-DD
	ACount int
	BCount int
	CCount int
}

// LocationPopularity популярность места встречи
type LocationPopularity struct {
	Name  string
	Count int
}

// DayRating средний рейтинг обратной связи за день
type DayRating struct {
	Date      string
	AvgRating float64
}

// DayProcessingTime среднее время обработки заказов за день (в часах),
// считается только по заказам в статусах met/delivered
type DayProcessingTime struct {
	Date      string
	HoursDiff float64
}

// HeatmapCell количество заказов в ячейке месяц x день
type HeatmapCell struct {
	Month int
	Day   int
	Count int
}
