package get_stats

import (
	statsService "github.com/postbureau/PB-MeetingService/internal/service/stats"
)

// SummaryResponse сводные показатели
type SummaryResponse struct {
	TotalOrders    int     `json:"totalOrders"`
	ActiveMeetings int     `json:"activeMeetings"`
	TotalUsers     int     `json:"totalUsers"`
	AvgRating      float64 `json:"avgRating"`
}

// StatusCountItem количество заказов в статусе
type StatusCountItem struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// CategoryDayItem количество писем по категориям за день
type CategoryDayItem struct {
	Date   string `json:"date"`
	ACount int    `json:"aCount"`
	BCount int    `json:"bCount"`
	CCount int    `json:"cCount"`
}

// LocationPopularityItem популярность места встречи
type LocationPopularityItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DayRatingItem средний рейтинг за день
type DayRatingItem struct {
	Date      string  `json:"date"`
	AvgRating float64 `json:"avgRating"`
}

// DayProcessingItem среднее время обработки за день, в часах
type DayProcessingItem struct {
	Date      string  `json:"date"`
	HoursDiff float64 `json:"hoursDiff"`
}

// HeatmapItem количество заказов в ячейке месяц x день
type HeatmapItem struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Count int `json:"count"`
}

// DashboardResponse сводная статистика сервиса
type DashboardResponse struct {
	Summary            SummaryResponse          `json:"summary"`
	StatusCounts       []StatusCountItem        `json:"statusCounts"`
	CategoryByDay      []CategoryDayItem        `json:"categoryByDay"`
	LocationPopularity []LocationPopularityItem `json:"locationPopularity"`
	RatingsByDay       []DayRatingItem          `json:"ratingsByDay"`
	ProcessingByDay    []DayProcessingItem      `json:"processingByDay"`
	Heatmap            []HeatmapItem            `json:"heatmap"`
}

// FromDashboard конвертирует доменную статистику в ответ API
func FromDashboard(d *statsService.Dashboard) *DashboardResponse {
	resp := &DashboardResponse{
		Summary: SummaryResponse{
			TotalOrders:    d.Summary.TotalOrders,
			ActiveMeetings: d.Summary.ActiveMeetings,
			TotalUsers:     d.Summary.TotalUsers,
			AvgRating:      d.Summary.AvgRating,
		},
		StatusCounts:       make([]StatusCountItem, 0, len(d.StatusCounts)),
		CategoryByDay:      make([]CategoryDayItem, 0, len(d.CategoryByDay)),
		LocationPopularity: make([]LocationPopularityItem, 0, len(d.LocationPopularity)),
		RatingsByDay:       make([]DayRatingItem, 0, len(d.RatingsByDay)),
		ProcessingByDay:    make([]DayProcessingItem, 0, len(d.ProcessingByDay)),
		Heatmap:            make([]HeatmapItem, 0, len(d.Heatmap)),
	}

	for _, sc := range d.StatusCounts {
		resp.StatusCounts = append(resp.StatusCounts, StatusCountItem{Status: string(sc.Status), Count: sc.Count})
	}
	for _, c := range d.CategoryByDay {
		resp.CategoryByDay = append(resp.CategoryByDay, CategoryDayItem{
			Date: c.Date, ACount: c.ACount, BCount: c.BCount, CCount: c.CCount,
		})
	}
	for _, lp := range d.LocationPopularity {
		resp.LocationPopularity = append(resp.LocationPopularity, LocationPopularityItem{Name: lp.Name, Count: lp.Count})
	}
	for _, dr := range d.RatingsByDay {
		resp.RatingsByDay = append(resp.RatingsByDay, DayRatingItem{Date: dr.Date, AvgRating: dr.AvgRating})
	}
	for _, pt := range d.ProcessingByDay {
		resp.ProcessingByDay = append(resp.ProcessingByDay, DayProcessingItem{Date: pt.Date, HoursDiff: pt.HoursDiff})
	}
	for _, hc := range d.Heatmap {
		resp.Heatmap = append(resp.Heatmap, HeatmapItem{Month: hc.Month, Day: hc.Day, Count: hc.Count})
	}

	return resp
}
