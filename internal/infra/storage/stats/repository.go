// Package stats read-only запросы отчётности.
// Ничего не мутирует: занятость окон и статусы заказов меняются
// только в своих репозиториях.
package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов, см. dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var (
	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stats.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stats.repository: failed to scan row")
)

// Repository репозиторий отчётности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчётности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSummary возвращает сводные показатели сервиса
func (r *Repository) GetSummary(ctx context.Context) (*domain.StatsSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'pending'),
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(ROUND(AVG(rating)::numeric, 1), 0) FROM feedback)`

	var s domain.StatsSummary
	err := executor.QueryRowContext(ctx, query).Scan(
		&s.TotalOrders,
		&s.ActiveMeetings,
		&s.TotalUsers,
		&s.AvgRating,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSummary: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetStatusCounts возвращает распределение заказов по статусам
func (r *Repository) GetStatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStatusCounts: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.StatusCount, 0)
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: GetStatusCounts - scan row: %v", ErrScanRow, err)
		}
		result = append(result, sc)
	}
	return result, rowsErr(rows, "GetStatusCounts")
}

// GetCategoryCountsByDay возвращает количество писем по категориям за день
func (r *Repository) GetCategoryCountsByDay(ctx context.Context) ([]domain.CategoryDayCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day,
			SUM(category_a_count),
			SUM(category_b_count),
			SUM(category_c_count)
		FROM users
		GROUP BY day
		ORDER BY day`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryCountsByDay: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CategoryDayCount, 0)
	for rows.Next() {
		var c domain.CategoryDayCount
		if err := rows.Scan(&c.Date, &c.ACount, &c.BCount, &c.CCount); err != nil {
			return nil, fmt.Errorf("%w: GetCategoryCountsByDay - scan row: %v", ErrScanRow, err)
		}
		result = append(result, c)
	}
	return result, rowsErr(rows, "GetCategoryCountsByDay")
}

// GetLocationPopularity возвращает популярность мест встреч по числу заказов
func (r *Repository) GetLocationPopularity(ctx context.Context) ([]domain.LocationPopularity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT l.name, COUNT(o.id) AS cnt
		FROM locations l
		LEFT JOIN orders o ON l.id = o.location_id
		GROUP BY l.id, l.name
		ORDER BY cnt DESC`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocationPopularity: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.LocationPopularity, 0)
	for rows.Next() {
		var lp domain.LocationPopularity
		if err := rows.Scan(&lp.Name, &lp.Count); err != nil {
			return nil, fmt.Errorf("%w: GetLocationPopularity - scan row: %v", ErrScanRow, err)
		}
		result = append(result, lp)
	}
	return result, rowsErr(rows, "GetLocationPopularity")
}

// GetFeedbackRatingsByDay возвращает средний рейтинг обратной связи за день
func (r *Repository) GetFeedbackRatingsByDay(ctx context.Context) ([]domain.DayRating, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day, AVG(rating)
		FROM feedback
		GROUP BY day
		ORDER BY day`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFeedbackRatingsByDay: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DayRating, 0)
	for rows.Next() {
		var dr domain.DayRating
		if err := rows.Scan(&dr.Date, &dr.AvgRating); err != nil {
			return nil, fmt.Errorf("%w: GetFeedbackRatingsByDay - scan row: %v", ErrScanRow, err)
		}
		result = append(result, dr)
	}
	return result, rowsErr(rows, "GetFeedbackRatingsByDay")
}

// GetProcessingTimeByDay возвращает среднее время обработки заказов за день
// (в часах), только по заказам в статусах met/delivered
func (r *Repository) GetProcessingTimeByDay(ctx context.Context) ([]domain.DayProcessingTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day,
			AVG(EXTRACT(EPOCH FROM (updated_at - created_at)) / 3600)
		FROM orders
		WHERE status IN ('delivered', 'met')
		GROUP BY day
		ORDER BY day`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProcessingTimeByDay: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DayProcessingTime, 0)
	for rows.Next() {
		var dp domain.DayProcessingTime
		if err := rows.Scan(&dp.Date, &dp.HoursDiff); err != nil {
			return nil, fmt.Errorf("%w: GetProcessingTimeByDay - scan row: %v", ErrScanRow, err)
		}
		result = append(result, dp)
	}
	return result, rowsErr(rows, "GetProcessingTimeByDay")
}

// GetOrdersHeatmap возвращает количество заказов по ячейкам месяц x день
func (r *Repository) GetOrdersHeatmap(ctx context.Context) ([]domain.HeatmapCell, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const query = `
		SELECT EXTRACT(MONTH FROM created_at)::int,
			EXTRACT(DAY FROM created_at)::int,
			COUNT(*)
		FROM orders
		GROUP BY 1, 2
		ORDER BY 1, 2`

	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrdersHeatmap: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.HeatmapCell, 0)
	for rows.Next() {
		var hc domain.HeatmapCell
		if err := rows.Scan(&hc.Month, &hc.Day, &hc.Count); err != nil {
			return nil, fmt.Errorf("%w: GetOrdersHeatmap - scan row: %v", ErrScanRow, err)
		}
		result = append(result, hc)
	}
	return result, rowsErr(rows, "GetOrdersHeatmap")
}

// rowsErr оборачивает отложенную ошибку итерации
func rowsErr(rows *sql.Rows, method string) error {
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}
	return nil
}
