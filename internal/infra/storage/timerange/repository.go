package timerange

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
	"github.com/postbureau/PB-MeetingService/pkg/psqlbuilder"
)

// rangeColumns колонки таблицы meeting_time_ranges в порядке сканирования
var rangeColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"window_duration_min",
	"max_meetings_per_window",
	"is_active",
	"created_at",
}

// Repository репозиторий для работы с диапазонами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория диапазонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает диапазон и возвращает его с заполненными ID и created_at
// Окна диапазона создаёт вызывающий код в той же транзакции
func (r *Repository) Create(ctx context.Context, tr *domain.TimeRange) (*domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("meeting_time_ranges").
		Columns(
			"date",
			"start_time",
			"end_time",
			"window_duration_min",
			"max_meetings_per_window",
			"is_active",
		).
		Values(
			tr.Date,
			tr.StartTime,
			tr.EndTime,
			tr.WindowDurationMin,
			tr.MaxMeetingsPerWindow,
			tr.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tr.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tr.CreatedAt = createdAt.Time
	return tr, nil
}

// GetByID получает диапазон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From("meeting_time_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tr, err := r.scanRange(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return tr, nil
}

// ListActiveByDate получает активные диапазоны на дату, по времени начала
func (r *Repository) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From("meeting_time_ranges").
		Where(squirrel.Eq{"date": date, "is_active": true}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// ListAll получает все диапазоны: новые даты первыми, внутри даты по началу
func (r *Repository) ListAll(ctx context.Context) ([]*domain.TimeRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rangeColumns...).
		From("meeting_time_ranges").
		OrderBy("date DESC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRanges(rows)
}

// SetActive включает или выключает видимость диапазона для бронирования
// Окна и существующие брони не затрагиваются
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meeting_time_ranges").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRangeNotFound
	}
	return nil
}

// Delete удаляет диапазон
// Каскад по окнам выполняет вызывающий код в той же транзакции
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("meeting_time_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRangeNotFound
	}
	return nil
}

// scanRange сканирует одну строку диапазона
func (r *Repository) scanRange(row *sql.Row) (*domain.TimeRange, error) {
	var tr domain.TimeRange
	var createdAt sql.NullTime

	err := row.Scan(
		&tr.ID,
		&tr.Date,
		&tr.StartTime,
		&tr.EndTime,
		&tr.WindowDurationMin,
		&tr.MaxMeetingsPerWindow,
		&tr.IsActive,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan range: %v", ErrScanRow, err)
	}

	tr.CreatedAt = createdAt.Time
	return &tr, nil
}

// scanRanges сканирует результаты запроса в слайс диапазонов
func (r *Repository) scanRanges(rows *sql.Rows) ([]*domain.TimeRange, error) {
	ranges := make([]*domain.TimeRange, 0)

	for rows.Next() {
		var tr domain.TimeRange
		var createdAt sql.NullTime

		err := rows.Scan(
			&tr.ID,
			&tr.Date,
			&tr.StartTime,
			&tr.EndTime,
			&tr.WindowDurationMin,
			&tr.MaxMeetingsPerWindow,
			&tr.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRanges - scan row: %v", ErrScanRow, err)
		}

		tr.CreatedAt = createdAt.Time
		ranges = append(ranges, &tr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}
