package window

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
	"github.com/postbureau/PB-MeetingService/pkg/psqlbuilder"
)

// windowColumns колонки таблицы meeting_windows в порядке сканирования
var windowColumns = []string{
	"id",
	"range_id",
	"start_time",
	"end_time",
	"capacity",
	"current_bookings",
	"is_available",
	"created_at",
}

// Repository репозиторий для работы с временными окнами.
// Единственная точка мутации занятости окон: current_bookings и
// is_available меняются только методами IncrementBookings и
// DecrementBookings, причём is_available всегда пересчитывается
// в том же UPDATE из занятости и вместимости.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkCreate создает все окна диапазона одним запросом.
// Вызывается внутри транзакции создания диапазона: либо материализуется
// весь набор окон, либо ни одного.
func (r *Repository) BulkCreate(ctx context.Context, rangeID int64, spans []domain.WindowSpan, capacity int) error {
	if len(spans) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("meeting_windows").
		Columns("range_id", "start_time", "end_time", "capacity")

	for _, span := range spans {
		insertBuilder = insertBuilder.Values(rangeID, span.StartTime, span.EndTime, capacity)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает окно по ID
// Внутри транзакции блокирует строку через FOR UPDATE, чтобы
// конкурирующие резервирования одного окна выполнялись последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("meeting_windows").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.Window
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.RangeID,
		&w.StartTime,
		&w.EndTime,
		&w.Capacity,
		&w.CurrentBookings,
		&w.IsAvailable,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	w.CreatedAt = createdAt.Time
	return &w, nil
}

// IncrementBookings занимает одно место в окне.
// Условие current_bookings < capacity входит в сам UPDATE: даже вне
// сериализуемой транзакции два конкурирующих инкремента не могут
// превысить вместимость. Возвращает ErrWindowFull, если мест нет.
func (r *Repository) IncrementBookings(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meeting_windows").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("is_available", squirrel.Expr("current_bookings + 1 < capacity")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_bookings < capacity")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо окна нет, либо мест нет - различаем отдельным чтением
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrWindowFull
	}

	return nil
}

// DecrementBookings освобождает одно место в окне.
// Условие current_bookings > 0 защищает от ухода занятости в минус:
// попытка освободить пустое окно возвращает ErrNotOccupied,
// а не молча обнуляет счётчик.
func (r *Repository) DecrementBookings(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meeting_windows").
		Set("current_bookings", squirrel.Expr("current_bookings - 1")).
		Set("is_available", squirrel.Expr("current_bookings - 1 < capacity")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_bookings > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementBookings - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrNotOccupied
	}

	return nil
}

// ListByRange получает окна диапазона, отсортированные по времени начала
// При onlyAvailable = true возвращаются только окна со свободными местами
func (r *Repository) ListByRange(ctx context.Context, rangeID int64, onlyAvailable bool) ([]*domain.Window, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns...).
		From("meeting_windows").
		Where(squirrel.Eq{"range_id": rangeID}).
		OrderBy("start_time ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// CountBlockingDeletion возвращает число окон диапазона, которые
// блокируют его удаление: окно занято и привязанный заказ не в
// терминальном статусе
func (r *Repository) CountBlockingDeletion(ctx context.Context, rangeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT mw.id)").
		From("meeting_windows mw").
		Join("orders o ON o.meeting_window_id = mw.id").
		Where(squirrel.Eq{"mw.range_id": rangeID}).
		Where(squirrel.Gt{"mw.current_bookings": 0}).
		Where(squirrel.Eq{"o.status": domain.ActiveOrderStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBlockingDeletion - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBlockingDeletion - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// DeleteByRange удаляет все окна диапазона
// Вызывается только из транзакции каскадного удаления диапазона
func (r *Repository) DeleteByRange(ctx context.Context, rangeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("meeting_windows").
		Where(squirrel.Eq{"range_id": rangeID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByRange - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByRange - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.Window, error) {
	windows := make([]*domain.Window, 0)

	for rows.Next() {
		var w domain.Window
		var createdAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.RangeID,
			&w.StartTime,
			&w.EndTime,
			&w.Capacity,
			&w.CurrentBookings,
			&w.IsAvailable,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		w.CreatedAt = createdAt.Time
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
