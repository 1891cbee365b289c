package order

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

// orderColumns колонки таблицы orders в порядке сканирования
var orderColumns = []string{
	"id",
	"user_id",
	"meeting_window_id",
	"location_id",
	"custom_location",
	"is_anonymous",
	"delivery_delay_days",
	"target_delivery_date",
	"card_type_1_count",
	"card_type_2_count",
	"card_type_3_count",
	"card_type_1_desc",
	"card_type_2_desc",
	"card_type_3_desc",
	"recipient_name",
	"delivery_address",
	"client_name",
	"status",
	"cancelled_reason",
	"created_at",
	"updated_at",
}

// detailColumns колонки join-запроса заказа с данными пользователя,
// окна и места встречи
var detailColumns = []string{
	"o.id",
	"o.user_id",
	"o.meeting_window_id",
	"o.location_id",
	"o.custom_location",
	"o.is_anonymous",
	"o.delivery_delay_days",
	"o.target_delivery_date",
	"o.card_type_1_count",
	"o.card_type_2_count",
	"o.card_type_3_count",
	"o.card_type_1_desc",
	"o.card_type_2_desc",
	"o.card_type_3_desc",
	"o.recipient_name",
	"o.delivery_address",
	"o.client_name",
	"o.status",
	"o.cancelled_reason",
	"o.created_at",
	"o.updated_at",
	"u.telegram_id",
	"u.full_name",
	"u.username",
	"mw.start_time AS window_start",
	"mw.end_time AS window_end",
	"l.name AS location_name",
	"l.address AS location_address",
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заказ в статусе pending
// Вызывается только внутри транзакции размещения заказа, после того как
// место в окне уже занято: откат транзакции убирает и заказ, и бронь
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"user_id",
			"meeting_window_id",
			"location_id",
			"custom_location",
			"is_anonymous",
			"delivery_delay_days",
			"target_delivery_date",
			"card_type_1_count",
			"card_type_2_count",
			"card_type_3_count",
			"card_type_1_desc",
			"card_type_2_desc",
			"card_type_3_desc",
			"recipient_name",
			"delivery_address",
			"client_name",
			"status",
		).
		Values(
			o.UserID,
			o.MeetingWindowID,
			o.LocationID,
			o.CustomLocation,
			o.IsAnonymous,
			o.DeliveryDelayDays,
			o.TargetDeliveryDate,
			o.CardType1Count,
			o.CardType2Count,
			o.CardType3Count,
			o.CardType1Desc,
			o.CardType2Desc,
			o.CardType3Desc,
			o.RecipientName,
			o.DeliveryAddress,
			o.ClientName,
			o.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time
	return o, nil
}

// GetForUpdate получает заказ без join'ов
// Внутри транзакции блокирует строку заказа через FOR UPDATE:
// конкурирующие переходы статуса одного заказа линеаризуются
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Order
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.UserID,
		&o.MeetingWindowID,
		&o.LocationID,
		&o.CustomLocation,
		&o.IsAnonymous,
		&o.DeliveryDelayDays,
		&o.TargetDeliveryDate,
		&o.CardType1Count,
		&o.CardType2Count,
		&o.CardType3Count,
		&o.CardType1Desc,
		&o.CardType2Desc,
		&o.CardType3Desc,
		&o.RecipientName,
		&o.DeliveryAddress,
		&o.ClientName,
		&o.Status,
		&o.CancelledReason,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan order: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time
	return &o, nil
}

// GetDetailsByID получает заказ со связанными данными для отображения
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.OrderDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsBuilder().
		Where(squirrel.Eq{"o.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders, err := r.scanDetails(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

// CountActiveByUser считает заказы пользователя в статусах pending/met
// Используется для проверки лимита внутри транзакции размещения заказа
func (r *Repository) CountActiveByUser(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("orders").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"status": domain.ActiveOrderStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListByTelegramID получает заказы пользователя по его Telegram ID,
// новые первыми
func (r *Repository) ListByTelegramID(ctx context.Context, telegramID int64) ([]*domain.OrderDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.detailsBuilder().
		Where(squirrel.Eq{"u.telegram_id": telegramID}).
		OrderBy("o.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByTelegramID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTelegramID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

// ListByStatus получает заказы с опциональной фильтрацией по статусу,
// новые первыми
func (r *Repository) ListByStatus(ctx context.Context, status *domain.OrderStatus) ([]*domain.OrderDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.detailsBuilder().OrderBy("o.created_at DESC")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"o.status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDetails(rows)
}

// UpdateStatus обновляет статус заказа
// Допустимость перехода проверяет вызывающий код по таблице переходов
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Cancel переводит заказ в cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", domain.StatusCancelled).
		Set("cancelled_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// detailsBuilder общий join-запрос деталей заказа
func (r *Repository) detailsBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailColumns...).
		From("orders o").
		Join("users u ON o.user_id = u.id").
		Join("meeting_windows mw ON o.meeting_window_id = mw.id").
		LeftJoin("locations l ON o.location_id = l.id")
}

// scanDetails сканирует результаты join-запроса в слайс заказов с деталями
func (r *Repository) scanDetails(rows *sql.Rows) ([]*domain.OrderDetails, error) {
	orders := make([]*domain.OrderDetails, 0)

	for rows.Next() {
		var d domain.OrderDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.MeetingWindowID,
			&d.LocationID,
			&d.CustomLocation,
			&d.IsAnonymous,
			&d.DeliveryDelayDays,
			&d.TargetDeliveryDate,
			&d.CardType1Count,
			&d.CardType2Count,
			&d.CardType3Count,
			&d.CardType1Desc,
			&d.CardType2Desc,
			&d.CardType3Desc,
			&d.RecipientName,
			&d.DeliveryAddress,
			&d.ClientName,
			&d.Status,
			&d.CancelledReason,
			&createdAt,
			&updatedAt,
			&d.TelegramID,
			&d.UserFullName,
			&d.Username,
			&d.WindowStart,
			&d.WindowEnd,
			&d.LocationName,
			&d.LocationAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		orders = append(orders, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}
