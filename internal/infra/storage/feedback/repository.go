package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
	"github.com/postbureau/PB-MeetingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов, см. dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// uniqueViolation код ошибки Postgres для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий для работы с обратной связью
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория обратной связи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись обратной связи, не больше одной на заказ
func (r *Repository) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("feedback").
		Columns("order_id", "rating", "comment").
		Values(f.OrderID, f.Rating, f.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrFeedbackExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	f.CreatedAt = createdAt.Time
	return f, nil
}
