// Package notification хранит журнал исходящих уведомлений.
// Сама доставка выполняется транспортом бота (см. integrations/botgateway);
// здесь фиксируется только факт отправки.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
	"github.com/postbureau/PB-MeetingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов, см. dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("notification.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("notification.repository: failed to execute query")
)

// Repository репозиторий журнала уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает уведомление в журнал
func (r *Repository) Create(ctx context.Context, userID int64, message string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "message").
		Values(userID, message).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
