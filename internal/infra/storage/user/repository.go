package user

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

// userColumns колонки таблицы users в порядке сканирования
var userColumns = []string{
	"id",
	"telegram_id",
	"username",
	"full_name",
	"role",
	"total_letters",
	"category_a_count",
	"category_b_count",
	"category_c_count",
	"created_at",
}

// categoryColumn соответствие категории открытки колонке счётчика
var categoryColumn = map[domain.CardCategory]string{
	domain.CategoryA: "category_a_count",
	domain.CategoryB: "category_b_count",
	domain.CategoryC: "category_c_count",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert идемпотентно создает пользователя по Telegram ID.
// Повторный вызов не затирает накопленные счётчики; имя и username
// обновляются только непустыми значениями.
func (r *Repository) Upsert(ctx context.Context, telegramID int64, username *string, fullName string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("telegram_id", "username", "full_name").
		Values(telegramID, username, fullName).
		Suffix(`ON CONFLICT (telegram_id) DO UPDATE SET
			username = COALESCE(EXCLUDED.username, users.username),
			full_name = CASE WHEN EXCLUDED.full_name <> '' THEN EXCLUDED.full_name ELSE users.full_name END
			RETURNING id, telegram_id, username, full_name, role,
				total_letters, category_a_count, category_b_count, category_c_count, created_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("Upsert: %w", err)
	}
	return u, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"telegram_id": telegramID})
}

// GetByID получает пользователя по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// IncrementLetterCounters увеличивает счётчик писем пользователя
// и счётчик указанной категории на delta
func (r *Repository) IncrementLetterCounters(ctx context.Context, userID int64, category domain.CardCategory, delta int) error {
	if delta <= 0 {
		return nil
	}

	column, ok := categoryColumn[category]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("total_letters", squirrel.Expr("total_letters + ?", delta)).
		Set(column, squirrel.Expr(column+" + ?", delta)).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementLetterCounters - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementLetterCounters - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementLetterCounters - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// getOne получает одного пользователя по условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	return u, nil
}

// scanUser сканирует одну строку пользователя
func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var createdAt sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.TelegramID,
		&u.Username,
		&u.FullName,
		&u.Role,
		&u.TotalLetters,
		&u.CategoryACount,
		&u.CategoryBCount,
		&u.CategoryCCount,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	return &u, nil
}
