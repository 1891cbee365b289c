// Package txmanager управление транзакциями БД. Бизнес-логика получает
// функцию-обёртку (Do / DoSerializable / DoReadOnly), внутри которой все
// запросы репозиториев выполняются в одной транзакции - она передаётся
// через context (см. dbmetrics.WithExecutor).
//
// DoSerializable выполняет функцию на уровне изоляции SERIALIZABLE и
// повторяет её при сбоях сериализации Postgres (SQLSTATE 40001/40P01).
// Это единственный механизм линеаризации конкурентных бронирований:
// два одновременных резервирования одного окна не могут оба пройти
// проверку вместимости.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/postbureau/PB-MeetingService/pkg/dbmetrics"
)

const (
	// maxSerializableAttempts максимальное число попыток сериализуемой транзакции
	maxSerializableAttempts = 3

	// retryBaseDelay базовая задержка перед повтором, удваивается с каждой попыткой
	retryBaseDelay = 10 * time.Millisecond
)

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается, когда сериализуемая транзакция
	// исчерпала все попытки из-за конфликтов сериализации.
	// Это транзиентная ошибка хранилища, а не бизнес-отказ
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")
)

// TxBeginner интерфейс источника транзакций
// Реализуется *dbmetrics.DB и адаптером в simpletxmanager
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE-транзакции с ограниченным
// числом повторов при конфликтах сериализации
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 1; attempt <= maxSerializableAttempts; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}

		lastErr = err
		if attempt < maxSerializableAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBaseDelay << (attempt - 1)):
			}
		}
	}

	return fmt.Errorf("%w: after %d attempts: %v", ErrRetriesExhausted, maxSerializableAttempts, lastErr)
}

// run открывает транзакцию, кладёт её в контекст и выполняет fn
// При ошибке или панике транзакция откатывается целиком
func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txCtx := dbmetrics.WithExecutor(ctx, tx)
	if err = fn(txCtx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}
	return nil
}

// isSerializationFailure определяет конфликт сериализации или deadlock Postgres
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
