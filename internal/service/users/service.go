package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	userRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/user"
)

// Service сервис пользователей.
// Пользователь создаётся идемпотентно при первом обращении
// и никогда не удаляется
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Ensure регистрирует пользователя или обновляет его профиль.
// Повторный вызов с тем же Telegram ID не создаёт дубликата;
// пустые username/fullName не затирают ранее сохранённые значения
func (s *Service) Ensure(ctx context.Context, telegramID int64, username *string, fullName string) (*domain.User, error) {
	if telegramID <= 0 {
		s.logger.Warn("Ensure: invalid telegram_id=%d", telegramID)
		return nil, fmt.Errorf("%w: telegram_id must be positive", ErrInvalidInput)
	}

	u, err := s.userRepo.Upsert(ctx, telegramID, username, strings.TrimSpace(fullName))
	if err != nil {
		s.logger.Error("Ensure: repository error for telegram_id=%d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: Ensure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Ensure: user id=%d (telegram_id=%d) upserted", u.ID, u.TelegramID)
	return u, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *Service) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	u, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByTelegramID: user telegram_id=%d not found", telegramID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByTelegramID: repository error for telegram_id=%d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: GetByTelegramID - repository error: %v", ErrInternal, err)
	}
	return u, nil
}
