package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/postbureau/PB-MeetingService/internal/domain"
	locationRepo "github.com/postbureau/PB-MeetingService/internal/infra/storage/location"
)

// Service сервис справочника мест встреч
type Service struct {
	locationRepo LocationRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса мест встреч
func NewService(locationRepo LocationRepository, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Create добавляет место встречи в справочник
func (s *Service) Create(ctx context.Context, name, address string, isCustom, createdByAdmin bool) (*domain.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.logger.Warn("Create: empty location name")
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	loc, err := s.locationRepo.Create(ctx, &domain.Location{
		Name:           name,
		Address:        strings.TrimSpace(address),
		IsCustom:       isCustom,
		CreatedByAdmin: createdByAdmin,
	})
	if err != nil {
		s.logger.Error("Create: repository error for location %q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: location id=%d %q created", loc.ID, loc.Name)
	return loc, nil
}

// ListAll получает все места встреч
func (s *Service) ListAll(ctx context.Context) ([]*domain.Location, error) {
	list, err := s.locationRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d locations", len(list))
	return list, nil
}

// Delete удаляет место встречи из справочника.
// У заказов, ссылавшихся на него, ссылка обнуляется (ON DELETE SET NULL)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Delete: location id=%d not found", id)
			return ErrLocationNotFound
		}
		s.logger.Error("Delete: repository error for location id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: location id=%d deleted", id)
	return nil
}
