package create_range

import (
	"context"
	"fmt"

	"github.com/postbureau/PB-MeetingService/internal/domain"
)

// UseCase use case создания интервала доступности.
// Интервал и его окна материализуются атомарно: либо появляется
// интервал со всем набором окон, либо ничего
type UseCase struct {
	rangeRepo  RangeRepository
	windowRepo WindowRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rangeRepo RangeRepository,
	windowRepo WindowRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rangeRepo:  rangeRepo,
		windowRepo: windowRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case создания интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRange: date=%s, %s-%s, duration=%d, capacity=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		req.WindowDurationMin, req.MaxMeetingsPerWindow)

	// Подставляем значения по умолчанию до валидации
	if req.WindowDurationMin == 0 {
		req.WindowDurationMin = domain.DefaultWindowDurationMin
	}
	if req.MaxMeetingsPerWindow == 0 {
		req.MaxMeetingsPerWindow = domain.DefaultMaxMeetingsPerWindow
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRange: validation failed: %v", err)
		return nil, err
	}

	// Набор окон полностью определяется границами интервала и длительностью.
	// Пустой набор допустим: интервал короче одного окна
	spans, err := domain.GenerateWindowSpans(req.StartTime, req.EndTime, req.WindowDurationMin)
	if err != nil {
		uc.logger.Warn("CreateRange: failed to generate window spans: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.TimeRange

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		tr, err := uc.rangeRepo.Create(ctx, &domain.TimeRange{
			Date:                 req.Date,
			StartTime:            req.StartTime,
			EndTime:              req.EndTime,
			WindowDurationMin:    req.WindowDurationMin,
			MaxMeetingsPerWindow: req.MaxMeetingsPerWindow,
			IsActive:             true,
		})
		if err != nil {
			return fmt.Errorf("%w: create range: %v", ErrInternal, err)
		}
		created = tr

		if len(spans) > 0 {
			if err := uc.windowRepo.BulkCreate(ctx, tr.ID, spans, req.MaxMeetingsPerWindow); err != nil {
				return fmt.Errorf("%w: create windows: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateRange: failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateRange: range id=%d created with %d windows", created.ID, len(spans))

	return &Response{
		ID:                   created.ID,
		Date:                 created.Date,
		StartTime:            created.StartTime,
		EndTime:              created.EndTime,
		WindowDurationMin:    created.WindowDurationMin,
		MaxMeetingsPerWindow: created.MaxMeetingsPerWindow,
		IsActive:             created.IsActive,
		WindowsCreated:       len(spans),
		CreatedAt:            created.CreatedAt,
	}, nil
}
