package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fstr-tourism/pereval-api/internal/domain"
	"github.com/fstr-tourism/pereval-api/internal/repository"
)

var (
	ErrPerevalNotFound         = repository.ErrPerevalNotFound
	ErrInvalidPereval          = domain.ErrInvalidPereval
	ErrInvalidStatusTransition = repository.ErrInvalidStatusTransition
)

const (
	msgPerevalNotFound = "Перевал не найден."
	msgNotEditable     = "Редактирование невозможно. Текущий статус '%s'. Для редактирования должен быть статус '%s'."
	msgUpdateFailed    = "Ошибка обновления: %v"
)

type PerevalRepository interface {
	Create(ctx context.Context, p domain.NewPereval) (uint, error)
	FindByID(ctx context.Context, id uint) (domain.Pereval, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Pereval, error)
	Update(ctx context.Context, id uint, patch domain.PerevalPatch) (domain.Status, error)
	UpdateStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error)
}

// Publisher delivers change events to whoever moderates submissions.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.Event) error { return nil }

type eventPublisher struct {
	publisher Publisher
	now       func() time.Time
}

func newEventPublisher(publisher Publisher) eventPublisher {
	if publisher == nil {
		publisher = nopPublisher{}
	}

	return eventPublisher{
		publisher: publisher,
		now:       time.Now,
	}
}

// publish stamps and sends event. Delivery failures are logged only, the
// change is already committed.
func (p eventPublisher) publish(ctx context.Context, event domain.Event) {
	event.OccurredAt = p.now().UTC()
	if err := p.publisher.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish pereval event",
			zap.String("type", string(event.Type)),
			zap.Uint("pereval_id", event.PerevalID),
			zap.Error(err),
		)
	}
}

type PerevalService struct {
	eventPublisher
	repo     PerevalRepository
	userRepo UserRepository
}

func NewPerevalService(repo PerevalRepository, userRepo UserRepository, publisher Publisher) *PerevalService {
	return &PerevalService{
		eventPublisher: newEventPublisher(publisher),
		repo:           repo,
		userRepo:       userRepo,
	}
}

// CreatePass stores a new submission and returns its id.
func (s *PerevalService) CreatePass(ctx context.Context, p domain.NewPereval) (uint, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventPerevalSubmitted,
		PerevalID: id,
		Status:    domain.StatusNew,
	})

	return id, nil
}

func (s *PerevalService) GetPassByID(ctx context.Context, id uint) (domain.Pereval, error) {
	pereval, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Pereval{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return pereval, nil
}

// GetPassesByEmail fails with ErrUserNotFound for an unknown email. A known
// submitter without passes gets an empty slice.
func (s *PerevalService) GetPassesByEmail(ctx context.Context, email string) ([]domain.Pereval, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByEmail -> %w", err)
	}

	perevals, err := s.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return perevals, nil
}

// UpdatePass applies a merge patch to a pereval that is still awaiting
// moderation. Every outcome, failures included, is reported in the result.
func (s *PerevalService) UpdatePass(ctx context.Context, id uint, patch domain.PerevalPatch) domain.UpdateResult {
	if err := patch.Validate(); err != nil {
		return domain.UpdateResult{Outcome: domain.UpdateInvalid, Message: err.Error()}
	}

	status, err := s.repo.Update(ctx, id, patch)
	switch {
	case err == nil:
		s.publish(ctx, domain.Event{
			Type:      domain.EventPerevalUpdated,
			PerevalID: id,
			Status:    status,
		})
		return domain.UpdateResult{Outcome: domain.UpdateApplied, Status: status}

	case errors.Is(err, ErrPerevalNotFound):
		return domain.UpdateResult{Outcome: domain.UpdateNotFound, Message: msgPerevalNotFound}

	case errors.Is(err, repository.ErrPerevalNotEditable):
		return domain.UpdateResult{
			Outcome: domain.UpdateRejected,
			Status:  status,
			Message: fmt.Sprintf(msgNotEditable, status.Label(), domain.StatusNew.Label()),
		}

	default:
		zap.L().Error("pereval update rolled back", zap.Uint("pereval_id", id), zap.Error(err))
		return domain.UpdateResult{
			Outcome: domain.UpdateFailed,
			Status:  status,
			Message: fmt.Sprintf(msgUpdateFailed, err),
		}
	}
}
