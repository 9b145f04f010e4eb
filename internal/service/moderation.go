package service

import (
	"context"
	"fmt"

	"github.com/fstr-tourism/pereval-api/internal/domain"
)

type ModerationService struct {
	eventPublisher
	repo PerevalRepository
}

func NewModerationService(repo PerevalRepository, publisher Publisher) *ModerationService {
	return &ModerationService{
		eventPublisher: newEventPublisher(publisher),
		repo:           repo,
	}
}

// SetStatus moves a pereval along NEW -> PENDING -> ACCEPTED | REJECTED and
// returns the status it had before.
func (s *ModerationService) SetStatus(ctx context.Context, id uint, to domain.Status) (domain.Status, error) {
	if !to.Valid() {
		return 0, fmt.Errorf("%w: unknown status %d", ErrInvalidStatusTransition, int(to))
	}

	from, err := s.repo.UpdateStatus(ctx, id, to)
	if err != nil {
		return from, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	s.publish(ctx, domain.Event{
		Type:       domain.EventPerevalStatusChanged,
		PerevalID:  id,
		Status:     to,
		PrevStatus: from,
	})

	return from, nil
}
