package ports

import (
	"context"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
)

type ParticipantRepo interface {
	Add(ctx context.Context, eventID string, p *domain.Participant) error
}
