package ports

import (
	"context"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetAll(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	GetPasswordHash(ctx context.Context, id string) (string, error)
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}
