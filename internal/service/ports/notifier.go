package ports

import (
	"context"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
)

type EventNotifier interface {
	NotifyParticipantAdded(ctx context.Context, event *domain.Event, name string)
	NotifyDateToggled(ctx context.Context, event *domain.Event, option domain.DateOption, confirmed bool)
}
