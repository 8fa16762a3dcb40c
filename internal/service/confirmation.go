package service

import (
	"context"
	"fmt"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ConfirmationService struct {
	confirmations ports.ConfirmationRepo
	events        ports.EventRepo
	notifier      ports.EventNotifier
	logger        logger.Logger
}

func NewConfirmationService(
	confirmations ports.ConfirmationRepo,
	events ports.EventRepo,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *ConfirmationService {
	return &ConfirmationService{
		confirmations: confirmations,
		events:        events,
		notifier:      notifier,
		logger:        logger,
	}
}

// Toggle flips the confirmed state of a date option and returns the new
// state. The option must belong to the event; confirming a foreign event's
// option is rejected here even though the storage toggle itself is
// unchecked.
func (s *ConfirmationService) Toggle(ctx context.Context, eventID string, dateOptionID int64) (bool, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("check event: %w", err)
	}

	option, ok := event.FindDateOption(dateOptionID)
	if !ok {
		return false, fmt.Errorf("%w: date option %d does not belong to event %s",
			domain.ErrDateOptionNotFound, dateOptionID, eventID)
	}

	confirmed, err := s.confirmations.Toggle(ctx, eventID, dateOptionID)
	if err != nil {
		return false, fmt.Errorf("toggle confirmation: %w", err)
	}

	s.logger.Info("date confirmation toggled",
		logger.String("event_id", eventID),
		logger.Int64("date_option_id", dateOptionID),
		logger.Any("confirmed", confirmed),
	)

	go s.notifier.NotifyDateToggled(context.WithoutCancel(ctx), event, option, confirmed)

	return confirmed, nil
}
