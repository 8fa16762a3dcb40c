package service

import (
	"context"
	"fmt"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ParticipantService struct {
	participants ports.ParticipantRepo
	events       ports.EventRepo
	notifier     ports.EventNotifier
	logger       logger.Logger
}

func NewParticipantService(
	participants ports.ParticipantRepo,
	events ports.EventRepo,
	notifier ports.EventNotifier,
	logger logger.Logger,
) *ParticipantService {
	return &ParticipantService{
		participants: participants,
		events:       events,
		notifier:     notifier,
		logger:       logger,
	}
}

// Add records one participant with their per-option answers. Every answer
// must reference a date option of this event; otherwise nothing is stored.
// Same-name submissions are intentionally not rejected here: "same name =
// edit" is a client-side convenience, not a data-layer constraint.
func (s *ParticipantService) Add(ctx context.Context, eventID string, input domain.AddParticipantInput) (*domain.Participant, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	for dateOptionID := range input.Availabilities {
		if _, ok := event.FindDateOption(dateOptionID); !ok {
			return nil, fmt.Errorf("%w: date option %d does not belong to event %s",
				domain.ErrDateOptionNotFound, dateOptionID, eventID)
		}
	}

	participant := &domain.Participant{
		Name:           input.Name,
		Comment:        input.Comment,
		Availabilities: input.Availabilities,
	}
	if err = s.participants.Add(ctx, eventID, participant); err != nil {
		return nil, fmt.Errorf("add participant: %w", err)
	}

	s.logger.Info("participant added",
		logger.String("event_id", eventID),
		logger.String("name", participant.Name),
		logger.Int("answers", len(participant.Availabilities)),
	)

	go s.notifier.NotifyParticipantAdded(context.WithoutCancel(ctx), event, participant.Name)

	return participant, nil
}
