package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

// Create validates and stores a new event with its date options. The id is
// caller-supplied and opaque. A non-empty password is stored as a bcrypt
// hash; an empty one makes the event open.
func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	options := make([]domain.DateOption, 0, len(input.DateOptions))
	for _, o := range input.DateOptions {
		if err := validateDateOption(o); err != nil {
			return nil, err
		}
		options = append(options, domain.DateOption{
			Datetime:  o.Datetime,
			StartTime: o.StartTime,
			EndTime:   o.EndTime,
			Formatted: o.Formatted,
		})
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		PasswordHash: passwordHash,
		DateOptions:  options,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.GetAll(ctx)
}

// Update applies a partial update. A supplied plaintext password is hashed
// before it reaches storage; a supplied empty password clears protection.
func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) error {
	if input.IsEmpty() {
		return nil
	}
	for _, o := range input.DateOptions {
		if err := validateDateOption(o); err != nil {
			return err
		}
	}

	if input.Password != nil {
		passwordHash, err := hashPassword(*input.Password)
		if err != nil {
			return err
		}
		input.Password = &passwordHash
	}

	if err := s.repo.Update(ctx, id, input); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ValidatePassword reports whether the supplied password grants access.
// Open events accept any password; a missing event never validates.
func (s *EventService) ValidatePassword(ctx context.Context, id, password string) (bool, error) {
	hash, err := s.repo.GetPasswordHash(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return false, nil
		}
		return false, err
	}

	if hash == "" {
		return true, nil
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// PurgeCreatedBefore deletes events created before the cutoff and returns
// the removed ids.
func (s *EventService) PurgeCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	ids, err := s.repo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("purge stale events: %w", err)
	}

	return ids, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func validateDateOption(o domain.DateOptionInput) error {
	if _, err := time.Parse(domain.DateOptionDateLayout, o.Datetime); err != nil {
		return fmt.Errorf("%w: datetime must be YYYY-MM-DD, got %q", domain.ErrValidation, o.Datetime)
	}
	if o.StartTime != "" {
		if _, err := time.Parse(domain.DateOptionTimeLayout, o.StartTime); err != nil {
			return fmt.Errorf("%w: start_time must be HH:MM, got %q", domain.ErrValidation, o.StartTime)
		}
	}
	if o.EndTime != "" {
		if o.StartTime == "" {
			return fmt.Errorf("%w: end_time requires start_time", domain.ErrValidation)
		}
		if _, err := time.Parse(domain.DateOptionTimeLayout, o.EndTime); err != nil {
			return fmt.Errorf("%w: end_time must be HH:MM, got %q", domain.ErrValidation, o.EndTime)
		}
	}
	return nil
}
