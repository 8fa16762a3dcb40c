package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/MuNeNICK/ScheduleN/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmationService_Toggle_Confirms(t *testing.T) {
	confirmationRepo := mocks.NewMockConfirmationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewConfirmationService(confirmationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(), nil)
	confirmationRepo.EXPECT().Toggle(mock.Anything, "e1", int64(1)).Return(true, nil)
	notifier.EXPECT().NotifyDateToggled(mock.Anything, mock.Anything, mock.Anything, true).Return()

	confirmed, err := svc.Toggle(context.Background(), "e1", 1)

	require.NoError(t, err)
	assert.True(t, confirmed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmationService_Toggle_Unconfirms(t *testing.T) {
	confirmationRepo := mocks.NewMockConfirmationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewConfirmationService(confirmationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(), nil)
	confirmationRepo.EXPECT().Toggle(mock.Anything, "e1", int64(2)).Return(false, nil)
	notifier.EXPECT().NotifyDateToggled(mock.Anything, mock.Anything, mock.Anything, false).Return()

	confirmed, err := svc.Toggle(context.Background(), "e1", 2)

	require.NoError(t, err)
	assert.False(t, confirmed)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmationService_Toggle_ForeignDateOption(t *testing.T) {
	confirmationRepo := mocks.NewMockConfirmationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewConfirmationService(confirmationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(), nil)

	_, err := svc.Toggle(context.Background(), "e1", 999)

	assert.ErrorIs(t, err, domain.ErrDateOptionNotFound)
	confirmationRepo.AssertNotCalled(t, "Toggle")
}

func TestConfirmationService_Toggle_EventNotFound(t *testing.T) {
	confirmationRepo := mocks.NewMockConfirmationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewConfirmationService(confirmationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Toggle(context.Background(), "gone", 1)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestConfirmationService_Toggle_RepoError(t *testing.T) {
	confirmationRepo := mocks.NewMockConfirmationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockEventNotifier(t)
	log := newTestLogger(t)

	svc := NewConfirmationService(confirmationRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(testEvent(), nil)
	confirmationRepo.EXPECT().Toggle(mock.Anything, "e1", int64(1)).Return(false, errors.New("db error"))

	_, err := svc.Toggle(context.Background(), "e1", 1)

	assert.Error(t, err)
}
