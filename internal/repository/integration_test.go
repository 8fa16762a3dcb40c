//go:build integration

package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
)

// Runs against a real Postgres: go test -tags integration ./internal/repository
// with TEST_DATABASE_DSN pointing at a disposable database.
func setupDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	mig, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(mig, "../../migrations"))
	require.NoError(t, mig.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 5, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Master.Close()
	})

	return db
}

func createIntegrationEvent(t *testing.T, repo *EventRepository, dates ...string) *domain.Event {
	t.Helper()

	e := &domain.Event{ID: uuid.NewString(), Title: "Planning"}
	for _, d := range dates {
		e.DateOptions = append(e.DateOptions, domain.DateOption{Datetime: d, Formatted: d})
	}
	require.NoError(t, repo.Create(context.Background(), e))
	t.Cleanup(func() {
		_ = repo.Delete(context.Background(), e.ID)
	})

	return e
}

func optionByDatetime(t *testing.T, e *domain.Event, datetime string) domain.DateOption {
	t.Helper()

	for _, o := range e.DateOptions {
		if o.Datetime == datetime {
			return o
		}
	}
	t.Fatalf("no date option for %s", datetime)
	return domain.DateOption{}
}

func TestEventRepo_Update_PreservesAnswersByDatetime(t *testing.T) {
	db := setupDB(t)
	events := NewEventRepo(db)
	participants := NewParticipantRepo(db)
	ctx := context.Background()

	e := createIntegrationEvent(t, events, "2026-09-10", "2026-09-11")
	kept := optionByDatetime(t, e, "2026-09-10")
	dropped := optionByDatetime(t, e, "2026-09-11")

	p := &domain.Participant{
		Name: "alice",
		Availabilities: map[int64]domain.Availability{
			kept.ID:    domain.AvailabilityAvailable,
			dropped.ID: domain.AvailabilityUnavailable,
		},
	}
	require.NoError(t, participants.Add(ctx, e.ID, p))

	// Rewrite the set: 09-10 survives, 09-11 is replaced by 09-12.
	require.NoError(t, events.Update(ctx, e.ID, domain.UpdateEventInput{
		DateOptions: []domain.DateOptionInput{
			{Datetime: "2026-09-10", Formatted: "сентябрь 10"},
			{Datetime: "2026-09-12", Formatted: "сентябрь 12"},
		},
	}))

	got, err := events.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got.DateOptions, 2)
	require.Len(t, got.Participants, 1)

	newKept := optionByDatetime(t, got, "2026-09-10")
	newFresh := optionByDatetime(t, got, "2026-09-12")
	assert.NotEqual(t, kept.ID, newKept.ID, "options are reinserted under new ids")

	answers := got.Participants[0].Availabilities
	assert.Equal(t, domain.AvailabilityAvailable, answers[newKept.ID])
	assert.NotContains(t, answers, newFresh.ID, "a new datetime starts with no answers")
	assert.NotContains(t, answers, kept.ID)
	assert.NotContains(t, answers, dropped.ID)
	assert.Len(t, answers, 1)
}

func TestEventRepo_Delete_Idempotent(t *testing.T) {
	db := setupDB(t)
	events := NewEventRepo(db)
	ctx := context.Background()

	e := createIntegrationEvent(t, events, "2026-09-10")

	require.NoError(t, events.Delete(ctx, e.ID))
	require.NoError(t, events.Delete(ctx, e.ID))

	_, err := events.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestConfirmationRepo_Toggle_Double(t *testing.T) {
	db := setupDB(t)
	events := NewEventRepo(db)
	confirmations := NewConfirmationRepo(db)
	ctx := context.Background()

	e := createIntegrationEvent(t, events, "2026-09-10")
	option := optionByDatetime(t, e, "2026-09-10")

	confirmed, err := confirmations.Toggle(ctx, e.ID, option.ID)
	require.NoError(t, err)
	assert.True(t, confirmed)

	confirmed, err = confirmations.Toggle(ctx, e.ID, option.ID)
	require.NoError(t, err)
	assert.False(t, confirmed)

	got, err := events.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ConfirmedDateOptionIDs)
}
