package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Add inserts the participant and one availability row per answer in a
// single transaction. An answer referencing a date option outside the event
// fails the whole operation; nothing is committed partially.
func (r *ParticipantRepository) Add(ctx context.Context, eventID string, p *domain.Participant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO participants (event_id, name, comment)
			  VALUES ($1, $2, $3)
			  RETURNING id, submitted_at`
	if err = tx.QueryRowContext(
		ctx, query, eventID, p.Name, nullString(p.Comment),
	).Scan(&p.ID, &p.SubmittedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	availQuery := `INSERT INTO availabilities (participant_id, date_option_id, availability)
				   VALUES ($1, $2, $3)`
	for dateOptionID, availability := range p.Availabilities {
		if _, err = tx.ExecContext(ctx, availQuery, p.ID, dateOptionID, string(availability)); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrDateOptionNotFound
			}
			return fmt.Errorf("insert availability: %w", err)
		}
	}

	return tx.Commit()
}
