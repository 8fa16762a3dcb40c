package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ConfirmationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewConfirmationRepo(db *dbpg.DB) *ConfirmationRepository {
	return &ConfirmationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Toggle flips membership of the date option in the event's confirmed set
// and returns the resulting state. Two concurrent toggles can both observe
// "not confirmed"; the unique (event_id, date_option_id) constraint rejects
// the second insert, which is reported as the already-confirmed outcome
// rather than an error.
func (r *ConfirmationRepository) Toggle(ctx context.Context, eventID string, dateOptionID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id FROM confirmed_dates WHERE event_id = $1 AND date_option_id = $2`
	var existingID int64
	err = tx.QueryRowContext(ctx, query, eventID, dateOptionID).Scan(&existingID)
	switch {
	case err == nil:
		deleteQuery := `DELETE FROM confirmed_dates WHERE event_id = $1 AND date_option_id = $2`
		if _, err = tx.ExecContext(ctx, deleteQuery, eventID, dateOptionID); err != nil {
			return false, fmt.Errorf("delete confirmed date: %w", err)
		}
		return false, tx.Commit()

	case errors.Is(err, sql.ErrNoRows):
		insertQuery := `INSERT INTO confirmed_dates (event_id, date_option_id) VALUES ($1, $2)`
		if _, err = tx.ExecContext(ctx, insertQuery, eventID, dateOptionID); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) {
				if pgErr.Code == "23505" {
					// Lost the race against a concurrent toggle; the
					// pair is confirmed either way.
					return true, nil
				}
				if pgErr.Code == "23503" {
					return false, domain.ErrDateOptionNotFound
				}
			}
			return false, fmt.Errorf("insert confirmed date: %w", err)
		}
		return true, tx.Commit()

	default:
		return false, fmt.Errorf("get confirmed date: %w", err)
	}
}
