package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MuNeNICK/ScheduleN/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the event row and all of its date options in one
// transaction. Assigned date option ids are written back into e.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO events (id, title, description, password_hash)
			  VALUES ($1, $2, $3, $4)
			  RETURNING created_at`
	if err = tx.QueryRowContext(
		ctx, query, e.ID, e.Title, e.Description, nullString(e.PasswordHash),
	).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	optionQuery := `INSERT INTO date_options (event_id, datetime, formatted, start_time, end_time)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id`
	for i := range e.DateOptions {
		o := &e.DateOptions[i]
		if err = tx.QueryRowContext(
			ctx, optionQuery, e.ID, o.Datetime, o.Formatted,
			nullString(o.StartTime), nullString(o.EndTime),
		).Scan(&o.ID); err != nil {
			return fmt.Errorf("insert date option: %w", err)
		}
	}

	return tx.Commit()
}

// GetByID loads the event fully hydrated: date options and participants in
// id order, participant availability maps keyed by date option id, and the
// confirmed set.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, password_hash, created_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	var passwordHash sql.NullString
	if err = row.Scan(&e.ID, &e.Title, &e.Description, &passwordHash, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.PasswordHash = passwordHash.String

	if e.DateOptions, err = r.listDateOptions(ctx, id); err != nil {
		return nil, err
	}
	if e.Participants, err = r.listParticipants(ctx, id); err != nil {
		return nil, err
	}
	if e.ConfirmedDateOptionIDs, err = r.listConfirmedIDs(ctx, id); err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *EventRepository) listDateOptions(ctx context.Context, eventID string) ([]domain.DateOption, error) {
	query := `SELECT id, datetime, formatted, start_time, end_time
			  FROM date_options
			  WHERE event_id = $1
			  ORDER BY id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list date options: %w", err)
	}
	defer rows.Close()

	var res []domain.DateOption
	for rows.Next() {
		var o domain.DateOption
		var start, end sql.NullString
		if err = rows.Scan(&o.ID, &o.Datetime, &o.Formatted, &start, &end); err != nil {
			return nil, fmt.Errorf("scan date option: %w", err)
		}
		o.StartTime = start.String
		o.EndTime = end.String
		res = append(res, o)
	}

	return res, rows.Err()
}

func (r *EventRepository) listParticipants(ctx context.Context, eventID string) ([]domain.Participant, error) {
	query := `SELECT id, name, comment, submitted_at
			  FROM participants
			  WHERE event_id = $1
			  ORDER BY id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []domain.Participant
	for rows.Next() {
		var p domain.Participant
		var comment sql.NullString
		if err = rows.Scan(&p.ID, &p.Name, &comment, &p.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.Comment = comment.String
		p.Availabilities = make(map[int64]domain.Availability)
		res = append(res, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	availQuery := `SELECT a.participant_id, a.date_option_id, a.availability
				   FROM availabilities a
				   JOIN participants p ON p.id = a.participant_id
				   WHERE p.event_id = $1`
	availRows, err := r.db.QueryWithRetry(ctx, r.strategy, availQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list availabilities: %w", err)
	}
	defer availRows.Close()

	byParticipant := make(map[int64]map[int64]domain.Availability, len(res))
	for i := range res {
		byParticipant[res[i].ID] = res[i].Availabilities
	}
	for availRows.Next() {
		var participantID, dateOptionID int64
		var availability string
		if err = availRows.Scan(&participantID, &dateOptionID, &availability); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		if m, ok := byParticipant[participantID]; ok {
			m[dateOptionID] = domain.Availability(availability)
		}
	}

	return res, availRows.Err()
}

func (r *EventRepository) listConfirmedIDs(ctx context.Context, eventID string) ([]int64, error) {
	query := `SELECT date_option_id
			  FROM confirmed_dates
			  WHERE event_id = $1
			  ORDER BY date_option_id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list confirmed dates: %w", err)
	}
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan confirmed date: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

// GetAll returns every event fully hydrated, newest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id
			  FROM events
			  ORDER BY created_at DESC, id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	res := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		e, err := r.GetByID(ctx, id)
		if err != nil {
			// Deleted between the listing and the hydration.
			if errors.Is(err, domain.ErrEventNotFound) {
				continue
			}
			return nil, err
		}
		res = append(res, e)
	}

	return res, nil
}

type savedAnswer struct {
	participantID int64
	availability  string
}

type existingOption struct {
	id       int64
	datetime string
}

type carryOverPlan struct {
	// Old option ids whose datetime is absent from the new set; their
	// answers are deleted for good.
	dropped []int64
	// Answers to reinsert, keyed by the datetime merge key. Every new
	// option with a matching datetime receives the full group.
	restore map[string][]savedAnswer
}

// planAnswerCarryOver decides what happens to availability answers when the
// option set is rewritten. Answers follow the datetime: an old option whose
// datetime survives into the new set keeps its answers (restored against the
// new id), an old option whose datetime disappears loses them. New datetimes
// start with no answers at all.
func planAnswerCarryOver(existing []existingOption, answers map[int64][]savedAnswer, next []domain.DateOptionInput) carryOverPlan {
	kept := make(map[string]struct{}, len(next))
	for _, o := range next {
		kept[o.Datetime] = struct{}{}
	}

	plan := carryOverPlan{restore: make(map[string][]savedAnswer, len(existing))}
	for _, o := range existing {
		if _, ok := kept[o.datetime]; !ok {
			plan.dropped = append(plan.dropped, o.id)
			continue
		}
		plan.restore[o.datetime] = append(plan.restore[o.datetime], answers[o.id]...)
	}

	return plan
}

// Update applies a partial update in one transaction. When date options are
// supplied the full set is rewritten and availability answers are carried
// over to the new option sharing the same datetime; answers for datetimes
// that disappear are deleted. Confirmed dates referencing old option ids go
// away with the cascade.
func (r *EventRepository) Update(ctx context.Context, id string, in domain.UpdateEventInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var fields []string
	var args []any
	if in.Title != nil {
		args = append(args, *in.Title)
		fields = append(fields, fmt.Sprintf("title = $%d", len(args)))
	}
	if in.Description != nil {
		args = append(args, *in.Description)
		fields = append(fields, fmt.Sprintf("description = $%d", len(args)))
	}
	if in.Password != nil {
		args = append(args, nullString(*in.Password))
		fields = append(fields, fmt.Sprintf("password_hash = $%d", len(args)))
	}
	if len(fields) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", strings.Join(fields, ", "), len(args))
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update event: %w", err)
		}
	}

	if in.DateOptions != nil {
		if err = replaceDateOptions(ctx, tx, id, in.DateOptions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func replaceDateOptions(ctx context.Context, tx *sql.Tx, eventID string, options []domain.DateOptionInput) error {
	// Snapshot existing options and their answers before the rewrite.
	rows, err := tx.QueryContext(ctx, `SELECT id, datetime FROM date_options WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("list existing date options: %w", err)
	}
	var existing []existingOption
	for rows.Next() {
		var o existingOption
		if err = rows.Scan(&o.id, &o.datetime); err != nil {
			rows.Close()
			return fmt.Errorf("scan existing date option: %w", err)
		}
		existing = append(existing, o)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return err
	}

	answers := make(map[int64][]savedAnswer, len(existing))
	answerQuery := `SELECT participant_id, availability FROM availabilities WHERE date_option_id = $1`
	for _, o := range existing {
		answerRows, err := tx.QueryContext(ctx, answerQuery, o.id)
		if err != nil {
			return fmt.Errorf("snapshot availabilities: %w", err)
		}
		for answerRows.Next() {
			var a savedAnswer
			if err = answerRows.Scan(&a.participantID, &a.availability); err != nil {
				answerRows.Close()
				return fmt.Errorf("scan availability snapshot: %w", err)
			}
			answers[o.id] = append(answers[o.id], a)
		}
		answerRows.Close()
		if err = answerRows.Err(); err != nil {
			return err
		}
	}

	plan := planAnswerCarryOver(existing, answers, options)

	// Answers whose datetime is gone are deleted for good.
	for _, optionID := range plan.dropped {
		if _, err = tx.ExecContext(ctx, `DELETE FROM availabilities WHERE date_option_id = $1`, optionID); err != nil {
			return fmt.Errorf("delete dropped availabilities: %w", err)
		}
	}

	// Rewrite the option set. The cascade clears remaining availability and
	// confirmed rows referencing old ids; preserved answers are reinserted
	// against the new ids below.
	if _, err = tx.ExecContext(ctx, `DELETE FROM date_options WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete date options: %w", err)
	}

	insertQuery := `INSERT INTO date_options (event_id, datetime, formatted, start_time, end_time)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id`
	restoreQuery := `INSERT INTO availabilities (participant_id, date_option_id, availability)
					 VALUES ($1, $2, $3)`
	for _, o := range options {
		var newID int64
		if err = tx.QueryRowContext(
			ctx, insertQuery, eventID, o.Datetime, o.Formatted,
			nullString(o.StartTime), nullString(o.EndTime),
		).Scan(&newID); err != nil {
			return fmt.Errorf("insert date option: %w", err)
		}
		for _, a := range plan.restore[o.Datetime] {
			if _, err = tx.ExecContext(ctx, restoreQuery, a.participantID, newID, a.availability); err != nil {
				return fmt.Errorf("restore availability: %w", err)
			}
		}
	}

	return nil
}

// Delete removes the event; owned rows go with the cascade. Deleting a
// nonexistent id is not an error.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

// GetPasswordHash returns the stored bcrypt hash, empty for open events.
func (r *EventRepository) GetPasswordHash(ctx context.Context, id string) (string, error) {
	query := `SELECT password_hash FROM events WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return "", fmt.Errorf("get password hash: %w", err)
	}

	var hash sql.NullString
	if err = row.Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrEventNotFound
		}
		return "", fmt.Errorf("scan password hash: %w", err)
	}

	return hash.String, nil
}

// DeleteCreatedBefore removes events older than the cutoff and returns their
// ids.
func (r *EventRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `DELETE FROM events WHERE created_at < $1 RETURNING id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete stale events: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan deleted event id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
