package postgres

import (
	"context"
	"fmt"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

const eventColumns = `id, name, event_date, description, cover_image,
photo_count, video_count, guest_count, user_email, organizer_id, user_id,
created_at, updated_at`

// Put persists a new event record. A duplicate ID violates the primary
// key and surfaces as errs.ErrRecordWrite: at most one record per ID.
func (r *EventRepo) Put(ctx context.Context, e *model.Event) error {
	const q = `
INSERT INTO events (` + eventColumns + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.db.Pool.Exec(ctx, q,
		e.ID, e.Name, e.Date, e.Description, e.CoverImage,
		e.PhotoCount, e.VideoCount, e.GuestCount,
		e.UserEmail, e.OrganizerID, e.UserID,
		e.CreatedAt, e.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("event %s: %w", e.ID, errs.ErrRecordWrite)
	}
	return err
}

// ByParticipant returns events whose legacy user_email field equals the identifier.
func (r *EventRepo) ByParticipant(ctx context.Context, identifier string) ([]model.Event, error) {
	return r.queryEvents(ctx, `
SELECT `+eventColumns+`
FROM events WHERE user_email=$1 ORDER BY created_at`, identifier)
}

// ByOrganizer returns events whose organizer_id equals the identifier.
func (r *EventRepo) ByOrganizer(ctx context.Context, identifier string) ([]model.Event, error) {
	return r.queryEvents(ctx, `
SELECT `+eventColumns+`
FROM events WHERE organizer_id=$1 ORDER BY created_at`, identifier)
}

// ByCreator returns events whose user_id equals the identifier.
func (r *EventRepo) ByCreator(ctx context.Context, identifier string) ([]model.Event, error) {
	return r.queryEvents(ctx, `
SELECT `+eventColumns+`
FROM events WHERE user_id=$1 ORDER BY created_at`, identifier)
}

func (r *EventRepo) queryEvents(ctx context.Context, q, identifier string) ([]model.Event, error) {
	rows, err := r.db.Pool.Query(ctx, q, identifier)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Date, &e.Description, &e.CoverImage,
			&e.PhotoCount, &e.VideoCount, &e.GuestCount,
			&e.UserEmail, &e.OrganizerID, &e.UserID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes the event identified by the (id, owner) pair. A
// missing pair is not an error; it reports false.
func (r *EventRepo) Delete(ctx context.Context, eventID, owner string) (bool, error) {
	const q = `DELETE FROM events WHERE id=$1 AND user_email=$2`
	tag, err := r.db.Pool.Exec(ctx, q, eventID, owner)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
