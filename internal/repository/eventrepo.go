package repository

import (
	"context"

	"github.com/snapfest/snapfest/internal/model"
)

// EventRepository provides access to event records and the three
// discovery access paths over them.
type EventRepository interface {
	// Put persists a new event record.
	Put(ctx context.Context, e *model.Event) error

	// ByParticipant returns events whose legacy userEmail field equals
	// the identifier.
	ByParticipant(ctx context.Context, identifier string) ([]model.Event, error)
	// ByOrganizer returns events whose organizerId equals the identifier.
	ByOrganizer(ctx context.Context, identifier string) ([]model.Event, error)
	// ByCreator returns events whose userId equals the identifier.
	ByCreator(ctx context.Context, identifier string) ([]model.Event, error)

	// Delete removes the event identified by the (id, owner) pair and
	// reports whether a record was actually removed. The owner acts as
	// the store's partition/authorization key and is not re-validated
	// against the session here.
	Delete(ctx context.Context, eventID, owner string) (bool, error)
}
