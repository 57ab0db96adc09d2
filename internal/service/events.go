// Package service contains the dashboard application services: event
// discovery/aggregation, statistics, provisioning and deletion.
package service

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/metrics"
	"github.com/snapfest/snapfest/internal/model"
	"github.com/snapfest/snapfest/internal/repository"
	"github.com/snapfest/snapfest/internal/session"
	"github.com/snapfest/snapfest/internal/storage"
)

// eventIDLength matches the compactness of the legacy client-side
// generator: collision-free at expected scale, not a crypto guarantee.
const eventIDLength = 12

func newEventID() (string, error) { return gonanoid.New(eventIDLength) }

// EventService defines the dashboard operations over events.
type EventService interface {
	// ListEvents returns the deduplicated union of the three discovery
	// lookups for the session's user, in first-seen order.
	ListEvents(ctx context.Context, sess session.Session) ([]model.EventMembership, error)
	// Statistics computes the roll-up counter snapshot for the session's
	// user, degrading to zeroes on any failure.
	Statistics(ctx context.Context, sess session.Session) model.Stats
	// CreateEvent provisions a new event: role promotion (best-effort),
	// ID allocation, cover upload, storage scaffolding, record write.
	CreateEvent(ctx context.Context, sess session.Session, draft model.EventDraft) (model.CreateResult, error)
	// DeleteEvent removes the event record for the (id, owner) pair and
	// reports whether a record was removed.
	DeleteEvent(ctx context.Context, eventID, owner string) (bool, error)
}

// EventServiceImpl orchestrates repositories and object storage. It
// performs no client-side locking and no retries: every failure is
// terminal for the attempt.
type EventServiceImpl struct {
	events repository.EventRepository
	users  repository.UserRepository
	store  storage.ObjectStore
	log    *zap.Logger

	// overridable in tests
	newID func() (string, error)
	now   func() time.Time
}

// NewEventService constructs EventService with its collaborators.
func NewEventService(
	events repository.EventRepository,
	users repository.UserRepository,
	store storage.ObjectStore,
	log *zap.Logger,
) *EventServiceImpl {
	return &EventServiceImpl{
		events: events,
		users:  users,
		store:  store,
		log:    log,
		newID:  newEventID,
		now:    time.Now,
	}
}

// ListEvents issues the participant, organizer and creator lookups
// sequentially and merges them keyed by event ID. A failure in any
// lookup discards prior accumulation; partial results are never
// returned.
func (s *EventServiceImpl) ListEvents(ctx context.Context, sess session.Session) ([]model.EventMembership, error) {
	if !sess.Authenticated() {
		return nil, errs.ErrNotAuthenticated
	}
	id := sess.Identifier

	participant, err := s.events.ByParticipant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: participant lookup: %v", errs.ErrAggregation, err)
	}
	organizer, err := s.events.ByOrganizer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: organizer lookup: %v", errs.ErrAggregation, err)
	}
	creator, err := s.events.ByCreator(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: creator lookup: %v", errs.ErrAggregation, err)
	}

	return mergeMemberships(participant, organizer, creator), nil
}

// mergeMemberships unions the three lookup results keyed by event ID.
// The first-seen copy wins (participant > organizer > creator) and the
// Roles bitmask records every lookup that returned the ID.
func mergeMemberships(participant, organizer, creator []model.Event) []model.EventMembership {
	index := make(map[string]int)
	out := make([]model.EventMembership, 0, len(participant)+len(organizer)+len(creator))

	add := func(events []model.Event, role model.Membership) {
		for _, e := range events {
			if i, ok := index[e.ID]; ok {
				out[i].Roles |= role
				continue
			}
			index[e.ID] = len(out)
			out = append(out, model.EventMembership{Event: e, Roles: role})
		}
	}
	add(participant, model.MemberParticipant)
	add(organizer, model.MemberOrganizer)
	add(creator, model.MemberCreator)
	return out
}

// Statistics recomputes the snapshot from the store on every call; it
// never reads a cached aggregate. On any failure, including a missing
// identifier, it returns the zero snapshot instead of an error. Callers
// cannot distinguish "empty" from "failed" through this interface.
func (s *EventServiceImpl) Statistics(ctx context.Context, sess session.Session) model.Stats {
	if !sess.Authenticated() {
		return model.Stats{}
	}
	memberships, err := s.ListEvents(ctx, sess)
	if err != nil {
		s.log.Warn("statistics degraded to zero snapshot", zap.Error(err))
		return model.Stats{}
	}

	var st model.Stats
	st.EventCount = len(memberships)
	for _, m := range memberships {
		st.PhotoCount += m.Event.PhotoCount
		st.VideoCount += m.Event.VideoCount
		st.GuestCount += m.Event.GuestCount
	}
	return st
}

// DeleteEvent removes the record for the (id, owner) pair. Associated
// storage objects are left behind; cleaning them up is out of scope.
func (s *EventServiceImpl) DeleteEvent(ctx context.Context, eventID, owner string) (bool, error) {
	if eventID == "" || owner == "" {
		return false, fmt.Errorf("%w: empty event id or owner", errs.ErrDeletion)
	}
	ok, err := s.events.Delete(ctx, eventID, owner)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errs.ErrDeletion, err)
	}
	if ok {
		metrics.EventsDeleted.Inc()
	}
	return ok, nil
}
