package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/metrics"
	"github.com/snapfest/snapfest/internal/model"
	"github.com/snapfest/snapfest/internal/session"
	"github.com/snapfest/snapfest/internal/storage"
)

var validate = validator.New()

// provisionState enumerates the steps of one CreateEvent attempt so
// every partial-failure point is nameable in logs and metrics.
type provisionState int

const (
	stateIdle provisionState = iota
	stateRolePromoting
	stateUploadingCover
	stateScaffolding
	statePersisting
	stateDone
	stateFailed
)

func (s provisionState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRolePromoting:
		return "role_promotion"
	case stateUploadingCover:
		return "cover_upload"
	case stateScaffolding:
		return "scaffolding"
	case statePersisting:
		return "persistence"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// CreateEvent runs the provisioning workflow as a strictly sequential
// chain: role promotion, cover upload, folder scaffolding, record
// persistence. The event ID is allocated once, before role promotion,
// and reused for every step. There is no compensating cleanup: folders
// created before a later failure stay orphaned, and a retry allocates a
// fresh ID.
func (s *EventServiceImpl) CreateEvent(ctx context.Context, sess session.Session, draft model.EventDraft) (model.CreateResult, error) {
	if !sess.Authenticated() {
		return model.CreateResult{}, errs.ErrNotAuthenticated
	}
	if err := validate.Struct(draft); err != nil {
		return model.CreateResult{}, fmt.Errorf("invalid draft: %w", err)
	}

	eventID, err := s.newID()
	if err != nil {
		return model.CreateResult{}, fmt.Errorf("allocate event id: %w", err)
	}
	attempt := uuid.Must(uuid.NewV4())
	log := s.log.With(
		zap.String("event_id", eventID),
		zap.String("attempt", attempt.String()),
		zap.String("user", sess.Identifier),
	)

	state := stateIdle
	fail := func(next provisionState, err error) (model.CreateResult, error) {
		metrics.CreateFailures.WithLabelValues(next.String()).Inc()
		log.Error("event creation failed",
			zap.String("stage", next.String()), zap.Error(err))
		return model.CreateResult{}, err
	}

	// Role promotion is a best-effort side effect: its failure is
	// reported through RoleLinked, never through the primary outcome.
	state = stateRolePromoting
	roleLinked := true
	if err := s.promoteToOrganizer(ctx, sess, eventID); err != nil {
		roleLinked = false
		metrics.RoleLinkSkipped.Inc()
		log.Warn("user record update failed, continuing without linkage", zap.Error(err))
	}

	coverURL := ""
	if draft.HasCover() {
		state = stateUploadingCover
		coverURL, err = s.store.PutObject(ctx, storage.CoverKey(eventID), draft.CoverImage, draft.CoverImageType)
		if err != nil {
			return fail(state, err)
		}
	}

	state = stateScaffolding
	for i, key := range storage.FolderKeys(eventID) {
		if _, err := s.store.PutObject(ctx, key, nil, storage.ContentTypeDirectory); err != nil {
			// earlier folders are left behind; accepted limitation
			return fail(state, fmt.Errorf("folder %d/4: %w", i+1, err))
		}
	}

	state = statePersisting
	now := s.now()
	event := model.Event{
		ID:          eventID,
		Name:        draft.Name,
		Date:        draft.Date,
		Description: draft.Description,
		CoverImage:  coverURL,
		UserEmail:   sess.Identifier,
		OrganizerID: sess.Identifier,
		UserID:      sess.Identifier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.events.Put(ctx, &event); err != nil {
		if !errors.Is(err, errs.ErrRecordWrite) {
			err = fmt.Errorf("%w: %v", errs.ErrRecordWrite, err)
		}
		return fail(state, err)
	}

	state = stateDone
	metrics.EventsCreated.Inc()
	log.Info("event provisioned", zap.String("state", state.String()), zap.Bool("role_linked", roleLinked))
	return model.CreateResult{Event: event, RoleLinked: roleLinked}, nil
}

// promoteToOrganizer appends the new event ID to the user's
// createdEvents and forces the organizer role. A missing user record is
// treated as an empty history, matching first-time organizers.
// Concurrent creations by the same user race on the read-modify-write;
// the later Upsert wins and may drop the earlier append.
func (s *EventServiceImpl) promoteToOrganizer(ctx context.Context, sess session.Session, eventID string) error {
	var created []string
	existing, err := s.users.GetByEmail(ctx, sess.Identifier)
	switch {
	case err == nil:
		created = append(created, existing.CreatedEvents...)
	case errors.Is(err, errs.ErrNotFound):
		// first event for this user
	default:
		return err
	}
	created = append(created, eventID)

	u := model.User{
		Email:         sess.Identifier,
		Name:          sess.Name,
		Mobile:        sess.Mobile,
		Role:          model.RoleOrganizer,
		CreatedEvents: created,
	}
	return s.users.Upsert(ctx, &u)
}
