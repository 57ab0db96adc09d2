package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/model"
	"github.com/snapfest/snapfest/internal/repository"
	"github.com/snapfest/snapfest/internal/session"
)

type fakeEventRepo struct {
	participant []model.Event
	organizer   []model.Event
	creator     []model.Event

	participantErr error
	organizerErr   error
	creatorErr     error

	lookups []string // records which lookups ran, in order

	putIn  []model.Event
	putErr error

	delID    string
	delOwner string
	delOK    bool
	delErr   error
}

var _ repository.EventRepository = (*fakeEventRepo)(nil)

func (f *fakeEventRepo) Put(_ context.Context, e *model.Event) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putIn = append(f.putIn, *e)
	return nil
}

func (f *fakeEventRepo) ByParticipant(_ context.Context, _ string) ([]model.Event, error) {
	f.lookups = append(f.lookups, "participant")
	return append([]model.Event(nil), f.participant...), f.participantErr
}

func (f *fakeEventRepo) ByOrganizer(_ context.Context, _ string) ([]model.Event, error) {
	f.lookups = append(f.lookups, "organizer")
	return append([]model.Event(nil), f.organizer...), f.organizerErr
}

func (f *fakeEventRepo) ByCreator(_ context.Context, _ string) ([]model.Event, error) {
	f.lookups = append(f.lookups, "creator")
	return append([]model.Event(nil), f.creator...), f.creatorErr
}

func (f *fakeEventRepo) Delete(_ context.Context, eventID, owner string) (bool, error) {
	f.delID, f.delOwner = eventID, owner
	return f.delOK, f.delErr
}

type fakeUserRepo struct {
	user      *model.User
	getErr    error
	upserted  []model.User
	upsertErr error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.user == nil {
		return nil, errs.ErrNotFound
	}
	c := *f.user
	return &c, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, u *model.User) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	c := *u
	c.CreatedEvents = append([]string(nil), u.CreatedEvents...)
	f.upserted = append(f.upserted, c)
	return nil
}

type putCall struct {
	key         string
	contentType string
	bodyLen     int
}

type fakeStore struct {
	puts      []putCall
	failOnKey string
	failErr   error
}

func (f *fakeStore) PutObject(_ context.Context, key string, body []byte, contentType string) (string, error) {
	f.puts = append(f.puts, putCall{key, contentType, len(body)})
	if key == f.failOnKey && f.failErr != nil {
		return "", f.failErr
	}
	return "https://cdn.test/photos/" + key, nil
}

func newTestService(events *fakeEventRepo, users *fakeUserRepo, store *fakeStore) *EventServiceImpl {
	return NewEventService(events, users, store, zap.NewNop())
}

func sess(id string) session.Session {
	return session.Session{Identifier: id, Name: "Asha", Mobile: "555"}
}

func ev(id, name string) model.Event { return model.Event{ID: id, Name: name} }

func TestListEvents_DedupAndPrecedence(t *testing.T) {
	t.Parallel()
	repo := &fakeEventRepo{
		participant: []model.Event{ev("e1", "from-participant"), ev("e2", "from-participant")},
		organizer:   []model.Event{ev("e2", "from-organizer"), ev("e3", "from-organizer")},
		creator:     []model.Event{ev("e1", "from-creator"), ev("e4", "from-creator")},
	}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})

	got, err := s.ListEvents(context.Background(), sess("a@b.c"))
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	wantOrder := []string{"e1", "e2", "e3", "e4"}
	if len(got) != len(wantOrder) {
		t.Fatalf("want %d events, got %d: %+v", len(wantOrder), len(got), got)
	}
	for i, id := range wantOrder {
		if got[i].Event.ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, got[i].Event.ID)
		}
	}

	// first-seen copy wins: e1 and e2 keep the participant payload
	if got[0].Event.Name != "from-participant" || got[1].Event.Name != "from-participant" {
		t.Fatalf("surviving copies not from earliest lookup: %+v", got[:2])
	}

	wantRoles := map[string]model.Membership{
		"e1": model.MemberParticipant | model.MemberCreator,
		"e2": model.MemberParticipant | model.MemberOrganizer,
		"e3": model.MemberOrganizer,
		"e4": model.MemberCreator,
	}
	for _, m := range got {
		if m.Roles != wantRoles[m.Event.ID] {
			t.Fatalf("%s: want roles %b, got %b", m.Event.ID, wantRoles[m.Event.ID], m.Roles)
		}
	}
}

func TestListEvents_Unauthenticated(t *testing.T) {
	t.Parallel()
	repo := &fakeEventRepo{}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})

	_, err := s.ListEvents(context.Background(), session.Session{})
	if !errors.Is(err, errs.ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}
	if len(repo.lookups) != 0 {
		t.Fatalf("store must not be contacted: %v", repo.lookups)
	}
}

func TestListEvents_FailClosedAndSequential(t *testing.T) {
	t.Parallel()
	repo := &fakeEventRepo{
		participant:  []model.Event{ev("e1", "x")},
		organizerErr: errors.New("boom"),
	}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})

	got, err := s.ListEvents(context.Background(), sess("a@b.c"))
	if !errors.Is(err, errs.ErrAggregation) {
		t.Fatalf("want ErrAggregation, got %v", err)
	}
	if got != nil {
		t.Fatalf("partial results must be discarded, got %+v", got)
	}
	// the creator lookup never runs after the organizer one failed
	want := []string{"participant", "organizer"}
	if len(repo.lookups) != len(want) || repo.lookups[1] != "organizer" {
		t.Fatalf("lookup order: want %v, got %v", want, repo.lookups)
	}
}

func TestStatistics_SumsDedupedSet(t *testing.T) {
	t.Parallel()
	e1 := model.Event{ID: "e1", PhotoCount: 10, VideoCount: 2, GuestCount: 40}
	e2 := model.Event{ID: "e2", PhotoCount: 5, VideoCount: 1, GuestCount: 10}
	repo := &fakeEventRepo{
		participant: []model.Event{e1},
		organizer:   []model.Event{e1, e2}, // e1 must not be counted twice
	}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})

	got := s.Statistics(context.Background(), sess("a@b.c"))
	want := model.Stats{EventCount: 2, PhotoCount: 15, VideoCount: 3, GuestCount: 50}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}

	// idempotent with no intervening mutation
	again := s.Statistics(context.Background(), sess("a@b.c"))
	if again != got {
		t.Fatalf("snapshots differ: %+v vs %+v", got, again)
	}
}

func TestStatistics_DegradesToZero(t *testing.T) {
	t.Parallel()
	repo := &fakeEventRepo{participantErr: errors.New("boom")}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})

	if got := s.Statistics(context.Background(), sess("a@b.c")); got != (model.Stats{}) {
		t.Fatalf("want zero snapshot on failure, got %+v", got)
	}

	// no identifier: zero snapshot without store calls
	repo2 := &fakeEventRepo{}
	s2 := newTestService(repo2, &fakeUserRepo{}, &fakeStore{})
	if got := s2.Statistics(context.Background(), session.Session{}); got != (model.Stats{}) {
		t.Fatalf("want zero snapshot, got %+v", got)
	}
	if len(repo2.lookups) != 0 {
		t.Fatalf("store must not be contacted: %v", repo2.lookups)
	}
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &fakeEventRepo{delOK: true}
	s := newTestService(repo, &fakeUserRepo{}, &fakeStore{})
	ok, err := s.DeleteEvent(ctx, "e1", "a@b.c")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	if repo.delID != "e1" || repo.delOwner != "a@b.c" {
		t.Fatalf("args not forwarded: %s %s", repo.delID, repo.delOwner)
	}

	// missing (id, owner) pair: false, no error
	repo = &fakeEventRepo{delOK: false}
	s = newTestService(repo, &fakeUserRepo{}, &fakeStore{})
	ok, err = s.DeleteEvent(ctx, "nope", "a@b.c")
	if err != nil || ok {
		t.Fatalf("want (false, nil), got (%v, %v)", ok, err)
	}

	repo = &fakeEventRepo{delErr: errors.New("boom")}
	s = newTestService(repo, &fakeUserRepo{}, &fakeStore{})
	if _, err := s.DeleteEvent(ctx, "e1", "a@b.c"); !errors.Is(err, errs.ErrDeletion) {
		t.Fatalf("want ErrDeletion, got %v", err)
	}

	if _, err := s.DeleteEvent(ctx, "", "a@b.c"); !errors.Is(err, errs.ErrDeletion) {
		t.Fatalf("want ErrDeletion on empty id, got %v", err)
	}
}
