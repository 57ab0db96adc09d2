package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/snapfest/snapfest/internal/errs"
	"github.com/snapfest/snapfest/internal/model"
	"github.com/snapfest/snapfest/internal/session"
)

type eventPayload struct {
	model.Event
	Roles []string `json:"roles"`
}

func roleNames(m model.Membership) []string {
	var out []string
	if m.Has(model.MemberParticipant) {
		out = append(out, "participant")
	}
	if m.Has(model.MemberOrganizer) {
		out = append(out, "organizer")
	}
	if m.Has(model.MemberCreator) {
		out = append(out, "creator")
	}
	return out
}

// listEvents handles GET /api/events.
func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromCtx(r.Context())
	memberships, err := s.svc.ListEvents(r.Context(), sess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	payload := make([]eventPayload, 0, len(memberships))
	for _, m := range memberships {
		payload = append(payload, eventPayload{Event: m.Event, Roles: roleNames(m.Roles)})
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": payload})
}

// statistics handles GET /api/statistics. The service degrades to a
// zero snapshot internally, so this endpoint never fails.
func (s *Server) statistics(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromCtx(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"statistics": s.svc.Statistics(r.Context(), sess)})
}

// createEvent handles POST /api/events: multipart form with name, date,
// description and an optional cover file, or a plain JSON body.
func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromCtx(r.Context())

	draft, err := decodeDraft(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.svc.CreateEvent(r.Context(), sess, draft)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"event":      res.Event,
		"roleLinked": res.RoleLinked,
	})
}

func decodeDraft(r *http.Request) (model.EventDraft, error) {
	var draft model.EventDraft
	ct := r.Header.Get("Content-Type")

	if strings.HasPrefix(ct, "multipart/") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return draft, errors.New("malformed multipart form")
		}
		draft.Name = r.FormValue("name")
		draft.Date = r.FormValue("date")
		draft.Description = r.FormValue("description")

		file, header, err := r.FormFile("cover")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			// cover is optional
		case err != nil:
			return draft, errors.New("malformed cover part")
		default:
			defer file.Close()
			body, err := io.ReadAll(file)
			if err != nil {
				return draft, errors.New("unreadable cover image")
			}
			draft.CoverImage = body
			draft.CoverImageType = header.Header.Get("Content-Type")
		}
		return draft, nil
	}

	var body struct {
		Name        string `json:"name"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return draft, errors.New("malformed JSON body")
	}
	draft.Name = body.Name
	draft.Date = body.Date
	draft.Description = body.Description
	return draft, nil
}

// deleteEvent handles DELETE /api/events/{id}. The owner defaults to
// the session identifier; the UI passes event.userEmail explicitly when
// deleting from an aggregated listing.
func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		sess, _ := session.FromCtx(r.Context())
		owner = sess.Identifier
	}

	ok, err := s.svc.DeleteEvent(r.Context(), id, owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the errs taxonomy to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	switch {
	case errors.Is(err, errs.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "not authenticated")
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrAggregation),
		errors.Is(err, errs.ErrStorageWrite),
		errors.Is(err, errs.ErrRecordWrite):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
